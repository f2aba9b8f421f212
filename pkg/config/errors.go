package config

import "github.com/shuldan/appcore/pkg/errors"

var newConfigCode = errors.WithPrefix("CONFIG")

var (
	ErrNoConfigSource = newConfigCode().New("no valid configuration source found")
	ErrParseYAML      = newConfigCode().New("failed to parse YAML file {{.path}}")
	ErrParseJSON      = newConfigCode().New("failed to parse JSON file {{.path}}")
	ErrMergeFailed    = newConfigCode().New("failed to merge configuration layers")
)

package cache

import "github.com/shuldan/appcore/pkg/errors"

var newCacheCode = errors.WithPrefix("CACHE")

var (
	ErrCacheClosed   = newCacheCode().New("cache is closed")
	ErrGetFailed     = newCacheCode().New("failed to get key {{.key}}")
	ErrSetFailed     = newCacheCode().New("failed to set key {{.key}}")
	ErrDeleteFailed  = newCacheCode().New("failed to delete key {{.key}}")
	ErrClearFailed   = newCacheCode().New("failed to clear cache")
	ErrUnknownDriver = newCacheCode().New("unknown cache driver {{.driver}}")
)

package services

import "github.com/shuldan/appcore/pkg/errors"

var newServicesCode = errors.WithPrefix("SERVICES")

var (
	ErrDuplicateService = newServicesCode().New("service {{.name}} is already registered")
	ErrServiceNotFound  = newServicesCode().New("service {{.name}} is not registered")
	ErrNilService       = newServicesCode().New("service {{.name}} is nil")
)

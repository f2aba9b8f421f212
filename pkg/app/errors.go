package app

import "github.com/shuldan/appcore/pkg/errors"

var newAppCode = errors.WithPrefix("APP")

var (
	ErrNilCache        = newAppCode().New("application context requires a cache")
	ErrNilDatabase     = newAppCode().New("application context requires a database")
	ErrNilServices     = newAppCode().New("application context requires a service registry")
	ErrDatabaseNotSet  = newAppCode().New("database context was never assigned; the system is not yet initialized")
	ErrServicesNotSet  = newAppCode().New("service registry was never assigned; the system is not yet initialized")
	ErrAlreadyReady    = newAppCode().New("application context is already marked ready")
	ErrDisposeCache    = newAppCode().New("failed to clear cache during disposal")
	ErrDisposeDatabase = newAppCode().New("failed to release database during disposal")
)

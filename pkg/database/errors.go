package database

import "github.com/shuldan/appcore/pkg/errors"

var newDatabaseCode = errors.WithPrefix("DB")

var (
	ErrOpenFailed    = newDatabaseCode().New("failed to open database")
	ErrNotConnected  = newDatabaseCode().New("database is not connected")
	ErrNotConfigured = newDatabaseCode().New("database is not configured")
	ErrCloseFailed   = newDatabaseCode().New("failed to close database")
)

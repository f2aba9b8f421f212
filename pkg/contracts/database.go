package contracts

import (
	"context"
	"database/sql"
)

// Database is the shared database-access facility. The application context
// treats it as opaque apart from IsConfigured and Close.
type Database interface {
	Connect() error

	// IsConfigured reports whether a connection was ever configured.
	// Disposal only releases the underlying handle when it returns true.
	IsConfigured() bool

	Ping(ctx context.Context) error

	// Conn exposes the underlying pool for repositories and migrations.
	Conn() (*sql.DB, error)

	Close() error
}

package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/shuldan/appcore/pkg/contracts"
)

type dbConfig struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
	connMaxIdleTime time.Duration
	pingTimeout     time.Duration
	retryAttempts   int
	retryDelay      time.Duration
}

type Option func(*dbConfig)

func WithConnectionPool(maxOpen, maxIdle int, maxLifetime time.Duration) Option {
	return func(c *dbConfig) {
		c.maxOpenConns = maxOpen
		c.maxIdleConns = maxIdle
		c.connMaxLifetime = maxLifetime
	}
}

func WithConnectionIdleTime(idleTime time.Duration) Option {
	return func(c *dbConfig) {
		c.connMaxIdleTime = idleTime
	}
}

func WithPingTimeout(timeout time.Duration) Option {
	return func(c *dbConfig) {
		c.pingTimeout = timeout
	}
}

func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *dbConfig) {
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

type sqlDatabase struct {
	db     *sql.DB
	driver string
	dsn    string
	config dbConfig
}

// New builds an unconnected database facility. A facility with an empty DSN
// is "not configured": Connect is a no-op and disposal skips the release.
func New(driver, dsn string, options ...Option) contracts.Database {
	config := dbConfig{
		maxOpenConns:    25,
		maxIdleConns:    5,
		connMaxLifetime: time.Hour,
		connMaxIdleTime: 5 * time.Minute,
		pingTimeout:     5 * time.Second,
		retryAttempts:   3,
		retryDelay:      time.Second,
	}

	for _, option := range options {
		option(&config)
	}

	return &sqlDatabase{
		driver: driverName(driver),
		dsn:    dsn,
		config: config,
	}
}

func (d *sqlDatabase) IsConfigured() bool {
	return d.dsn != ""
}

func (d *sqlDatabase) Connect() error {
	if d.db != nil {
		return nil
	}
	if !d.IsConfigured() {
		return ErrNotConfigured
	}

	var db *sql.DB
	var err error

	for attempt := 0; attempt <= d.config.retryAttempts; attempt++ {
		db, err = sql.Open(d.driver, d.dsn)
		if err == nil {
			db.SetMaxOpenConns(d.config.maxOpenConns)
			db.SetMaxIdleConns(d.config.maxIdleConns)
			db.SetConnMaxLifetime(d.config.connMaxLifetime)
			db.SetConnMaxIdleTime(d.config.connMaxIdleTime)

			ctx, cancel := context.WithTimeout(context.Background(), d.config.pingTimeout)
			err = db.PingContext(ctx)
			cancel()

			if err == nil {
				d.db = db
				return nil
			}
			_ = db.Close()
		}

		if attempt < d.config.retryAttempts {
			time.Sleep(d.config.retryDelay)
		}
	}

	return ErrOpenFailed.WithCause(err)
}

func (d *sqlDatabase) Ping(ctx context.Context) error {
	if d.db == nil {
		return ErrNotConnected
	}
	return d.db.PingContext(ctx)
}

func (d *sqlDatabase) Conn() (*sql.DB, error) {
	if d.db == nil {
		return nil, ErrNotConnected
	}
	return d.db, nil
}

func (d *sqlDatabase) Close() error {
	if d.db == nil {
		return nil
	}
	db := d.db
	d.db = nil
	if err := db.Close(); err != nil {
		return ErrCloseFailed.WithCause(err)
	}
	return nil
}

package app

import "github.com/shuldan/appcore/pkg/contracts"

type Option func(*appContext)

// WithConfig supplies the settings the context reads the persisted
// configuration status and the configured URL from.
func WithConfig(cfg contracts.Config) Option {
	return func(c *appContext) {
		c.cfg = cfg
	}
}

// WithLogger supplies the diagnostics sink for the version-mismatch debug
// message.
func WithLogger(log contracts.Logger) Option {
	return func(c *appContext) {
		c.log = log
	}
}

// WithStatusSource overrides where the persisted configuration status is
// read from (a file, a database row). Errors are absorbed to an empty
// status, never surfaced.
func WithStatusSource(read func() (string, error)) Option {
	return func(c *appContext) {
		c.status = read
	}
}

// New builds a minimal context: cache only, database and service registry
// absent until assigned by bootstrap.
func New(cache contracts.Cache, opts ...Option) (contracts.AppContext, error) {
	if cache == nil {
		return nil, ErrNilCache
	}
	return newContext(cache, nil, nil, opts...), nil
}

// NewPopulated builds a fully populated context and rejects any nil
// collaborator.
func NewPopulated(
	db contracts.Database,
	services contracts.ServiceRegistry,
	cache contracts.Cache,
	opts ...Option,
) (contracts.AppContext, error) {
	if cache == nil {
		return nil, ErrNilCache
	}
	if db == nil {
		return nil, ErrNilDatabase
	}
	if services == nil {
		return nil, ErrNilServices
	}
	return newContext(cache, db, services, opts...), nil
}

func newContext(
	cache contracts.Cache,
	db contracts.Database,
	services contracts.ServiceRegistry,
	opts ...Option,
) *appContext {
	c := &appContext{
		id:       newID(),
		cache:    cache,
		database: db,
		services: services,
		version:  Version,
		readyCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

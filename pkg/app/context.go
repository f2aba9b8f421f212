package app

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/shuldan/appcore/pkg/contracts"
	"github.com/shuldan/appcore/pkg/resolver"
)

// appContext gates access to the shared runtime facilities for a hosted
// application. Collaborator reads deliberately take no lock: callers are
// expected not to race them against Dispose, which is a shutdown and
// test-teardown operation.
type appContext struct {
	id string

	cache    contracts.Cache
	database contracts.Database
	services contracts.ServiceRegistry

	cfg     contracts.Config
	log     contracts.Logger
	version string
	status  func() (string, error)

	readyMu sync.Mutex
	ready   bool
	readyCh chan struct{}

	configuredOnce sync.Once
	configured     bool

	// applicationURL is unsynchronized by design: concurrent first-time
	// resolution may run the resolver more than once, and equivalent
	// results make the race benign. Last write wins.
	applicationURL string

	disposed  atomic.Bool
	disposeMu sync.RWMutex
}

func (c *appContext) ID() string {
	return c.id
}

func (c *appContext) Cache() contracts.Cache {
	return c.cache
}

func (c *appContext) Database() (contracts.Database, error) {
	if c.database == nil {
		return nil, ErrDatabaseNotSet
	}
	return c.database, nil
}

func (c *appContext) Services() (contracts.ServiceRegistry, error) {
	if c.services == nil {
		return nil, ErrServicesNotSet
	}
	return c.services, nil
}

func (c *appContext) SetDatabase(db contracts.Database) {
	c.database = db
}

func (c *appContext) SetServices(services contracts.ServiceRegistry) {
	c.services = services
}

func (c *appContext) IsReady() bool {
	c.readyMu.Lock()
	defer c.readyMu.Unlock()
	return c.ready
}

func (c *appContext) SetReady() error {
	c.readyMu.Lock()
	defer c.readyMu.Unlock()

	if c.ready {
		return ErrAlreadyReady
	}
	c.ready = true
	close(c.readyCh)
	return nil
}

func (c *appContext) WaitForReady(timeout time.Duration) bool {
	c.readyMu.Lock()
	ch := c.readyCh
	c.readyMu.Unlock()

	select {
	case <-ch:
		return true
	default:
	}

	if timeout <= 0 {
		return false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ch:
		return true
	case <-timer.C:
		return false
	}
}

func (c *appContext) IsConfigured() bool {
	c.configuredOnce.Do(func() {
		status := c.readStatus()
		current := shortVersion(c.version)
		c.configured = status == current
		if !c.configured && c.log != nil {
			c.log.Debug("configured version does not match current version",
				"status", status,
				"current", current,
			)
		}
	})
	return c.configured
}

// readStatus reads the persisted configuration status. Read failures are
// absorbed to an empty string: the system must stay usable with incomplete
// configuration.
func (c *appContext) readStatus() string {
	if c.status != nil {
		status, err := c.status()
		if err != nil {
			return ""
		}
		return status
	}
	if c.cfg != nil {
		return c.cfg.GetString("app.status")
	}
	return ""
}

func (c *appContext) ApplicationURL() string {
	if c.applicationURL != "" {
		return c.applicationURL
	}
	if url, ok := resolver.Resolve(c.cfg); ok {
		c.applicationURL = url
	}
	return c.applicationURL
}

func (c *appContext) SetApplicationURL(url string) {
	c.applicationURL = url
}

// Dispose tears down the context. The atomic flag is the cheap fast path for
// repeated calls; the exclusive lock plus recheck serializes concurrent
// first calls. The flag is only set once every step has completed, so a
// failed release leaves the context retryable rather than half-disposed.
func (c *appContext) Dispose() error {
	if c.disposed.Load() {
		return nil
	}

	c.disposeMu.Lock()
	defer c.disposeMu.Unlock()

	if c.disposed.Load() {
		return nil
	}

	if c.cache != nil {
		if err := c.cache.Clear(context.Background()); err != nil {
			return ErrDisposeCache.WithCause(err)
		}
	}

	resolver.Reset()
	resolver.ResetState()

	c.cache = nil

	if c.database != nil && c.database.IsConfigured() {
		if err := c.database.Close(); err != nil {
			return ErrDisposeDatabase.WithCause(err)
		}
	}
	c.database = nil
	c.services = nil

	c.readyMu.Lock()
	if c.ready {
		c.ready = false
		c.readyCh = make(chan struct{})
	}
	c.readyMu.Unlock()

	c.disposed.Store(true)
	return nil
}

func newID() string {
	return uuid.New().String()
}

package contracts

import "time"

// AppContext is the process-wide application context. It gates access to the
// shared runtime facilities (cache, database, service registry) and carries
// the readiness barrier other subsystems wait on before using them.
type AppContext interface {
	// ID identifies this context instance in logs.
	ID() string

	// Cache returns the application cache. It is nil only after Dispose.
	Cache() Cache

	// Database returns the database facility or a coded error if it was
	// never assigned.
	Database() (Database, error)

	// Services returns the service registry or a coded error if it was
	// never assigned.
	Services() (ServiceRegistry, error)

	// SetDatabase and SetServices are for bootstrap and test harnesses,
	// not general callers.
	SetDatabase(db Database)
	SetServices(services ServiceRegistry)

	IsReady() bool

	// SetReady flips the readiness flag exactly once and wakes all waiters.
	// A second call returns an error.
	SetReady() error

	// WaitForReady blocks until the context becomes ready or the timeout
	// elapses. Timeouts are expected, not exceptional: the result reports
	// whether the context became ready within the window.
	WaitForReady(timeout time.Duration) bool

	// IsConfigured reports whether the persisted configuration status
	// matches the current version. Computed once on first access and
	// memoized for the life of the instance.
	IsConfigured() bool

	// ApplicationURL returns the cached application base URL, resolving it
	// on first access. The field is deliberately unsynchronized: concurrent
	// first-time resolution may run more than once and last write wins.
	ApplicationURL() string
	SetApplicationURL(url string)

	// Dispose tears the context down: clears the cache, resets the global
	// resolver registry, releases the database handle if configured and
	// clears the ready flag. Idempotent and safe under concurrent calls.
	Dispose() error
}

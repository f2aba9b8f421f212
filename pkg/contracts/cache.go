package contracts

import (
	"context"
	"time"
)

// Cache is the shared cache facility held by the application context.
// The context itself only requires Clear; the rest of the surface exists
// for the facilities' own callers.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// Clear removes every entry. Invoked during context disposal.
	Clear(ctx context.Context) error

	Close() error
}

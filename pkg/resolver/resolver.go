// Package resolver is the process-wide registry of application URL
// resolvers, plus the resolution-framework state (the first observed inbound
// request). Both are global by design: the application context resets them
// unconditionally during disposal.
package resolver

import (
	"sync"

	"github.com/shuldan/appcore/pkg/contracts"
)

type registration struct {
	name     string
	resolver contracts.URLResolver
}

var (
	mu        sync.RWMutex
	resolvers []registration
)

// Register appends a resolver under a name; registering an existing name
// replaces it in place so resolution order stays stable.
func Register(name string, r contracts.URLResolver) {
	mu.Lock()
	defer mu.Unlock()

	for i, reg := range resolvers {
		if reg.name == name {
			resolvers[i].resolver = r
			return
		}
	}
	resolvers = append(resolvers, registration{name: name, resolver: r})
}

// Resolve asks each registered resolver in registration order and returns
// the first URL produced.
func Resolve(cfg contracts.Config) (string, bool) {
	mu.RLock()
	snapshot := make([]registration, len(resolvers))
	copy(snapshot, resolvers)
	mu.RUnlock()

	for _, reg := range snapshot {
		if url, ok := reg.resolver.ResolveURL(cfg); ok && url != "" {
			return url, true
		}
	}
	return "", false
}

// Reset removes every registered resolver. Invoked during context disposal;
// bootstrap re-registers what the next context needs.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	resolvers = nil
}

// RegisterDefaults installs the built-in resolvers: configured URL first,
// observed request second.
func RegisterDefaults() {
	Register("config", ConfigResolver())
	Register("request", RequestResolver())
}

func init() {
	RegisterDefaults()
}

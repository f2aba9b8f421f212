package resolver

import (
	"sync"

	"github.com/shuldan/appcore/pkg/contracts"
)

// configResolver reads the explicitly configured base URL.
type configResolver struct{}

func ConfigResolver() contracts.URLResolver {
	return configResolver{}
}

func (configResolver) ResolveURL(cfg contracts.Config) (string, bool) {
	if cfg == nil {
		return "", false
	}
	url := cfg.GetString("app.url")
	return url, url != ""
}

// Observed-request state: the scheme and host of the first inbound request
// seen by the hosting application. First observation wins until ResetState.
var (
	stateMu        sync.RWMutex
	observedScheme string
	observedHost   string
)

// ObserveRequest records the scheme and host of an inbound request. Only the
// first observation is kept.
func ObserveRequest(scheme, host string) {
	if scheme == "" || host == "" {
		return
	}

	stateMu.Lock()
	defer stateMu.Unlock()
	if observedHost != "" {
		return
	}
	observedScheme = scheme
	observedHost = host
}

// ResetState clears the observed request. Invoked during context disposal.
func ResetState() {
	stateMu.Lock()
	defer stateMu.Unlock()
	observedScheme = ""
	observedHost = ""
}

// requestResolver derives the base URL from the observed request.
type requestResolver struct{}

func RequestResolver() contracts.URLResolver {
	return requestResolver{}
}

func (requestResolver) ResolveURL(_ contracts.Config) (string, bool) {
	stateMu.RLock()
	defer stateMu.RUnlock()

	if observedHost == "" {
		return "", false
	}
	return observedScheme + "://" + observedHost, true
}

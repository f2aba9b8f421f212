package app

import "github.com/shuldan/appcore/pkg/contracts"

// The process-wide context slot. Reads are lock-free and installation is
// deliberately unsynchronized: Ensure runs a handful of times during
// startup and callers serialize those calls themselves. Adding a lock here
// would tax every singleton read for a race that only a broken boot
// sequence can produce.
var current contracts.AppContext

// Current returns the installed context, nil until the first install.
func Current() contracts.AppContext {
	return current
}

// SetCurrent replaces the slot directly. Intended for test harnesses;
// production code goes through Ensure.
func SetCurrent(ctx contracts.AppContext) {
	current = ctx
}

// Ensure installs candidate when no context is current, or unconditionally
// when replace is set, and returns the now-current context. With replace
// unset and a context already installed, the candidate is discarded.
//
// Not safe for concurrent callers: serialize startup-time calls.
func Ensure(candidate contracts.AppContext, replace bool) contracts.AppContext {
	if current == nil || replace {
		current = candidate
	}
	return current
}

// EnsurePopulated constructs a fully populated context from raw collaborator
// handles and applies the same replace-or-keep policy as Ensure.
func EnsurePopulated(
	db contracts.Database,
	services contracts.ServiceRegistry,
	cache contracts.Cache,
	replace bool,
	opts ...Option,
) (contracts.AppContext, error) {
	candidate, err := NewPopulated(db, services, cache, opts...)
	if err != nil {
		return nil, err
	}
	return Ensure(candidate, replace), nil
}

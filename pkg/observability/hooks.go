// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about solver sessions and solution storage.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, so the solver packages never import a logging
// or metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSessionHooks(&logSessionHooks{logger})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Session().OnTick(mode, steps, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from interactive solver sessions.
//
// Session methods are synchronous and frame-driven, so these hooks take no
// context. Implementations must be cheap: OnTick runs once per frame.
type SessionHooks interface {
	// OnTick records one frame of simulation.
	OnTick(mode string, steps int, duration time.Duration)

	// OnModeChange records a mode or play state change.
	OnModeChange(from, to string, running bool)

	// OnEdit records a vertex editing operation.
	OnEdit(op string, moved int)

	// OnReset records a session reset.
	OnReset()
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from solution storage.
type StoreHooks interface {
	// OnSave records a stored solution.
	OnSave(ctx context.Context, problem, name string, size int)

	// OnLoad records a solution lookup. err is nil on success.
	OnLoad(ctx context.Context, problem, name string, err error)

	// OnDelete records a removed solution.
	OnDelete(ctx context.Context, problem, name string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnTick(string, int, time.Duration) {}
func (NoopSessionHooks) OnModeChange(string, string, bool) {}
func (NoopSessionHooks) OnEdit(string, int)                {}
func (NoopSessionHooks) OnReset()                          {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnSave(context.Context, string, string, int)   {}
func (NoopStoreHooks) OnLoad(context.Context, string, string, error) {}
func (NoopStoreHooks) OnDelete(context.Context, string, string)      {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sessionHooks SessionHooks = NoopSessionHooks{}
	storeHooks   StoreHooks   = NoopStoreHooks{}
	hooksMu      sync.RWMutex
)

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup before any session is created.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sessionHooks = NoopSessionHooks{}
	storeHooks = NoopStoreHooks{}
}

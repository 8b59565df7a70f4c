// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive placement decisions and HTTP API traffic.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so pkg/dock stays free of
// any metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlacementHooks(metrics.New(prometheus.DefaultRegisterer))
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Placement().OnDecision(ctx, "left", groupID, true, 3, 1, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Placement Hooks
// =============================================================================

// PlacementHooks receives events from the layout manager.
type PlacementHooks interface {
	// OnDecision records one target selection. target is "" when no group
	// qualified; matched is false when the target came from the fallback.
	OnDecision(ctx context.Context, direction, target string, matched bool, eligible, matching int, duration time.Duration)

	// OnPanelAdded records the create-panel command issued after a decision.
	OnPanelAdded(ctx context.Context, panelID, groupID string, newGroup bool, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming request on a route pattern.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records the status written for a request.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPlacementHooks is a no-op implementation of PlacementHooks.
type NoopPlacementHooks struct{}

func (NoopPlacementHooks) OnDecision(context.Context, string, string, bool, int, int, time.Duration) {
}
func (NoopPlacementHooks) OnPanelAdded(context.Context, string, string, bool, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                       {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	placementHooks PlacementHooks = NoopPlacementHooks{}
	httpHooks      HTTPHooks      = NoopHTTPHooks{}
	hooksMu        sync.RWMutex
)

// SetPlacementHooks registers custom placement hooks.
// This should be called once at application startup before any panels are added.
func SetPlacementHooks(h PlacementHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		placementHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Placement returns the registered placement hooks.
func Placement() PlacementHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return placementHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	placementHooks = NoopPlacementHooks{}
	httpHooks = NoopHTTPHooks{}
}

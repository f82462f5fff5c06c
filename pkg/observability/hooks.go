// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about run execution and workload suites.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRunHooks(&myRunHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Run().OnSortStart(ctx, size)
//	// ... do sorting ...
//	observability.Run().OnSortComplete(ctx, vectorBits, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Run Hooks
// =============================================================================

// RunHooks receives events from the run pipeline.
type RunHooks interface {
	// Generate events
	OnGenerateStart(ctx context.Context, count, minValue, maxValue int)
	OnGenerateComplete(ctx context.Context, count int, duration time.Duration, err error)

	// Sort events
	OnSortStart(ctx context.Context, size int)
	OnSortComplete(ctx context.Context, vectorBits int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Workload Hooks
// =============================================================================

// WorkloadHooks receives events from workload suite execution.
type WorkloadHooks interface {
	// OnCaseStart records the start of a workload case.
	OnCaseStart(ctx context.Context, suite, name string)

	// OnCaseComplete records the completion of a workload case.
	OnCaseComplete(ctx context.Context, suite, name string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRunHooks is a no-op implementation of RunHooks.
type NoopRunHooks struct{}

func (NoopRunHooks) OnGenerateStart(context.Context, int, int, int)                 {}
func (NoopRunHooks) OnGenerateComplete(context.Context, int, time.Duration, error)  {}
func (NoopRunHooks) OnSortStart(context.Context, int)                               {}
func (NoopRunHooks) OnSortComplete(context.Context, int, time.Duration, error)      {}
func (NoopRunHooks) OnRenderStart(context.Context, []string)                        {}
func (NoopRunHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
}

// NoopWorkloadHooks is a no-op implementation of WorkloadHooks.
type NoopWorkloadHooks struct{}

func (NoopWorkloadHooks) OnCaseStart(context.Context, string, string)                        {}
func (NoopWorkloadHooks) OnCaseComplete(context.Context, string, string, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	runHooks      RunHooks      = NoopRunHooks{}
	workloadHooks WorkloadHooks = NoopWorkloadHooks{}
	hooksMu       sync.RWMutex
)

// SetRunHooks registers custom run hooks.
// This should be called once at application startup before any runs.
func SetRunHooks(h RunHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		runHooks = h
	}
}

// SetWorkloadHooks registers custom workload hooks.
// This should be called once at application startup before any suites run.
func SetWorkloadHooks(h WorkloadHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		workloadHooks = h
	}
}

// Run returns the registered run hooks.
func Run() RunHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return runHooks
}

// Workload returns the registered workload hooks.
func Workload() WorkloadHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return workloadHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	runHooks = NoopRunHooks{}
	workloadHooks = NoopWorkloadHooks{}
}

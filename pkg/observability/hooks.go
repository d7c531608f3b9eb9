// Package observability provides instrumentation hooks for the plan
// pipeline and the cache.
//
// The package keeps the core library free of observability backends.
// Hook interfaces describe the events, no-op implementations back them
// by default, and the binary's main registers real implementations at
// startup. Because registration happens in main, libraries emitting
// events never import a metrics or tracing framework, and any backend
// (OpenTelemetry, Prometheus, a plain logger) can be plugged in.
//
// # Usage
//
// Register hooks once at startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Emitting code fetches the current hooks through the accessors:
//
//	observability.Pipeline().OnParseStart(ctx, format, path)
//	// ... parse the program ...
//	observability.Pipeline().OnParseComplete(ctx, format, path, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the plan generation pipeline.
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, format, path string)
	OnParseComplete(ctx context.Context, format, path string, duration time.Duration, err error)

	// Generate events
	OnGenerateStart(ctx context.Context, bedrooms, bathrooms int)
	OnGenerateComplete(ctx context.Context, roomCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations. The keyType
// distinguishes plan lookups from artifact lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks discards all pipeline events.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string, string)                         {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, string, time.Duration, error) {
}
func (NoopPipelineHooks) OnGenerateStart(context.Context, int, int)                        {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, int, time.Duration, error)    {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks discards all cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. Call once at
// startup, before pipeline operations begin. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Call once at startup,
// before cache operations begin. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores the no-op defaults. Tests use this to isolate their
// registered hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}

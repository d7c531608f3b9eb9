package cache

import (
	"context"
	"time"
)

// NullCache discards writes and never hits. It backs --no-cache runs so
// the pipeline can treat a cache as always present.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing.
func NewNullCache() Cache { return &NullCache{} }

// Get always misses.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards the value.
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete is a no-op.
func (*NullCache) Delete(context.Context, string) error { return nil }

// Close is a no-op.
func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)

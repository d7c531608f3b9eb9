package cache

// ScopedKeyer wraps a Keyer with a prefix so embedders can isolate
// cache namespaces, for example per project or per workspace when a
// single cache directory is shared.
//
// Example usage:
//
//	// Project-specific keys
//	projKeyer := NewScopedKeyer(NewDefaultKeyer(), "proj:riverside:")
//
//	// Shared global keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PlanKey generates a prefixed key for plan caching.
func (k *ScopedKeyer) PlanKey(programHash string, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(programHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(planID string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planID, opts)
}

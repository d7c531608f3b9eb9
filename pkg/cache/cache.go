// Package cache provides content-addressed caching for plan generation
// and rendering. Keys are derived from the inputs that determine an
// output (program hash, layout options, plan fingerprint), so a cache
// hit is always safe to reuse.
package cache

import (
	"context"
	"time"
)

// TTLs for the cacheable pipeline stages. Generation is deterministic
// for a given program and engine version, so the TTLs mainly bound
// disk growth rather than staleness.
const (
	// TTLPlan is how long generated floor plans are cached.
	TTLPlan = 7 * 24 * time.Hour

	// TTLArtifact is how long rendered artifacts (SVG, PNG, PDF, DOT)
	// are cached.
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache is the storage interface used by the pipeline.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// PlanKey generates a key for a generated floor plan, derived from
	// the program hash and the layout options that shaped it.
	PlanKey(programHash string, opts PlanKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, derived from
	// the plan fingerprint and the render options.
	ArtifactKey(planID string, opts ArtifactKeyOpts) string
}

// PlanKeyOpts holds the layout options that affect plan generation.
// Any field change produces a different key.
type PlanKeyOpts struct {
	HallwayWidth      float64 `json:"hallway_width"`
	MaxAspect         float64 `json:"max_aspect"`
	Tolerance         float64 `json:"tolerance"`
	MaxAdjacencyIters int     `json:"max_adjacency_iters"`
	MaxPlumbingIters  int     `json:"max_plumbing_iters"`
}

// ArtifactKeyOpts holds the render options that affect artifact output.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale"`
	Grid   bool    `json:"grid"`
	Labels bool    `json:"labels"`
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PlanKey generates a key for plan caching.
func (k *DefaultKeyer) PlanKey(programHash string, opts PlanKeyOpts) string {
	return hashKey("plan", programHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(planID string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planID, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/planforge/pkg/cache"
	"github.com/matzehuels/planforge/pkg/observability"
	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/program"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	observability.Pipeline().OnParseStart(ctx, programFormat(opts), opts.ProgramPath)
	req, err := r.Parse(ctx, opts)
	observability.Pipeline().OnParseComplete(ctx, programFormat(opts), opts.ProgramPath, time.Since(parseStart), err)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Request = req
	result.Stats.ParseTime = time.Since(parseStart)

	r.Logger.Info("parsed program",
		"bedrooms", req.Program.Bedrooms,
		"bathrooms", req.Program.Bathrooms,
		"footprint", fmt.Sprintf("%.0fx%.0f", req.Footprint.Length, req.Footprint.Width),
		"duration", result.Stats.ParseTime)

	// Stage 2: Generate
	generateStart := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, req.Program.Bedrooms, req.Program.Bathrooms)
	p, generateHit, err := r.GenerateWithCacheInfo(ctx, req, opts)
	observability.Pipeline().OnGenerateComplete(ctx, roomCount(p), time.Since(generateStart), err)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Plan = p
	result.PlanID = p.Meta.PlanID
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.RoomCount = len(p.Rooms)
	result.Stats.HallwayCount = len(p.Hallways)
	result.Stats.DoorCount = len(p.Doors)
	result.CacheInfo.GenerateHit = generateHit

	r.Logger.Info("generated plan",
		"rooms", len(p.Rooms),
		"hallways", len(p.Hallways),
		"doors", len(p.Doors),
		"duration", result.Stats.GenerateTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, p, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse loads the room program for a pipeline run. Parsing reads a local
// file (or validates an inline request) and is not cached.
func (r *Runner) Parse(ctx context.Context, opts Options) (*program.Request, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	return Parse(ctx, opts)
}

// GenerateWithCacheInfo generates a plan with caching and returns cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, req *program.Request, opts Options) (*plan.FloorPlan, bool, error) {
	opts.SetGenerateDefaults()
	r.applyLogger(&opts)

	// Compute cache key from the canonical request and the resolved
	// engine options.
	keyOpts, err := opts.PlanKeyOpts()
	if err != nil {
		return nil, false, err
	}
	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, false, fmt.Errorf("serialize request for cache key: %w", err)
	}
	cacheKey := r.Keyer.PlanKey(cache.Hash(reqData), keyOpts)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if p, err := plan.ReadPlan(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "plan")
				return p, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "plan")
	}

	// Generate
	p, err := Generate(req, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := plan.MarshalPlan(p); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPlan)
		observability.Cache().OnCacheSet(ctx, "plan", len(data))
	}

	return p, false, nil // Cache miss
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, req *program.Request, opts Options) (*plan.FloorPlan, error) {
	p, _, err := r.GenerateWithCacheInfo(ctx, req, opts)
	return p, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p *plan.FloorPlan, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Artifacts key on the plan fingerprint. Compute it on the fly for
	// plans that arrived without one (hand-edited imports).
	planID := p.Meta.PlanID
	if planID == "" {
		var err error
		planID, err = plan.Fingerprint(p)
		if err != nil {
			return nil, false, fmt.Errorf("fingerprint plan for cache key: %w", err)
		}
	}

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(planID, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		} else {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered, err := Render(p, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(planID, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, p *plan.FloorPlan, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, p, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// programFormat names the parse input for logs and hooks.
func programFormat(opts Options) string {
	if opts.Program != nil {
		return "inline"
	}
	l, err := program.Detect(opts.ProgramPath, program.DefaultLoaders...)
	if err != nil {
		return "unknown"
	}
	return l.Format()
}

func roomCount(p *plan.FloorPlan) int {
	if p == nil {
		return 0
	}
	return len(p.Rooms)
}

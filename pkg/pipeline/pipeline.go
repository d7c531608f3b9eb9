// Package pipeline provides the core plan generation pipeline for Planforge.
//
// This package implements the complete parse → generate → render pipeline
// used by the CLI. Centralizing it keeps behavior consistent across entry
// points and gives every caller the same caching.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Load a room program from a TOML or JSON file
//  2. Generate: Run the layout engine to produce a floor plan
//  3. Render: Produce output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
// Generation and rendering are cached; the cache keys derive from the
// program hash, the layout options, and the plan fingerprint, so a hit is
// always safe to reuse.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ProgramPath: "program.toml",
//	    Formats:     []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Parse only
//	req, err := runner.Parse(ctx, opts)
//
//	// Generate with an existing request
//	p, err := runner.Generate(ctx, req, opts)
//
//	// Render an existing plan
//	artifacts, err := runner.Render(ctx, p, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/planforge/pkg/cache"
	"github.com/matzehuels/planforge/pkg/layout"
	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/program"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Embedders
// =============================================================================

const (
	// DefaultScale is the default drawing scale in pixels per foot.
	DefaultScale = 12.0

	// DefaultZoom is the default raster zoom factor for PNG output.
	DefaultZoom = 2.0
)

// DefaultView is the default render view.
const DefaultView = ViewPlan

// View constants for render targets.
const (
	// ViewPlan draws the floor plan to scale.
	ViewPlan = "plan"
	// ViewGraph draws the circulation graph.
	ViewGraph = "graph"
)

// ValidViews is the set of supported render views.
var ValidViews = map[string]bool{
	ViewPlan:  true,
	ViewGraph: true,
}

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the plan generation pipeline.
// This struct supports JSON serialization for embedding in job payloads.
type Options struct {
	// Parse options
	ProgramPath string           `json:"program_path,omitempty"`
	Program     *program.Request `json:"program,omitempty"` // inline request, bypasses file loading
	Refresh     bool             `json:"refresh,omitempty"` // bypass the plan cache

	// Generate options
	HallwayWidth      float64 `json:"hallway_width,omitempty"`
	MaxAspect         float64 `json:"max_aspect,omitempty"`
	Tolerance         float64 `json:"tolerance,omitempty"`
	MaxAdjacencyIters int     `json:"max_adjacency_iters,omitempty"`
	MaxPlumbingIters  int     `json:"max_plumbing_iters,omitempty"`

	// Render options
	View     string   `json:"view,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Scale    float64  `json:"scale,omitempty"` // pixels per foot
	Zoom     float64  `json:"zoom,omitempty"`  // raster zoom for PNG
	Grid     bool     `json:"grid,omitempty"`
	NoLabels bool     `json:"no_labels,omitempty"`
	NoSwings bool     `json:"no_swings,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // graph view label detail

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Request is the parsed room program.
	Request *program.Request

	// Plan is the generated floor plan.
	Plan *plan.FloorPlan

	// PlanID is the deterministic plan fingerprint.
	PlanID string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount    int
	HallwayCount int
	DoorCount    int
	ParseTime    time.Duration
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each cacheable pipeline stage.
// Parsing reads a local file and is never cached.
type CacheInfo struct {
	GenerateHit bool // Whether the plan came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateView checks that a render view is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return fmt.Errorf("invalid view: %q (must be one of: plan, graph)", view)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	o.SetGenerateDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.ProgramPath == "" && o.Program == nil {
		return fmt.Errorf("program_path or program is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetGenerateDefaults sets default values for plan generation.
// Zero-valued layout knobs stay zero here; the engine applies its own
// defaults, so the pipeline does not duplicate them.
func (o *Options) SetGenerateDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.View == "" {
		o.View = DefaultView
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Zoom == 0 {
		o.Zoom = DefaultZoom
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateView(o.View); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// IsPlanView returns true if rendering targets the scaled floor plan.
func (o *Options) IsPlanView() bool {
	return o.View == "" || o.View == ViewPlan
}

// IsGraphView returns true if rendering targets the circulation graph.
func (o *Options) IsGraphView() bool {
	return o.View == ViewGraph
}

// LayoutOptions returns the engine options this pipeline run generates with.
func (o *Options) LayoutOptions() *layout.Options {
	return &layout.Options{
		HallwayWidth:      o.HallwayWidth,
		MaxAspect:         o.MaxAspect,
		Tolerance:         o.Tolerance,
		MaxAdjacencyIters: o.MaxAdjacencyIters,
		MaxPlumbingIters:  o.MaxPlumbingIters,
	}
}

// PlanKeyOpts returns cache key options for plan generation.
// The engine defaults are resolved first so that an explicit value and
// the equivalent zero value produce the same key.
func (o *Options) PlanKeyOpts() (cache.PlanKeyOpts, error) {
	lo := o.LayoutOptions()
	if err := lo.ValidateAndSetDefaults(); err != nil {
		return cache.PlanKeyOpts{}, err
	}
	return cache.PlanKeyOpts{
		HallwayWidth:      lo.HallwayWidth,
		MaxAspect:         lo.MaxAspect,
		Tolerance:         lo.Tolerance,
		MaxAdjacencyIters: lo.MaxAdjacencyIters,
		MaxPlumbingIters:  lo.MaxPlumbingIters,
	}, nil
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: o.View + ":" + format,
		Scale:  o.Scale,
		Grid:   o.Grid,
		Labels: !o.NoLabels,
	}
}

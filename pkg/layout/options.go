package layout

import (
	"github.com/matzehuels/planforge/pkg/errors"
)

// Default option values.
const (
	// DefaultHallwayWidth is the corridor width in feet.
	DefaultHallwayWidth = 3.5
	// DefaultMaxAspect is the widest width:depth ratio a placed room may have.
	DefaultMaxAspect = 2.5
	// DefaultTolerance is the positional slack, in feet, under which two
	// coordinates are treated as coincident.
	DefaultTolerance = 0.5
	// DefaultMaxAdjacencyIters caps the adjacency hill-climb sweeps.
	DefaultMaxAdjacencyIters = 100
	// DefaultMaxPlumbingIters caps the plumbing hill-climb sweeps.
	DefaultMaxPlumbingIters = 60
)

// Options configures the layout engine. The zero value is usable: every
// field defaults via [Options.ValidateAndSetDefaults].
type Options struct {
	// HallwayWidth is the width of every corridor, in feet.
	HallwayWidth float64 `json:"hallway_width,omitempty"`

	// MaxAspect is the hard bound on room aspect ratios. Packers aim
	// well below it; a room exceeding it fails the run.
	MaxAspect float64 `json:"max_aspect,omitempty"`

	// Tolerance is the coincidence slack for shared-edge detection, in
	// feet. It absorbs the rounding packers apply to coordinates.
	Tolerance float64 `json:"tolerance,omitempty"`

	// MaxAdjacencyIters and MaxPlumbingIters cap the optimizer sweeps so
	// every invocation terminates.
	MaxAdjacencyIters int `json:"max_adjacency_iters,omitempty"`
	MaxPlumbingIters  int `json:"max_plumbing_iters,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// DefaultOptions returns options with every field at its default.
func DefaultOptions() *Options {
	o := &Options{}
	_ = o.ValidateAndSetDefaults()
	return o
}

// ValidateAndSetDefaults applies defaults to zero fields and rejects
// values the engine cannot work with. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.HallwayWidth == 0 {
		o.HallwayWidth = DefaultHallwayWidth
	}
	if o.MaxAspect == 0 {
		o.MaxAspect = DefaultMaxAspect
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxAdjacencyIters == 0 {
		o.MaxAdjacencyIters = DefaultMaxAdjacencyIters
	}
	if o.MaxPlumbingIters == 0 {
		o.MaxPlumbingIters = DefaultMaxPlumbingIters
	}

	if o.HallwayWidth < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "hallway width must be positive, got %.2f", o.HallwayWidth)
	}
	if o.MaxAspect < 1 {
		return errors.New(errors.ErrCodeInvalidOptions, "max aspect must be >= 1, got %.2f", o.MaxAspect)
	}
	if o.Tolerance < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "tolerance must be positive, got %.2f", o.Tolerance)
	}
	if o.MaxAdjacencyIters < 0 || o.MaxPlumbingIters < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "iteration caps must be positive")
	}

	o.validated = true
	return nil
}

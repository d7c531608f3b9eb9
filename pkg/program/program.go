// Package program defines the abstract room program and expands it into
// concrete room requests.
//
// A program is the pre-geometry description of a house: counts of bedrooms
// and bathrooms, optional rooms, and an open-concept flag, paired with the
// rectangular footprint the plan must fit. [Parse] turns that into the
// ordered, sized [plan.RoomSpec] list the layout engine packs.
//
// Program files are loaded through a small format registry ([Detect],
// [LoadFile]) supporting TOML and JSON.
package program

import (
	"github.com/matzehuels/planforge/pkg/errors"
)

// Program is the abstract room program: what the house should contain,
// before any geometry is assigned.
type Program struct {
	Bedrooms    int  `toml:"bedrooms" json:"bedrooms"`
	Bathrooms   int  `toml:"bathrooms" json:"bathrooms"`
	OpenConcept bool `toml:"open_concept" json:"open_concept"`
	HasDining   bool `toml:"has_dining" json:"has_dining"`
	HasPantry   bool `toml:"has_pantry" json:"has_pantry"`
	HasLaundry  bool `toml:"has_laundry" json:"has_laundry"`
	HasMudroom  bool `toml:"has_mudroom" json:"has_mudroom"`

	// Overrides adjusts individual room sizes, keyed by room name
	// (e.g. "Master_Bedroom", "Bedroom_2").
	Overrides map[string]Override `toml:"overrides" json:"overrides,omitempty"`
}

// Override resizes one room: either a target area, or an explicit
// width and depth pair. The two forms are mutually exclusive.
type Override struct {
	Area  float64 `toml:"area" json:"area,omitempty"`   // square feet
	Width float64 `toml:"width" json:"width,omitempty"` // feet
	Depth float64 `toml:"depth" json:"depth,omitempty"` // feet
}

// Footprint is the rectangular building envelope, in feet. Length runs
// along the x axis, width along y.
type Footprint struct {
	Length float64 `toml:"length_ft" json:"length_ft"`
	Width  float64 `toml:"width_ft" json:"width_ft"`
}

// Area returns the footprint area in square feet.
func (f Footprint) Area() float64 { return f.Length * f.Width }

// Request pairs a room program with its footprint. This is the complete
// input record of a generation run.
type Request struct {
	Footprint Footprint `toml:"footprint" json:"footprint"`
	Program   Program   `toml:"program" json:"program"`
}

// Validate checks the program record against the input contract.
func (p *Program) Validate() error {
	if p.Bedrooms < 1 {
		return errors.New(errors.ErrCodeInvalidProgram, "bedrooms must be >= 1, got %d", p.Bedrooms)
	}
	if p.Bathrooms < 1 {
		return errors.New(errors.ErrCodeInvalidProgram, "bathrooms must be >= 1, got %d", p.Bathrooms)
	}

	for name, ov := range p.Overrides {
		if err := errors.ValidateRoomName(name); err != nil {
			return err
		}
		hasArea := ov.Area > 0
		hasDims := ov.Width > 0 && ov.Depth > 0
		if hasArea && (ov.Width > 0 || ov.Depth > 0) {
			return errors.New(errors.ErrCodeInvalidProgram, "override for %s mixes area and width/depth", name)
		}
		if !hasArea && !hasDims {
			return errors.New(errors.ErrCodeInvalidProgram, "override for %s needs area or width+depth", name)
		}
	}

	return nil
}

// Validate checks the footprint dimensions.
func (f Footprint) Validate() error {
	if f.Length <= 0 || f.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidFootprint, "footprint must be positive, got %.1f x %.1f ft", f.Length, f.Width)
	}
	return nil
}

// Validate checks the full request.
func (r *Request) Validate() error {
	if err := r.Footprint.Validate(); err != nil {
		return err
	}
	return r.Program.Validate()
}

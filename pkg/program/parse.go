package program

import (
	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/plan"
)

// usableFraction is the share of the footprint treated as packable when
// scaling targets: walls, corridors, and packing slack consume the rest.
const usableFraction = 0.88

// Scale bounds: targets stretch or shrink at most this far from the
// template values, whatever the footprint size.
const (
	minScale = 0.7
	maxScale = 1.3
)

// Parse expands a request into the ordered room requests the layout
// engine packs. The order is fixed: public rooms, the master suite,
// secondary bedrooms and bathrooms, then service rooms, so identical
// requests always produce an identical list.
func Parse(req *Request) ([]plan.RoomSpec, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p := req.Program

	templates := []Template{greatRoomTemplate}
	if p.HasDining {
		templates = append(templates, diningRoomTemplate)
	}
	templates = append(templates, kitchenTemplate)

	// Bedrooms >= 1 and bathrooms >= 1 are guaranteed by validation, so
	// the master suite always exists.
	templates = append(templates, masterBedroomTemplate, masterClosetTemplate, masterBathroomTemplate)
	for n := 2; n <= p.Bedrooms; n++ {
		templates = append(templates, bedroomTemplate(n))
	}
	for n := 2; n <= p.Bathrooms; n++ {
		templates = append(templates, bathroomTemplate(n))
	}

	if p.HasPantry {
		templates = append(templates, pantryTemplate)
	}
	if p.HasLaundry {
		templates = append(templates, laundryTemplate)
	}
	if p.HasMudroom {
		templates = append(templates, mudroomTemplate)
	}

	specs := make([]plan.RoomSpec, len(templates))
	names := make(map[string]bool, len(templates))
	overridden := make(map[string]bool, len(p.Overrides))
	for i, t := range templates {
		s := t.spec()
		if ov, ok := p.Overrides[s.Name]; ok {
			applyOverride(&s, ov)
			overridden[s.Name] = true
		}
		specs[i] = s
		names[s.Name] = true
	}

	for name := range p.Overrides {
		if !names[name] {
			return nil, errors.New(errors.ErrCodeInvalidProgram, "override for unknown room %q", name)
		}
	}

	scaleSpecs(specs, overridden, req.Footprint)
	return specs, nil
}

// applyOverride resizes a spec from an explicit area or width/depth pair.
// Explicit dimensions pin the target area and raise the minimum width; the
// aspect bound stays at the template value so the placement invariant holds.
func applyOverride(s *plan.RoomSpec, ov Override) {
	if ov.Area > 0 {
		s.TargetArea = ov.Area
	} else {
		s.TargetArea = ov.Width * ov.Depth
		s.MinWidth = max(s.MinWidth, 0.8*ov.Width)
	}
	s.MinArea = 0.8 * s.TargetArea
}

// scaleSpecs stretches or shrinks target areas toward the usable footprint
// area, then applies the per-type caps. Minimum areas follow the scale but
// never drop below 80% of the template value. Overridden rooms only ever
// shrink and are never capped: the user asked for that size.
func scaleSpecs(specs []plan.RoomSpec, overridden map[string]bool, fp Footprint) {
	var total float64
	for i := range specs {
		total += specs[i].TargetArea
	}
	if total <= 0 {
		return
	}

	scale := fp.Area() * usableFraction / total
	scale = min(max(scale, minScale), maxScale)

	for i := range specs {
		s := &specs[i]
		if overridden[s.Name] {
			if scale < 1 {
				s.TargetArea *= scale
				s.MinArea *= max(scale, 0.8)
			}
		} else {
			s.TargetArea *= scale
			s.MinArea *= max(scale, 0.8)
			if c, ok := areaCaps[s.Type]; ok && s.TargetArea > c {
				s.TargetArea = c
			}
		}
		if s.MinArea > s.TargetArea {
			s.MinArea = s.TargetArea
		}
	}
}

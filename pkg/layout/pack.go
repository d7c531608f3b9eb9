package layout

import (
	"math"

	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// packZone dispatches a zone band to its packer. The center band mixes
// public and service rooms; wing bands hold the private suites.
func packZone(zone plan.Zone, specs []plan.RoomSpec, band geometry.Rect, opts *Options) []plan.PlacedRoom {
	switch zone {
	case plan.ZoneCenter:
		return packCenter(specs, band, opts)
	case plan.ZoneMaster:
		return packWing(specs, band, opts, true)
	case plan.ZoneSecondary:
		return packWing(specs, band, opts, false)
	}
	return squarify(specs, band, opts.MaxAspect)
}

// rowDepth picks the depth of a packed row. The natural depth spreads
// the areas across the full span; when that leaves a cell outside the
// aspect bound the row deepens so its largest cell lands near 2:1 and
// runs short of the span instead.
func rowDepth(areas []float64, span, maxAspect float64) (depth float64, fills bool) {
	var total, largest, smallest float64
	for _, a := range areas {
		total += a
		if a > largest {
			largest = a
		}
		if smallest == 0 || a < smallest {
			smallest = a
		}
	}
	if total <= eps || span <= eps {
		return 0, false
	}

	depth = total / span
	if worstCellAspect(areas, depth) <= maxAspect {
		return depth, true
	}

	depth = math.Sqrt(largest / 2.0)
	lo := math.Sqrt(largest / maxAspect)
	hi := math.Sqrt(smallest * maxAspect)
	if lo <= hi {
		depth = math.Min(math.Max(depth, lo), hi)
	}
	return depth, false
}

// rowOverflows reports whether a row of the given total area would run
// past span when packed at depth. rowDepth can pick a depth shallower
// than total/span when the span is too narrow to hold every cell inside
// the aspect bound; such a row cannot be placed and the caller must
// repack the zone another way.
func rowOverflows(total, depth, span float64) bool {
	return depth > eps && total/depth > span+eps
}

// worstCellAspect is the worst aspect among cells of the given areas at
// the given row depth.
func worstCellAspect(areas []float64, depth float64) float64 {
	if depth <= eps {
		return math.Inf(1)
	}
	worst := 0.0
	for _, a := range areas {
		w := a / depth
		if w <= eps {
			continue
		}
		worst = math.Max(worst, math.Max(w/depth, depth/w))
	}
	return worst
}

// packRow lays specs side by side in one row, widths proportional to
// their target areas at the given depth. With fill set the row spans
// [x, x+span] exactly and the last room absorbs the rounding remainder;
// otherwise rooms may leave slack at the far end. fromRight packs the
// row against the right edge instead of the left, which keeps the first
// (largest) room nearest a hallway on that side.
func packRow(specs []plan.RoomSpec, x, y, span, depth float64, fill, fromRight bool) []plan.PlacedRoom {
	if len(specs) == 0 || depth <= eps {
		return nil
	}
	d := round2(depth)
	y = round2(y)

	out := make([]plan.PlacedRoom, 0, len(specs))
	if fromRight {
		cursor := round2(x + span)
		for i := range specs {
			w := round2(specs[i].TargetArea / depth)
			if fill && i == len(specs)-1 {
				w = round2(cursor - x)
			}
			cursor = round2(cursor - w)
			out = append(out, plan.PlacedRoom{
				RoomSpec: specs[i],
				Rect:     geometry.Rect{X: cursor, Y: y, W: w, D: d},
			})
		}
	} else {
		cursor := round2(x)
		for i := range specs {
			w := round2(specs[i].TargetArea / depth)
			if fill && i == len(specs)-1 {
				w = round2(x + span - cursor)
			}
			out = append(out, plan.PlacedRoom{
				RoomSpec: specs[i],
				Rect:     geometry.Rect{X: cursor, Y: y, W: w, D: d},
			})
			cursor = round2(cursor + w)
		}
	}
	return out
}

// verifyPlacement checks the hard placement guarantees after packing:
// every room at or above its minimum area and inside the aspect bound.
func verifyPlacement(rooms []plan.PlacedRoom, opts *Options) error {
	const slack = 1e-6
	for i := range rooms {
		r := &rooms[i]
		if r.Area()+slack < r.MinArea {
			return errors.New(errors.ErrCodePackingFailed,
				"room %s in zone %s packed at %.1f sqft, below its %.1f sqft minimum",
				r.Name, r.Zone, r.Area(), r.MinArea)
		}
		if r.Aspect() > opts.MaxAspect+0.01 {
			return errors.New(errors.ErrCodePackingFailed,
				"room %s in zone %s packed at aspect %.2f, outside the %.1f bound",
				r.Name, r.Zone, r.Aspect(), opts.MaxAspect)
		}
	}
	return nil
}

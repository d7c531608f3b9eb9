package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

const eps = 1e-9

// usableFloor is the usable length, in feet, below which the layout
// drops to a single corridor.
const usableFloor = 20.0

// zoneLayout is the strip partition of the footprint: full-height bands
// along the length axis, wings on the outside, the merged public/service
// center between them.
type zoneLayout struct {
	master    geometry.Rect
	center    geometry.Rect
	secondary geometry.Rect

	hasMaster    bool
	hasSecondary bool
}

// band returns the strip a zone packs into. Service rooms are re-tagged
// into the center before packing, so only three bands exist.
func (z *zoneLayout) band(zone plan.Zone) (geometry.Rect, bool) {
	switch zone {
	case plan.ZoneMaster:
		return z.master, z.hasMaster
	case plan.ZoneSecondary:
		return z.secondary, z.hasSecondary
	case plan.ZoneCenter:
		return z.center, true
	}
	return geometry.Rect{}, false
}

// allocateZones splits the footprint into zone strips along the length
// axis, reserving a vertical corridor between adjacent strips:
//
//	[master wing | hall | center | hall | secondary wing]
//
// Strip widths start from zone area divided by building width, get
// clamped to per-strip minimums, and are then normalized to exactly
// cover the usable length. Tight footprints (usable length below 20 ft
// with both corridors) fall back to a single corridor on the master
// side. When even the minimum strip widths cannot fit, the program
// cannot be laid out at all and allocation fails with INSUFFICIENT_AREA.
func allocateZones(specs []plan.RoomSpec, length, width float64, opts *Options) (zoneLayout, []plan.HallwaySegment, error) {
	hw := opts.HallwayWidth

	var masterArea, secondaryArea, centerArea float64
	for i := range specs {
		switch specs[i].Zone {
		case plan.ZoneMaster:
			masterArea += specs[i].TargetArea
		case plan.ZoneSecondary:
			secondaryArea += specs[i].TargetArea
		default:
			centerArea += specs[i].TargetArea
		}
	}

	z := zoneLayout{
		hasMaster:    masterArea > 0,
		hasSecondary: secondaryArea > 0,
	}

	numHalls := 0
	if z.hasMaster {
		numHalls++
	}
	if z.hasSecondary {
		numHalls++
	}

	usable := length - float64(numHalls)*hw
	if usable < usableFloor && numHalls > 1 {
		// Keep the corridor on the master side; the secondary wing abuts
		// the center directly.
		numHalls = 1
		usable = length - hw
	}

	// Minimum strip widths. Narrow footprints relax the wing minimums so
	// the wings do not starve the center.
	var minWing, minCenter float64
	if width < 36 {
		minWing = math.Max(12, 0.15*length)
		minCenter = math.Max(16, 0.25*length)
	} else {
		minWing = math.Max(14, 0.2*length)
		minCenter = math.Max(16, 0.3*length)
	}

	minTotal := minCenter
	if z.hasMaster {
		minTotal += minWing
	}
	if z.hasSecondary {
		minTotal += minWing
	}
	if minTotal > usable+eps {
		return zoneLayout{}, nil, errors.New(errors.ErrCodeInsufficientArea,
			"zone strips need at least %.1f ft of length but only %.1f ft is usable", minTotal, usable)
	}

	widths := make([]float64, 3) // master, center, secondary
	mins := make([]float64, 3)
	widths[1] = math.Max(centerArea/width, minCenter)
	mins[1] = minCenter
	if z.hasMaster {
		widths[0] = math.Max(masterArea/width, minWing)
		mins[0] = minWing
	}
	if z.hasSecondary {
		widths[2] = math.Max(secondaryArea/width, minWing)
		mins[2] = minWing
	}
	fitWidths(widths, mins, usable)

	// Wing widths land on a tenth of a foot; the center closes the sum
	// exactly so the strips plus corridors cover the full length.
	masterW := round1(widths[0])
	secondaryW := round1(widths[2])
	centerW := round2(usable - masterW - secondaryW)

	var halls []plan.HallwaySegment
	cursor := 0.0
	if z.hasMaster {
		z.master = geometry.Rect{X: cursor, Y: 0, W: masterW, D: width}
		cursor += masterW
		halls = append(halls, hallSegment(len(halls), cursor, width, hw))
		cursor += hw
	}
	z.center = geometry.Rect{X: cursor, Y: 0, W: centerW, D: width}
	cursor += centerW
	if z.hasSecondary {
		if numHalls > 1 || !z.hasMaster {
			halls = append(halls, hallSegment(len(halls), cursor, width, hw))
			cursor += hw
		}
		z.secondary = geometry.Rect{X: cursor, Y: 0, W: secondaryW, D: width}
	}

	return z, halls, nil
}

// hallSegment builds the numbered full-height corridor at x.
func hallSegment(idx int, x, width, hw float64) plan.HallwaySegment {
	return plan.HallwaySegment{
		Name:        fmt.Sprintf("Hallway_%d", idx),
		Rect:        geometry.Rect{X: round2(x), Y: 0, W: hw, D: width},
		Orientation: plan.HallVertical,
		Role:        plan.HallZoneBoundary,
	}
}

// fitWidths rescales strip widths to sum exactly to usable without
// pushing any strip below its minimum. The slack above the minimums is
// scaled uniformly; when there is none, the widest strip absorbs the
// difference.
func fitWidths(widths, mins []float64, usable float64) {
	var minTotal, free float64
	for i := range widths {
		minTotal += mins[i]
		free += widths[i] - mins[i]
	}
	if free <= eps {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		widths[widest] += usable - minTotal
		return
	}
	scale := (usable - minTotal) / free
	for i := range widths {
		widths[i] = mins[i] + (widths[i]-mins[i])*scale
	}
}

// round2 rounds to hundredths of a foot, the engine's coordinate grid.
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// round1 rounds to tenths of a foot.
func round1(v float64) float64 { return math.Round(v*10) / 10 }

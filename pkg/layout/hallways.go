package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// addWingHallways carves a wing-internal hallway into the secondary
// wing when it is deep enough to need one: more than 24 ft front to
// back with at least three rooms. The hallway lands on the seam between
// the front bedroom row and the rear row, and the rear row slides back
// to make space, shrinking only when the band has no slack left. The
// master wing keeps its circulation inside the suite and never takes
// one.
func addWingHallways(rooms []plan.PlacedRoom, halls []plan.HallwaySegment, zl zoneLayout, opts *Options) []plan.HallwaySegment {
	band, ok := zl.band(plan.ZoneSecondary)
	if !ok || band.D <= 24 {
		return halls
	}

	var zone []*plan.PlacedRoom
	for i := range rooms {
		if rooms[i].Zone == plan.ZoneSecondary {
			zone = append(zone, &rooms[i])
		}
	}
	if len(zone) < 3 {
		return halls
	}

	tol := opts.Tolerance
	var front, back []*plan.PlacedRoom
	for _, r := range zone {
		if r.Y <= band.Y+tol {
			front = append(front, r)
		} else {
			back = append(back, r)
		}
	}
	if len(front) == 0 || len(back) == 0 {
		return halls
	}

	seamY := band.Y
	for _, r := range front {
		seamY = math.Max(seamY, r.MaxY())
	}

	// Rear rooms move back by the hallway width, trimmed to the band.
	// Abort if that would squeeze any of them below a usable depth.
	hw := opts.HallwayWidth
	for _, r := range back {
		if math.Min(r.D, band.MaxY()-(r.Y+hw)) < 3 {
			return halls
		}
	}
	for _, r := range back {
		r.Y = round2(r.Y + hw)
		if r.MaxY() > band.MaxY()+eps {
			r.D = round2(band.MaxY() - r.Y)
		}
	}

	xLo, xHi := front[0].X, front[0].MaxX()
	for _, r := range front[1:] {
		xLo = math.Min(xLo, r.X)
		xHi = math.Max(xHi, r.MaxX())
	}

	return append(halls, plan.HallwaySegment{
		Name:        fmt.Sprintf("Hallway_%d", len(halls)),
		Rect:        geometry.Rect{X: round2(xLo), Y: round2(seamY), W: round2(xHi - xLo), D: round2(hw)},
		Orientation: plan.HallHorizontal,
		Role:        plan.HallWingInternal,
	})
}

// fixDeadEnds extends wing-internal hallways whose ends stop short of
// the circulation network. Each open end grows to the nearest hallway
// edge beyond it, or to the footprint boundary when none lies beyond,
// unless the extension would cut through a room.
func fixDeadEnds(halls []plan.HallwaySegment, rooms []plan.PlacedRoom, length float64, opts *Options) {
	tol := opts.Tolerance
	for i := range halls {
		h := &halls[i]
		if h.Orientation != plan.HallHorizontal {
			continue
		}

		if h.X > tol && !hallsTouchX(halls, i, h.X, h.Y, h.MaxY(), tol) {
			target := 0.0
			for j := range halls {
				if j == i {
					continue
				}
				g := &halls[j]
				if math.Min(h.MaxY(), g.MaxY())-math.Max(h.Y, g.Y) <= eps {
					continue
				}
				if g.MaxX() <= h.X+tol {
					target = math.Max(target, g.MaxX())
				}
			}
			strip := geometry.Rect{X: target, Y: h.Y, W: h.X - target, D: h.D}
			if !stripHitsRoom(strip, rooms, tol) {
				h.W = round2(h.MaxX() - target)
				h.X = round2(target)
			}
		}

		if h.MaxX() < length-tol && !hallsTouchX(halls, i, h.MaxX(), h.Y, h.MaxY(), tol) {
			target := length
			for j := range halls {
				if j == i {
					continue
				}
				g := &halls[j]
				if math.Min(h.MaxY(), g.MaxY())-math.Max(h.Y, g.Y) <= eps {
					continue
				}
				if g.X >= h.MaxX()-tol {
					target = math.Min(target, g.X)
				}
			}
			strip := geometry.Rect{X: h.MaxX(), Y: h.Y, W: target - h.MaxX(), D: h.D}
			if !stripHitsRoom(strip, rooms, tol) {
				h.W = round2(target - h.X)
			}
		}
	}
}

// hallsTouchX reports whether any hallway other than halls[skip] spans
// the vertical line at x within the given y range.
func hallsTouchX(halls []plan.HallwaySegment, skip int, x, yLo, yHi, tol float64) bool {
	for j := range halls {
		if j == skip {
			continue
		}
		g := &halls[j]
		if x < g.X-tol || x > g.MaxX()+tol {
			continue
		}
		if math.Min(yHi, g.MaxY())-math.Max(yLo, g.Y) > eps {
			return true
		}
	}
	return false
}

func stripHitsRoom(strip geometry.Rect, rooms []plan.PlacedRoom, tol float64) bool {
	if strip.W <= eps || strip.D <= eps {
		return false
	}
	for i := range rooms {
		if geometry.OverlapsWithin(strip, rooms[i].Rect, tol) {
			return true
		}
	}
	return false
}

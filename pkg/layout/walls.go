package layout

import (
	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// buildWalls emits the interior wall segments of a plan: one segment
// per distinct shared edge between two spaces, with door openings
// punched out as gaps. Exterior shell walls are skipped, as is the
// boundary inside an open-concept public core.
func buildWalls(rooms []plan.PlacedRoom, halls []plan.HallwaySegment, doors []plan.DoorPlacement, length, width float64, openConcept bool, opts *Options) []plan.WallSegment {
	all := make([]plan.PlacedRoom, 0, len(rooms)+len(halls))
	all = append(all, rooms...)
	for i := range halls {
		all = append(all, hallwayRoom(&halls[i]))
	}

	seen := make(map[[4]float64]bool)
	var walls []plan.WallSegment
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			a, b := &all[i], &all[j]
			// Joined corridors read as one continuous space.
			if a.Type == plan.TypeHallway && b.Type == plan.TypeHallway {
				continue
			}
			edge, ok := geometry.SharedEdge(a.Rect, b.Rect, opts.Tolerance)
			if !ok || edge.Length() <= opts.Tolerance {
				continue
			}
			if isExteriorEdge(edge, length, width, opts.Tolerance) {
				continue
			}
			if openConcept && openFlowPair(a.Type, b.Type) {
				continue
			}

			axisBit := 0.0
			if edge.Axis == geometry.AxisY {
				axisBit = 1
			}
			key := [4]float64{axisBit, round1(edge.Pos), round1(edge.Lo), round1(edge.Hi)}
			if seen[key] {
				continue
			}
			seen[key] = true

			seg := plan.WallSegment{
				Axis: edge.Axis,
				Pos:  round2(edge.Pos),
				Lo:   round2(edge.Lo),
				Hi:   round2(edge.Hi),
			}
			for k := range doors {
				d := &doors[k]
				if d.Axis != edge.Axis {
					continue
				}
				if !pairMatches(d, a.Name, b.Name) {
					continue
				}
				lo, hi := d.Span()
				seg.Gaps = append(seg.Gaps, plan.Gap{Lo: round2(lo), Hi: round2(hi)})
			}
			walls = append(walls, seg)
		}
	}
	return walls
}

// isExteriorEdge reports whether a shared edge lies on the footprint
// shell, where the separate exterior wall assembly runs instead.
func isExteriorEdge(edge geometry.Edge, length, width, tol float64) bool {
	if edge.Axis == geometry.AxisY {
		return edge.Pos <= tol || edge.Pos >= length-tol
	}
	return edge.Pos <= tol || edge.Pos >= width-tol
}

func pairMatches(d *plan.DoorPlacement, a, b string) bool {
	return (d.Room == a && d.ConnectsTo == b) || (d.Room == b && d.ConnectsTo == a)
}

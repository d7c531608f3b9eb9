package layout

import (
	"math"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// adjacencyScore scores a placement against the adjacency rules.
// Mandatory pairs earn +10 with at least 3 ft of shared wall and -20
// without; strong pairs earn +3 when satisfied; prohibited contact
// costs -50; wet rooms sharing any wall earn a small plumbing bonus.
func adjacencyScore(rooms []plan.PlacedRoom, tol float64) float64 {
	score := 0.0
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			a, b := &rooms[i], &rooms[j]
			shared := geometry.SharedEdgeLength(a.Rect, b.Rect, tol)
			switch relationBetween(a, b) {
			case relMandatory:
				if shared >= 3 {
					score += 10
				} else {
					score -= 20
				}
			case relStrong:
				if shared >= 3 {
					score += 3
				}
			case relProhibited:
				if shared >= 1 {
					score -= 50
				}
			}
			if a.Wet && b.Wet && shared >= 1 {
				score += 2
			}
		}
	}
	return score
}

// optimizeAdjacency is a greedy swap search: same-zone pairs of
// comparably sized rooms trade rectangles whenever that strictly
// improves the adjacency score. Sweeps repeat until one passes without
// an improvement or the iteration cap is hit.
func optimizeAdjacency(rooms []plan.PlacedRoom, opts *Options) {
	best := adjacencyScore(rooms, opts.Tolerance)
	for sweep := 0; sweep < opts.MaxAdjacencyIters; sweep++ {
		improved := false
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				a, b := &rooms[i], &rooms[j]
				if a.Zone != b.Zone {
					continue
				}
				if areaRatio(a.Area(), b.Area()) > 2.0 {
					continue
				}
				a.Rect, b.Rect = b.Rect, a.Rect
				if s := adjacencyScore(rooms, opts.Tolerance); s > best {
					best = s
					improved = true
				} else {
					a.Rect, b.Rect = b.Rect, a.Rect
				}
			}
		}
		if !improved {
			break
		}
	}
}

// areaRatio is the larger area over the smaller, floored at 1 sqft to
// dodge degenerate rects.
func areaRatio(a, b float64) float64 {
	lo := math.Max(math.Min(a, b), 1)
	return math.Max(a, b) / lo
}

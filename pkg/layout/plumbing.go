package layout

import (
	"math"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// plumbingScore rates how tightly the wet rooms cluster. Each wet room
// is penalised by its Manhattan distance to the wet centroid (-5 per
// 50 ft); back-to-back bathrooms earn +5 for a 5 ft shared wall or +3
// for 3 ft; a kitchen within 10 ft of a bathroom earns +3, within
// 15 ft +1; any wet pair sharing 3 ft of wall earns +2 for the shared
// stack.
func plumbingScore(rooms []plan.PlacedRoom, tol float64) float64 {
	var wet []*plan.PlacedRoom
	for i := range rooms {
		if rooms[i].Wet {
			wet = append(wet, &rooms[i])
		}
	}
	if len(wet) < 2 {
		return 0
	}

	var cx, cy float64
	for _, r := range wet {
		cx += r.CenterX()
		cy += r.CenterY()
	}
	cx /= float64(len(wet))
	cy /= float64(len(wet))

	score := 0.0
	const maxDist = 50.0
	for _, r := range wet {
		dist := math.Abs(r.CenterX()-cx) + math.Abs(r.CenterY()-cy)
		score -= dist / maxDist * 5
	}

	var baths []*plan.PlacedRoom
	for _, r := range wet {
		if r.Type == plan.TypeBathroom {
			baths = append(baths, r)
		}
	}
	for i := range baths {
		for j := i + 1; j < len(baths); j++ {
			shared := geometry.SharedEdgeLength(baths[i].Rect, baths[j].Rect, tol)
			if shared >= 5 {
				score += 5
			} else if shared >= 3 {
				score += 3
			}
		}
	}

	for _, r := range wet {
		if r.Type != plan.TypeKitchen {
			continue
		}
		for _, ba := range baths {
			switch dist := geometry.Manhattan(r.Rect, ba.Rect); {
			case dist <= 10:
				score += 3
			case dist <= 15:
				score += 1
			}
		}
	}

	for i := range wet {
		for j := i + 1; j < len(wet); j++ {
			if geometry.SharedEdgeLength(wet[i].Rect, wet[j].Rect, tol) >= 3 {
				score += 2
			}
		}
	}
	return score
}

// clusterPlumbing shortens plumbing runs by swapping same-zone wet
// rooms of comparable size whenever that strictly improves the plumbing
// score.
func clusterPlumbing(rooms []plan.PlacedRoom, opts *Options) {
	wetCount := 0
	for i := range rooms {
		if rooms[i].Wet {
			wetCount++
		}
	}
	if wetCount < 2 {
		return
	}

	best := plumbingScore(rooms, opts.Tolerance)
	for sweep := 0; sweep < opts.MaxPlumbingIters; sweep++ {
		improved := false
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				a, b := &rooms[i], &rooms[j]
				if !a.Wet || !b.Wet || a.Zone != b.Zone {
					continue
				}
				if a.Area() <= 0 || b.Area() <= 0 || areaRatio(a.Area(), b.Area()) > 2.5 {
					continue
				}
				a.Rect, b.Rect = b.Rect, a.Rect
				if s := plumbingScore(rooms, opts.Tolerance); s > best {
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

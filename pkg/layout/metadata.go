package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// buildMetadata computes the soft findings and aggregate scores for a
// finished plan. Nothing here fails generation: bounds and overlap
// findings become warnings, reachability gaps and door density become
// quality issues.
func buildMetadata(rooms []plan.PlacedRoom, halls []plan.HallwaySegment, doors []plan.DoorPlacement, unreachable []string, fallback int, length, width float64, opts *Options) plan.Metadata {
	footprint := length * width
	var warnings []string

	for i := range rooms {
		r := &rooms[i]
		if r.X < -0.5 || r.Y < -0.5 {
			warnings = append(warnings, fmt.Sprintf("%s has negative coordinates", r.Name))
		}
		if r.MaxX() > length+0.5 {
			warnings = append(warnings, fmt.Sprintf("%s exceeds building length", r.Name))
		}
		if r.MaxY() > width+0.5 {
			warnings = append(warnings, fmt.Sprintf("%s exceeds building width", r.Name))
		}
	}
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if geometry.OverlapsWithin(rooms[i].Rect, rooms[j].Rect, 0.5) {
				warnings = append(warnings, fmt.Sprintf("Overlap: %s and %s", rooms[i].Name, rooms[j].Name))
			}
		}
	}

	var roomArea, hallArea float64
	zoneArea := make(map[string]float64)
	for i := range rooms {
		a := rooms[i].Area()
		roomArea += a
		zoneArea[string(rooms[i].Zone)] += a
	}
	for i := range halls {
		hallArea += halls[i].Area()
	}
	zoneArea[string(plan.ZoneCirculation)] = hallArea

	zonePct := make(map[string]float64, len(zoneArea))
	for k, v := range zoneArea {
		if footprint > 0 {
			zonePct[k] = round1(v / footprint * 100)
		} else {
			zonePct[k] = 0
		}
	}

	if unreachable == nil {
		unreachable = []string{}
	}
	if len(unreachable) > 0 {
		warnings = append(warnings, fmt.Sprintf("Unreachable rooms: %v", unreachable))
	}

	doorsPerRoom := 0.0
	if len(rooms) > 0 {
		doorsPerRoom = float64(len(doors)) / float64(len(rooms))
	}
	hallwayRatio := 0.0
	if roomArea+hallArea > 0 {
		hallwayRatio = hallArea / (roomArea + hallArea)
	}

	var issues []string
	if doorsPerRoom > 1.2 {
		issues = append(issues, "high_door_density")
	}
	if hallwayRatio > 0.20 {
		issues = append(issues, "high_circulation_ratio")
	}
	if len(unreachable) > 0 {
		issues = append(issues, "unreachable_rooms")
	}
	if fallback > 2 {
		issues = append(issues, "many_connectivity_fallback_doors")
	}
	status := plan.QualityGood
	if len(issues) > 0 {
		status = plan.QualityWarning
	}

	fill := 0.0
	if footprint > 0 {
		fill = roomArea / footprint
	}

	return plan.Metadata{
		UnreachableRooms: unreachable,
		PlumbingScore:    round1(plumbingScore(rooms, opts.Tolerance)),
		FillRatio:        round3(fill),
		RoomCount:        len(rooms),
		RoomArea:         round2(roomArea),
		HallwayCount:     len(halls),
		HallwayArea:      round2(hallArea),
		ZonePercent:      zonePct,
		WetClusterRadius: round1(wetClusterRadius(rooms)),
		FallbackDoors:    fallback,
		Warnings:         warnings,
		Quality: plan.QualityReport{
			Status:       status,
			Issues:       issues,
			DoorsPerRoom: round2(doorsPerRoom),
			HallwayRatio: round3(hallwayRatio),
		},
	}
}

// wetClusterRadius is the largest straight-line distance from the wet
// centroid to a wet room center, 0 with fewer than two wet rooms.
func wetClusterRadius(rooms []plan.PlacedRoom) float64 {
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

	radius := 0.0
	for _, r := range wet {
		radius = math.Max(radius, math.Hypot(r.CenterX()-cx, r.CenterY()-cy))
	}
	return radius
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

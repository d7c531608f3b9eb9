package layout

import (
	"fmt"
	"testing"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

func boundaryHall(idx int, x float64) plan.HallwaySegment {
	return plan.HallwaySegment{
		Name:        fmt.Sprintf("Hallway_%d", idx),
		Rect:        geometry.Rect{X: x, Y: 0, W: 3.5, D: 30},
		Orientation: plan.HallVertical,
		Role:        plan.HallZoneBoundary,
	}
}

func secondaryLayout(d float64) zoneLayout {
	return zoneLayout{
		master:       geometry.Rect{X: 0, Y: 0, W: 17.1, D: d},
		center:       geometry.Rect{X: 20.6, Y: 0, W: 36.9, D: d},
		secondary:    geometry.Rect{X: 61, Y: 0, W: 19, D: d},
		hasMaster:    true,
		hasSecondary: true,
	}
}

func TestAddWingHallwaysCarvesDeepWing(t *testing.T) {
	rooms := []plan.PlacedRoom{
		placedRoom("Bedroom_2", plan.TypeBedroom, plan.ZoneSecondary, 61, 0, 9.5, 19.71),
		placedRoom("Bedroom_3", plan.TypeBedroom, plan.ZoneSecondary, 70.5, 0, 9.5, 19.71),
		wetRoom("Bathroom_2", plan.TypeBathroom, plan.ZoneSecondary, 61, 19.71, 11.17, 5.59),
	}
	halls := []plan.HallwaySegment{boundaryHall(0, 17.1), boundaryHall(1, 57.5)}

	out := addWingHallways(rooms, halls, secondaryLayout(30), DefaultOptions())
	if len(out) != 3 {
		t.Fatalf("hallways = %d, want 3", len(out))
	}

	// The carved corridor sits on the seam behind the bedroom row and
	// spans the row's full extent.
	h := &out[2]
	if h.Name != "Hallway_2" {
		t.Errorf("name = %s, want Hallway_2", h.Name)
	}
	if h.Orientation != plan.HallHorizontal || h.Role != plan.HallWingInternal {
		t.Errorf("orientation/role = %s/%s, want horizontal/wing-internal", h.Orientation, h.Role)
	}
	if !near(h.X, 61) || !near(h.Y, 19.71) || !near(h.W, 19) || !near(h.D, 3.5) {
		t.Errorf("corridor = %+v, want [61, 19.71, 19, 3.5]", h.Rect)
	}

	// The rear row slides back to make space, keeping its depth.
	bath := &rooms[2]
	if !near(bath.Y, 23.21) || !near(bath.D, 5.59) {
		t.Errorf("bathroom = [y %v, d %v], want [23.21, 5.59]", bath.Y, bath.D)
	}
	// The bedrooms do not move.
	if !near(rooms[0].Y, 0) || !near(rooms[0].D, 19.71) {
		t.Errorf("bedroom moved: %+v", rooms[0].Rect)
	}
}

func TestAddWingHallwaysShallowWing(t *testing.T) {
	rooms := []plan.PlacedRoom{
		placedRoom("Bedroom_2", plan.TypeBedroom, plan.ZoneSecondary, 61, 0, 9.5, 14),
		placedRoom("Bedroom_3", plan.TypeBedroom, plan.ZoneSecondary, 70.5, 0, 9.5, 14),
		wetRoom("Bathroom_2", plan.TypeBathroom, plan.ZoneSecondary, 61, 14, 11, 6),
	}
	halls := []plan.HallwaySegment{boundaryHall(0, 17.1), boundaryHall(1, 57.5)}

	// 24 ft is the threshold: a wing this shallow walks from its rooms.
	out := addWingHallways(rooms, halls, secondaryLayout(24), DefaultOptions())
	if len(out) != 2 {
		t.Errorf("hallways = %d, want 2 (no carve)", len(out))
	}
}

func TestAddWingHallwaysFewRooms(t *testing.T) {
	rooms := []plan.PlacedRoom{
		placedRoom("Bedroom_2", plan.TypeBedroom, plan.ZoneSecondary, 61, 0, 19, 15),
		wetRoom("Bathroom_2", plan.TypeBathroom, plan.ZoneSecondary, 61, 15, 11, 6),
	}
	halls := []plan.HallwaySegment{boundaryHall(0, 17.1)}

	out := addWingHallways(rooms, halls, secondaryLayout(30), DefaultOptions())
	if len(out) != 1 {
		t.Errorf("hallways = %d, want 1 (two rooms never need a corridor)", len(out))
	}
}

func TestAddWingHallwaysSingleRow(t *testing.T) {
	// Three rooms all on the front row: no seam, no corridor.
	rooms := []plan.PlacedRoom{
		placedRoom("Bedroom_2", plan.TypeBedroom, plan.ZoneSecondary, 61, 0, 6, 26),
		placedRoom("Bedroom_3", plan.TypeBedroom, plan.ZoneSecondary, 67, 0, 6, 26),
		placedRoom("Bedroom_4", plan.TypeBedroom, plan.ZoneSecondary, 73, 0, 6, 26),
	}
	halls := []plan.HallwaySegment{boundaryHall(0, 57.5)}

	out := addWingHallways(rooms, halls, secondaryLayout(30), DefaultOptions())
	if len(out) != 1 {
		t.Errorf("hallways = %d, want 1", len(out))
	}
}

func TestAddWingHallwaysShrinksTightRearRow(t *testing.T) {
	zl := zoneLayout{secondary: geometry.Rect{X: 0, Y: 0, W: 20, D: 30}, hasSecondary: true}
	rooms := []plan.PlacedRoom{
		placedRoom("Bedroom_2", plan.TypeBedroom, plan.ZoneSecondary, 0, 0, 10, 20),
		placedRoom("Bedroom_3", plan.TypeBedroom, plan.ZoneSecondary, 10, 0, 10, 20),
		wetRoom("Bathroom_2", plan.TypeBathroom, plan.ZoneSecondary, 0, 20, 12, 10),
	}

	out := addWingHallways(rooms, nil, zl, DefaultOptions())
	if len(out) != 1 {
		t.Fatalf("hallways = %d, want 1", len(out))
	}

	// No slack behind the rear row: it trims to the band edge.
	bath := &rooms[2]
	if !near(bath.Y, 23.5) || !near(bath.D, 6.5) {
		t.Errorf("bathroom = [y %v, d %v], want [23.5, 6.5]", bath.Y, bath.D)
	}
}

func TestAddWingHallwaysAbortsOnTinyRearRoom(t *testing.T) {
	zl := zoneLayout{secondary: geometry.Rect{X: 0, Y: 0, W: 20, D: 30}, hasSecondary: true}
	rooms := []plan.PlacedRoom{
		placedRoom("Bedroom_2", plan.TypeBedroom, plan.ZoneSecondary, 0, 0, 10, 26.8),
		placedRoom("Bedroom_3", plan.TypeBedroom, plan.ZoneSecondary, 10, 0, 10, 26.8),
		wetRoom("Bathroom_2", plan.TypeBathroom, plan.ZoneSecondary, 0, 26.8, 12, 3.2),
	}

	// Sliding the bathroom back would crush it below a usable depth, so
	// the wing keeps walking instead.
	out := addWingHallways(rooms, nil, zl, DefaultOptions())
	if len(out) != 0 {
		t.Errorf("hallways = %d, want 0", len(out))
	}
	if !near(rooms[2].Y, 26.8) || !near(rooms[2].D, 3.2) {
		t.Errorf("bathroom moved: %+v", rooms[2].Rect)
	}
}

func TestAddWingHallwaysNeverInMasterWing(t *testing.T) {
	// A deep master wing with three rooms: suite circulation stays
	// internal, no corridor is carved.
	zl := zoneLayout{master: geometry.Rect{X: 0, Y: 0, W: 17, D: 30}, hasMaster: true}
	rooms := []plan.PlacedRoom{
		placedRoom("Master_Bedroom", plan.TypeBedroom, plan.ZoneMaster, 0, 0, 17, 15),
		wetRoom("Master_Bathroom", plan.TypeBathroom, plan.ZoneMaster, 6, 15, 11, 10),
		placedRoom("Master_WIC", plan.TypeCloset, plan.ZoneMaster, 0, 15, 6, 10),
	}

	out := addWingHallways(rooms, nil, zl, DefaultOptions())
	if len(out) != 0 {
		t.Errorf("hallways = %d, want 0 (master wing never takes a corridor)", len(out))
	}
	if !near(rooms[1].Y, 15) {
		t.Error("suite rooms must not move")
	}
}

func TestFixDeadEnds(t *testing.T) {
	halls := []plan.HallwaySegment{
		boundaryHall(0, 57.5),
		{
			Name:        "Hallway_1",
			Rect:        geometry.Rect{X: 65, Y: 19.71, W: 10, D: 3.5},
			Orientation: plan.HallHorizontal,
			Role:        plan.HallWingInternal,
		},
	}

	// Both ends float: the left end grows back to the boundary corridor,
	// the right end to the building shell.
	fixDeadEnds(halls, nil, 80, DefaultOptions())

	h := &halls[1]
	if !near(h.X, 61) {
		t.Errorf("left end = %v, want 61", h.X)
	}
	if !near(h.MaxX(), 80) {
		t.Errorf("right end = %v, want 80", h.MaxX())
	}
	// The vertical corridor is untouched.
	if !near(halls[0].X, 57.5) || !near(halls[0].W, 3.5) {
		t.Errorf("boundary corridor changed: %+v", halls[0].Rect)
	}
}

func TestFixDeadEndsBlockedByRoom(t *testing.T) {
	halls := []plan.HallwaySegment{
		boundaryHall(0, 57.5),
		{
			Name:        "Hallway_1",
			Rect:        geometry.Rect{X: 65, Y: 19.71, W: 10, D: 3.5},
			Orientation: plan.HallHorizontal,
			Role:        plan.HallWingInternal,
		},
	}
	rooms := []plan.PlacedRoom{
		placedRoom("Bathroom_2", plan.TypeBathroom, plan.ZoneSecondary, 62, 19, 3, 4),
	}

	fixDeadEnds(halls, rooms, 80, DefaultOptions())

	// The room blocks the left extension; the right still reaches the
	// shell.
	h := &halls[1]
	if !near(h.X, 65) {
		t.Errorf("left end = %v, want 65 (blocked)", h.X)
	}
	if !near(h.MaxX(), 80) {
		t.Errorf("right end = %v, want 80", h.MaxX())
	}
}

func TestFixDeadEndsConnectedEndsStay(t *testing.T) {
	// A corridor already touching the boundary corridor on its left and
	// the shell on its right is left alone.
	halls := []plan.HallwaySegment{
		boundaryHall(0, 57.5),
		{
			Name:        "Hallway_1",
			Rect:        geometry.Rect{X: 61, Y: 19.71, W: 19, D: 3.5},
			Orientation: plan.HallHorizontal,
			Role:        plan.HallWingInternal,
		},
	}

	fixDeadEnds(halls, nil, 80, DefaultOptions())

	if !near(halls[1].X, 61) || !near(halls[1].W, 19) {
		t.Errorf("corridor changed: %+v", halls[1].Rect)
	}
}

package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

func TestPlaceDoorsMasterSuite(t *testing.T) {
	rooms := []plan.PlacedRoom{
		placedRoom("Master_Bedroom", plan.TypeBedroom, plan.ZoneMaster, 0, 0, 14, 14),
		wetRoom("Master_Bathroom", plan.TypeBathroom, plan.ZoneMaster, 0, 14, 10, 8),
		placedRoom("Master_WIC", plan.TypeCloset, plan.ZoneMaster, 10, 14, 4, 8),
	}
	halls := []plan.HallwaySegment{boundaryHall(0, 14)}

	doors, fallback := placeDoors(rooms, halls, false, DefaultOptions())
	if fallback != 0 {
		t.Errorf("fallback = %d, want 0", fallback)
	}

	// The suite doors land first, then the bedroom's hallway entry. The
	// closet is served through the bedroom, so its hallway wall stays
	// solid even though it is long enough for a door.
	want := []plan.DoorPlacement{
		{Room: "Master_Bedroom", ConnectsTo: "Master_Bathroom", Axis: geometry.AxisX, Pos: 14, At: 0.5, Offset: 0.5, WidthIn: 32, Outward: true, SwingClear: true},
		{Room: "Master_Bedroom", ConnectsTo: "Master_WIC", Axis: geometry.AxisX, Pos: 14, At: 10.5, Offset: 0.5, WidthIn: 28, Outward: true, SwingClear: true},
		{Room: "Master_Bedroom", ConnectsTo: "Hallway_0", Axis: geometry.AxisY, Pos: 14, At: 0.5, Offset: 0.5, WidthIn: 32, SwingClear: true},
	}
	if diff := cmp.Diff(want, doors); diff != "" {
		t.Errorf("doors mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceDoorsOpenConcept(t *testing.T) {
	rooms := []plan.PlacedRoom{
		wetRoom("Kitchen", plan.TypeKitchen, plan.ZoneCenter, 17.5, 0, 10, 12),
		placedRoom("Great_Room", plan.TypeGreatRoom, plan.ZoneCenter, 27.5, 0, 12, 12),
		placedRoom("Pantry", plan.TypePantry, plan.ZoneCenter, 17.5, 12, 5, 5),
	}
	halls := []plan.HallwaySegment{boundaryHall(0, 14)}

	doors, fallback := placeDoors(rooms, halls, true, DefaultOptions())
	if fallback != 0 {
		t.Errorf("fallback = %d, want 0", fallback)
	}

	want := []plan.DoorPlacement{
		{Room: "Kitchen", ConnectsTo: "Pantry", Axis: geometry.AxisX, Pos: 12, At: 18, Offset: 0.5, WidthIn: 28, Outward: true, SwingClear: true},
		{Room: "Pantry", ConnectsTo: "Hallway_0", Axis: geometry.AxisY, Pos: 17.5, At: 12.5, Offset: 0.5, WidthIn: 28, SwingClear: true},
		{Room: "Kitchen", ConnectsTo: "Hallway_0", Axis: geometry.AxisY, Pos: 17.5, At: 0.5, Offset: 0.5, WidthIn: 36, SwingClear: true},
	}
	if diff := cmp.Diff(want, doors); diff != "" {
		t.Errorf("doors mismatch (-want +got):\n%s", diff)
	}

	// The great room is reached through the open kitchen boundary, so it
	// gets no door at all and no bridge fires.
	for _, d := range doors {
		if d.Room == "Great_Room" || d.ConnectsTo == "Great_Room" {
			t.Errorf("unexpected door on the great room: %+v", d)
		}
	}
}

func TestPlaceDoorsBridgesCutOffRoom(t *testing.T) {
	rooms := []plan.PlacedRoom{
		placedRoom("Bedroom_2", plan.TypeBedroom, plan.ZoneSecondary, 13.5, 0, 12, 12),
		placedRoom("Bedroom_3", plan.TypeBedroom, plan.ZoneSecondary, 25.5, 0, 12, 12),
	}
	halls := []plan.HallwaySegment{boundaryHall(0, 10)}

	// Bedroom_3 touches nothing but Bedroom_2, whose single-door cap is
	// already spent on its hallway entry. The bridge pass must ignore
	// the cap rather than leave the room sealed.
	doors, fallback := placeDoors(rooms, halls, false, DefaultOptions())
	if fallback != 1 {
		t.Errorf("fallback = %d, want 1", fallback)
	}

	want := []plan.DoorPlacement{
		{Room: "Bedroom_2", ConnectsTo: "Hallway_0", Axis: geometry.AxisY, Pos: 13.5, At: 0.5, Offset: 0.5, WidthIn: 32, SwingClear: true},
		{Room: "Bedroom_2", ConnectsTo: "Bedroom_3", Axis: geometry.AxisY, Pos: 25.5, At: 0.5, Offset: 0.5, WidthIn: 32, SwingClear: true},
	}
	if diff := cmp.Diff(want, doors); diff != "" {
		t.Errorf("doors mismatch (-want +got):\n%s", diff)
	}

	reached := doorReachable(rooms, halls, doors, false, DefaultOptions().Tolerance)
	if !reached["Bedroom_3"] {
		t.Error("Bedroom_3 should be reached after bridging")
	}
}

func TestMakeDoor(t *testing.T) {
	kitchen := placedRoom("Kitchen", plan.TypeKitchen, plan.ZoneCenter, 0, 0, 12, 12)
	hall := placedRoom("Hallway_0", plan.TypeHallway, plan.ZoneCirculation, 12, 0, 3.5, 12)

	tests := []struct {
		name               string
		lo, hi             float64
		wantOK             bool
		wantAt, wantOffset float64
	}{
		{name: "AmpleEdge", lo: 0, hi: 12, wantOK: true, wantAt: 0.5, wantOffset: 0.5},
		{name: "SlidesOffFarCorner", lo: 0, hi: 3.8, wantOK: true, wantAt: 0.3, wantOffset: 0.3},
		{name: "CentersOnTightEdge", lo: 0, hi: 3.1, wantOK: true, wantAt: 0.05, wantOffset: 0.05},
		{name: "TooShort", lo: 0, hi: 2.9, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &doorCandidate{
				a:    &kitchen,
				b:    &hall,
				edge: geometry.Edge{Axis: geometry.AxisY, Pos: 12, Lo: tt.lo, Hi: tt.hi},
			}
			d, ok := makeDoor(c)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if d.WidthIn != plan.DoorWidthWide {
				t.Errorf("WidthIn = %d, want %d", d.WidthIn, plan.DoorWidthWide)
			}
			if !near(d.At, tt.wantAt) {
				t.Errorf("At = %v, want %v", d.At, tt.wantAt)
			}
			if !near(d.Offset, tt.wantOffset) {
				t.Errorf("Offset = %v, want %v", d.Offset, tt.wantOffset)
			}
			if d.Outward {
				t.Error("a hallway door must swing into the room it serves")
			}
		})
	}
}

func TestMakeDoorSwingsIntoSmallerRoom(t *testing.T) {
	big := placedRoom("Great_Room", plan.TypeGreatRoom, plan.ZoneCenter, 0, 0, 20, 18)
	small := placedRoom("Mudroom", plan.TypeMudroom, plan.ZoneCenter, 20, 0, 6, 7)

	c := &doorCandidate{a: &big, b: &small, edge: geometry.Edge{Axis: geometry.AxisY, Pos: 20, Lo: 0, Hi: 7}}
	d, ok := makeDoor(c)
	if !ok {
		t.Fatal("makeDoor failed on a valid edge")
	}
	if got := d.SwingInto(); got != "Mudroom" {
		t.Errorf("SwingInto = %q, want Mudroom", got)
	}

	// Reversing the candidate keeps the leaf in the smaller space.
	c = &doorCandidate{a: &small, b: &big, edge: c.edge}
	d, ok = makeDoor(c)
	if !ok {
		t.Fatal("makeDoor failed on a valid edge")
	}
	if got := d.SwingInto(); got != "Mudroom" {
		t.Errorf("SwingInto reversed = %q, want Mudroom", got)
	}
}

func TestDoorReachableOpenFlow(t *testing.T) {
	rooms := []plan.PlacedRoom{
		wetRoom("Kitchen", plan.TypeKitchen, plan.ZoneCenter, 13.5, 0, 10, 12),
		placedRoom("Great_Room", plan.TypeGreatRoom, plan.ZoneCenter, 23.5, 0, 10, 12),
	}
	halls := []plan.HallwaySegment{boundaryHall(0, 10)}
	doors := []plan.DoorPlacement{{Room: "Kitchen", ConnectsTo: "Hallway_0"}}

	reached := doorReachable(rooms, halls, doors, true, 0.5)
	if !reached["Great_Room"] {
		t.Error("open concept: great room should be reached through the kitchen")
	}

	// With walls between the open-flow types the same boundary is solid.
	reached = doorReachable(rooms, halls, doors, false, 0.5)
	if reached["Great_Room"] {
		t.Error("closed concept: great room has no door and should not be reached")
	}
}

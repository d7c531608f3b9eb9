package layout

import (
	"testing"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

func centerSpec(name string, typ plan.RoomType, area float64) plan.RoomSpec {
	return plan.RoomSpec{Name: name, Type: typ, Zone: plan.ZoneCenter, TargetArea: area}
}

func TestPackCenterSideBySide(t *testing.T) {
	specs := []plan.RoomSpec{
		centerSpec("Great_Room", plan.TypeGreatRoom, 520),
		centerSpec("Kitchen", plan.TypeKitchen, 234),
		centerSpec("Pantry", plan.TypePantry, 31.2),
	}
	band := geometry.Rect{X: 20.6, Y: 0, W: 36.9, D: 30}

	placed := packCenter(specs, band, DefaultOptions())
	if len(placed) != 3 {
		t.Fatalf("placed = %d rooms, want 3", len(placed))
	}

	var gr, kit, pantry *plan.PlacedRoom
	for i := range placed {
		switch placed[i].Type {
		case plan.TypeGreatRoom:
			gr = &placed[i]
		case plan.TypeKitchen:
			kit = &placed[i]
		case plan.TypePantry:
			pantry = &placed[i]
		}
	}
	if gr == nil || kit == nil || pantry == nil {
		t.Fatal("all three rooms should be placed")
	}

	// Great room and kitchen split the front of the band side by side.
	if !near(gr.X, 20.6) || !near(gr.W, 25.45) || !near(gr.D, 20.43) {
		t.Errorf("great room = %+v, want [20.6, 0, 25.45, 20.43]", gr.Rect)
	}
	if !near(kit.X, 46.05) || !near(kit.W, 11.45) || !near(kit.D, 20.43) {
		t.Errorf("kitchen = %+v, want [46.05, 0, 11.45, 20.43]", kit.Rect)
	}
	if !near(kit.MaxX(), band.MaxX()) {
		t.Error("kitchen should run to the hall-side edge of the band")
	}

	// The pantry sits in the service strip directly behind the kitchen.
	if !near(pantry.X, kit.X) {
		t.Errorf("pantry x = %v, want under the kitchen at %v", pantry.X, kit.X)
	}
	if !near(pantry.Y, 20.43) || !near(pantry.W, 5.2) || !near(pantry.D, 6) {
		t.Errorf("pantry = %+v, want [46.05, 20.43, 5.2, 6]", pantry.Rect)
	}
	if geometry.SharedEdgeLength(kit.Rect, pantry.Rect, 0.5) < 3 {
		t.Error("pantry should share a wall with the kitchen")
	}
}

func TestPackCenterThreeLarge(t *testing.T) {
	specs := []plan.RoomSpec{
		centerSpec("Great_Room", plan.TypeGreatRoom, 520),
		centerSpec("Dining_Room", plan.TypeDiningRoom, 220),
		centerSpec("Kitchen", plan.TypeKitchen, 234),
	}
	band := geometry.Rect{X: 0, Y: 0, W: 40, D: 30}

	placed := packCenter(specs, band, DefaultOptions())
	if len(placed) != 3 {
		t.Fatalf("placed = %d rooms, want 3", len(placed))
	}

	var gr, dr, kit *plan.PlacedRoom
	for i := range placed {
		switch placed[i].Type {
		case plan.TypeGreatRoom:
			gr = &placed[i]
		case plan.TypeDiningRoom:
			dr = &placed[i]
		case plan.TypeKitchen:
			kit = &placed[i]
		}
	}

	// Great room fronts the band; dining and kitchen share the row
	// behind it, dining on the left.
	if !near(gr.Y, 0) {
		t.Errorf("great room y = %v, want 0", gr.Y)
	}
	if !near(dr.Y, gr.MaxY()) || !near(kit.Y, gr.MaxY()) {
		t.Error("dining and kitchen should start at the great room's rear wall")
	}
	if dr.X >= kit.X {
		t.Errorf("dining at %v should sit left of the kitchen at %v", dr.X, kit.X)
	}
	for i := range placed {
		if !band.ContainsWithin(placed[i].Rect, 0.01) {
			t.Errorf("%s outside the band", placed[i].Name)
		}
		if placed[i].Aspect() > 2.51 {
			t.Errorf("%s aspect = %.2f", placed[i].Name, placed[i].Aspect())
		}
	}
}

func TestPackCenterStacked(t *testing.T) {
	// A 15 ft band cannot hold the great room and kitchen side by side
	// at 10 ft of kitchen width, so the kitchen stacks behind.
	specs := []plan.RoomSpec{
		centerSpec("Great_Room", plan.TypeGreatRoom, 300),
		centerSpec("Kitchen", plan.TypeKitchen, 150),
	}
	band := geometry.Rect{X: 0, Y: 0, W: 15, D: 40}

	placed := packCenter(specs, band, DefaultOptions())
	if len(placed) != 2 {
		t.Fatalf("placed = %d rooms, want 2", len(placed))
	}

	gr, kit := &placed[0], &placed[1]
	if gr.Type != plan.TypeGreatRoom {
		gr, kit = kit, gr
	}
	if !near(gr.X, 0) || !near(gr.Y, 0) || !near(gr.W, 15) || !near(gr.D, 20) {
		t.Errorf("great room = %+v, want [0, 0, 15, 20]", gr.Rect)
	}
	if !near(kit.Y, gr.MaxY()) {
		t.Errorf("kitchen y = %v, want stacked at %v", kit.Y, gr.MaxY())
	}
	if !near(kit.W, 15) || !near(kit.D, 10) {
		t.Errorf("kitchen = %v x %v, want 15 x 10", kit.W, kit.D)
	}
}

func TestPackCenterOverflowFallsBack(t *testing.T) {
	// A shallow band that cannot stack the public rooms drops to the
	// treemap, which shrinks everything to fit rather than failing.
	specs := []plan.RoomSpec{
		centerSpec("Great_Room", plan.TypeGreatRoom, 160),
		centerSpec("Kitchen", plan.TypeKitchen, 150),
		centerSpec("Pantry", plan.TypePantry, 100),
	}
	band := geometry.Rect{X: 0, Y: 0, W: 20, D: 12}

	placed := packCenter(specs, band, DefaultOptions())
	if len(placed) != 3 {
		t.Fatalf("placed = %d rooms, want 3", len(placed))
	}
	for i := range placed {
		if !band.ContainsWithin(placed[i].Rect, 0.01) {
			t.Errorf("%s outside the band: %+v", placed[i].Name, placed[i].Rect)
		}
	}
}

func TestPackCenterNoPublicRooms(t *testing.T) {
	// Nothing but service rooms: the band goes straight to the treemap.
	specs := []plan.RoomSpec{
		centerSpec("Laundry", plan.TypeLaundry, 62),
		centerSpec("Mudroom", plan.TypeMudroom, 55),
	}
	band := geometry.Rect{X: 0, Y: 0, W: 16, D: 12}

	placed := packCenter(specs, band, DefaultOptions())
	if len(placed) != 2 {
		t.Fatalf("placed = %d rooms, want 2", len(placed))
	}
	for i := range placed {
		if !band.ContainsWithin(placed[i].Rect, 0.01) {
			t.Errorf("%s outside the band", placed[i].Name)
		}
	}
}

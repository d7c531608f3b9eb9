package circgraph

import (
	"strings"
	"testing"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

func testPlan() *plan.FloorPlan {
	return &plan.FloorPlan{
		Length: 50,
		Width:  30,
		Rooms: []plan.PlacedRoom{
			{RoomSpec: plan.RoomSpec{Name: "master_bedroom", Type: plan.TypeBedroom, Zone: plan.ZoneMaster}, Rect: geometry.Rect{X: 0, Y: 0, W: 10.5, D: 14}},
			{RoomSpec: plan.RoomSpec{Name: "great_room", Type: plan.TypeGreatRoom, Zone: plan.ZoneCenter}, Rect: geometry.Rect{X: 14, Y: 0, W: 22, D: 18}},
		},
		Hallways: []plan.HallwaySegment{
			{Name: "Hallway_1", Rect: geometry.Rect{X: 10.5, Y: 0, W: 3.5, D: 30}, Orientation: plan.HallVertical, Role: plan.HallZoneBoundary},
		},
		Doors: []plan.DoorPlacement{
			{Room: "master_bedroom", ConnectsTo: "Hallway_1", Axis: geometry.AxisY, Pos: 10.5, At: 5, Offset: 0.5, WidthIn: 32, SwingClear: true},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testPlan(), Options{})

	if !strings.HasPrefix(dot, "graph circulation {") {
		t.Errorf("DOT should open an undirected graph, got %.40s", dot)
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("DOT graph is not closed")
	}

	for _, want := range []string{`"master_bedroom"`, `"great_room"`, `"Hallway_1"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing node %s", want)
		}
	}

	// The placed door shows up as an edge.
	if !strings.Contains(dot, `"master_bedroom" -- "Hallway_1"`) {
		t.Error("DOT missing the door edge")
	}

	// Hallway nodes are styled dashed, rooms are not.
	if !strings.Contains(dot, "dashed") {
		t.Error("hallway node should be dashed")
	}
}

func TestToDOTDetailed(t *testing.T) {
	plain := ToDOT(testPlan(), Options{})
	detailed := ToDOT(testPlan(), Options{Detailed: true})

	if plain == detailed {
		t.Error("Detailed should change the output")
	}

	// Room area annotation: 10.5 x 14 = 147 sqft.
	if !strings.Contains(detailed, "147 sqft") {
		t.Error("detailed labels should include room areas")
	}
	if strings.Contains(plain, "sqft") {
		t.Error("plain labels should not include areas")
	}

	// Door width annotation on the door edge.
	if !strings.Contains(detailed, `32\"`) && !strings.Contains(detailed, `32"`) {
		t.Error("detailed door edges should include the width")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	a := ToDOT(testPlan(), Options{Detailed: true})
	b := ToDOT(testPlan(), Options{Detailed: true})
	if a != b {
		t.Error("identical plans should produce identical DOT")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg">` +
		`<g></g></svg>`)

	out := string(normalizeViewBox(svg))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("pixel dimensions not set: %s", out)
	}

	// SVG without a viewBox passes through untouched.
	plain := []byte(`<svg><g></g></svg>`)
	if got := string(normalizeViewBox(plain)); got != string(plain) {
		t.Errorf("missing viewBox should pass through, got %s", got)
	}
}

package plan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/planforge/pkg/geometry"
)

func samplePlan() *FloorPlan {
	return &FloorPlan{
		Length: 50,
		Width:  30,
		Rooms: []PlacedRoom{
			{RoomSpec: RoomSpec{Name: "great_room", Type: TypeGreatRoom, Zone: ZoneCenter, TargetArea: 400}, Rect: geometry.Rect{X: 14, Y: 0, W: 22, D: 18}},
			{RoomSpec: RoomSpec{Name: "kitchen", Type: TypeKitchen, Zone: ZoneCenter, TargetArea: 180, Wet: true, Fixtures: []string{"kitchen_L"}}, Rect: geometry.Rect{X: 14, Y: 18, W: 14, D: 12}},
		},
		Hallways: []HallwaySegment{
			{Name: "Hall_1", Rect: geometry.Rect{X: 10.5, Y: 0, W: 3.5, D: 30}, Orientation: HallVertical, Role: HallZoneBoundary},
		},
		Doors: []DoorPlacement{
			{Room: "kitchen", ConnectsTo: "Hall_1", Axis: geometry.AxisY, Pos: 14, At: 18.5, Offset: 0.5, WidthIn: 36, SwingClear: true},
		},
		Walls: []WallSegment{
			{Axis: geometry.AxisX, Pos: 18, Lo: 14, Hi: 28, Gaps: []Gap{{Lo: 20, Hi: 23}}},
		},
		Meta: Metadata{
			UnreachableRooms: []string{},
			PlumbingScore:    -2.4,
			FillRatio:        0.62,
			Quality:          QualityReport{Status: QualityGood},
		},
	}
}

func TestMarshalPlan(t *testing.T) {
	data, err := MarshalPlan(samplePlan())
	if err != nil {
		t.Fatalf("MarshalPlan: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		`"length_ft": 50`,
		`"name": "great_room"`,
		`"role": "zone-boundary"`,
		`"width_in": 36`,
		`"fill_ratio": 0.62`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("MarshalPlan output missing %s", want)
		}
	}
}

func TestPlanRoundTrip(t *testing.T) {
	original := samplePlan()

	data, err := MarshalPlan(original)
	if err != nil {
		t.Fatalf("MarshalPlan: %v", err)
	}

	decoded, err := ReadPlan(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadPlan: %v", err)
	}

	if decoded.Length != original.Length || decoded.Width != original.Width {
		t.Errorf("footprint = %vx%v, want %vx%v", decoded.Length, decoded.Width, original.Length, original.Width)
	}
	if len(decoded.Rooms) != len(original.Rooms) {
		t.Fatalf("rooms = %d, want %d", len(decoded.Rooms), len(original.Rooms))
	}
	kitchen, ok := decoded.Room("kitchen")
	if !ok {
		t.Fatal("decoded plan lost the kitchen")
	}
	if !kitchen.Wet || kitchen.Rect != original.Rooms[1].Rect {
		t.Errorf("kitchen = %+v, want %+v", kitchen, original.Rooms[1])
	}
	if len(decoded.Walls) != 1 || len(decoded.Walls[0].Gaps) != 1 {
		t.Errorf("walls/gaps lost in round trip: %+v", decoded.Walls)
	}
}

func TestReadPlanRejectsBrokenInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "malformed json",
			input: `{"length_ft": 50,`,
		},
		{
			name:  "zero footprint",
			input: `{"length_ft": 0, "width_ft": 30, "rooms": [], "hallways": [], "doors": [], "walls": [], "metadata": {}}`,
		},
		{
			name: "bad door width",
			input: `{"length_ft": 50, "width_ft": 30,
				"rooms": [{"name": "kitchen", "type": "kitchen", "zone": "center", "target_area": 180, "min_area": 120, "x": 0, "y": 0, "w": 14, "d": 12}],
				"hallways": [], "walls": [],
				"doors": [{"room": "kitchen", "connects_to": "Hall_1", "axis": "y", "pos": 14, "at": 2, "offset": 0.5, "width_in": 31, "swing_clear": true}],
				"metadata": {}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPlan(strings.NewReader(tt.input)); err == nil {
				t.Error("ReadPlan() = nil error, want failure")
			}
		})
	}
}

func TestWritePlan(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlan(samplePlan(), &buf); err != nil {
		t.Fatalf("WritePlan: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("WritePlan wrote nothing")
	}

	p, err := ReadPlan(&buf)
	if err != nil {
		t.Fatalf("ReadPlan: %v", err)
	}
	if len(p.Rooms) != 2 {
		t.Errorf("rooms = %d, want 2", len(p.Rooms))
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a, err := Fingerprint(samplePlan())
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	b, err := Fingerprint(samplePlan())
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if a != b {
		t.Errorf("fingerprints differ across identical plans: %s vs %s", a, b)
	}

	// The stored fingerprint must not feed back into itself.
	withID := samplePlan()
	withID.Meta.PlanID = a
	c, err := Fingerprint(withID)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if c != a {
		t.Errorf("fingerprint changed after storing it on the plan: %s vs %s", c, a)
	}

	changed := samplePlan()
	changed.Rooms[0].W += 1
	d, err := Fingerprint(changed)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if d == a {
		t.Error("fingerprint identical after a geometry change")
	}
}

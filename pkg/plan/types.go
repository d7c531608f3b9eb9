package plan

import (
	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/geometry"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// RoomType identifies the architectural category of a room. Door widths,
// egress rules, and adjacency prohibitions are keyed by this value.
type RoomType string

// Room types produced by the program parser. TypeHallway is reserved for
// hallway segments when they participate in door and adjacency rules.
const (
	TypeBedroom    RoomType = "bedroom"
	TypeBathroom   RoomType = "bathroom"
	TypeCloset     RoomType = "closet"
	TypeGreatRoom  RoomType = "great_room"
	TypeKitchen    RoomType = "kitchen"
	TypeDiningRoom RoomType = "dining_room"
	TypePantry     RoomType = "pantry"
	TypeLaundry    RoomType = "laundry"
	TypeMudroom    RoomType = "mudroom"
	TypeHallway    RoomType = "hallway"
)

// Zone identifies the coarse wing a room is assigned to before packing.
type Zone string

// Zones used to partition the footprint. ZoneCirculation is reserved
// for hallway segments when they stand in as rooms.
const (
	ZoneMaster      Zone = "master"
	ZoneSecondary   Zone = "secondary"
	ZoneCenter      Zone = "center"
	ZoneService     Zone = "service"
	ZoneCirculation Zone = "circulation"
)

// Hallway orientations.
const (
	HallVertical   = "vertical"
	HallHorizontal = "horizontal"
)

// Hallway roles.
const (
	HallZoneBoundary = "zone-boundary"
	HallWingInternal = "wing-internal"
)

// Door widths in inches, the full enumerated set.
const (
	DoorWidthWide    = 36 // entry, mudroom, great room, kitchen, dining
	DoorWidthPassage = 32 // bedroom, bathroom, laundry
	DoorWidthCloset  = 28 // closet, pantry
)

// Quality report statuses.
const (
	QualityGood    = "good"
	QualityWarning = "warning"
)

// =============================================================================
// RoomSpec - Parsed Room Request
// =============================================================================

// RoomSpec is a room request produced by the program parser: the name,
// category, zone assignment, and sizing constraints of one room before any
// geometry exists. RoomSpecs are immutable once created.
type RoomSpec struct {
	Name       string   `json:"name"`
	Type       RoomType `json:"type"`
	Zone       Zone     `json:"zone"`
	TargetArea float64  `json:"target_area"`          // square feet
	MinArea    float64  `json:"min_area"`             // square feet
	MinWidth   float64  `json:"min_width,omitempty"`  // feet
	MaxAspect  float64  `json:"max_aspect,omitempty"` // width:depth bound, 0 = engine default
	Wet        bool     `json:"wet,omitempty"`        // requires plumbing
	Fixtures   []string `json:"fixtures,omitempty"`   // opaque fixture tags
}

// =============================================================================
// PlacedRoom - Room Bound to Geometry
// =============================================================================

// PlacedRoom is a RoomSpec bound to a concrete rectangle inside the
// footprint. Packing and optimization stages mutate the rectangle in place;
// it is final once doors are placed.
type PlacedRoom struct {
	RoomSpec
	geometry.Rect
}

// =============================================================================
// HallwaySegment - Circulation Corridor
// =============================================================================

// HallwaySegment is one corridor rectangle. Zone-boundary segments are the
// vertical corridors separating wings; wing-internal segments are carved
// inside a deep secondary wing.
type HallwaySegment struct {
	Name string `json:"name"`
	geometry.Rect
	Orientation string `json:"orientation"`
	Role        string `json:"role"`
}

// =============================================================================
// DoorPlacement - Egress Opening
// =============================================================================

// DoorPlacement is one door on the shared edge between the owning room and
// an adjoining space. At is the hinge-side jamb position along the wall;
// the leaf occupies [At, At+width].
type DoorPlacement struct {
	Room       string        `json:"room"`              // owning room requiring egress
	ConnectsTo string        `json:"connects_to"`       // space on the other side
	Axis       geometry.Axis `json:"axis"`              // direction the wall runs
	Pos        float64       `json:"pos"`               // wall line coordinate (y for axis x, x for axis y)
	At         float64       `json:"at"`                // leaf start along the wall
	Offset     float64       `json:"offset"`            // distance from the nearest corner of the shared edge
	WidthIn    int           `json:"width_in"`          // 28, 32, or 36
	Outward    bool          `json:"outward,omitempty"` // swings away from the owning room
	SwingClear bool          `json:"swing_clear"`
}

// WidthFt returns the door width in feet.
func (d DoorPlacement) WidthFt() float64 { return float64(d.WidthIn) / 12 }

// Span returns the interval the door leaf occupies along its wall.
func (d DoorPlacement) Span() (lo, hi float64) { return d.At, d.At + d.WidthFt() }

// SwingInto returns the name of the space the door opens into.
func (d DoorPlacement) SwingInto() string {
	if d.Outward {
		return d.ConnectsTo
	}
	return d.Room
}

// =============================================================================
// WallSegment - Interior Wall
// =============================================================================

// Gap is a door opening punched out of a wall, as an interval along the
// wall's run direction.
type Gap struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// WallSegment is one interior wall along a shared room/hallway edge, with
// the door gaps punched out of it. Exterior shell walls are not emitted.
type WallSegment struct {
	Axis geometry.Axis `json:"axis"`
	Pos  float64       `json:"pos"` // wall line coordinate
	Lo   float64       `json:"lo"`  // run start along the wall
	Hi   float64       `json:"hi"`  // run end along the wall
	Gaps []Gap         `json:"gaps,omitempty"`
}

// Length returns the full run length before gaps are subtracted.
func (w WallSegment) Length() float64 { return w.Hi - w.Lo }

// Spans returns the solid sub-segments left after punching the door gaps,
// dropping slivers of 0.5 ft or less.
func (w WallSegment) Spans() []Gap {
	const minSpan = 0.5

	spans := []Gap{{Lo: w.Lo, Hi: w.Hi}}
	for _, g := range w.Gaps {
		var next []Gap
		for _, s := range spans {
			if g.Hi <= s.Lo || g.Lo >= s.Hi {
				next = append(next, s)
				continue
			}
			if g.Lo-s.Lo > minSpan {
				next = append(next, Gap{Lo: s.Lo, Hi: g.Lo})
			}
			if s.Hi-g.Hi > minSpan {
				next = append(next, Gap{Lo: g.Hi, Hi: s.Hi})
			}
		}
		spans = next
	}

	out := spans[:0]
	for _, s := range spans {
		if s.Hi-s.Lo > minSpan {
			out = append(out, s)
		}
	}
	return out
}

// =============================================================================
// Metadata - Soft Findings and Quality Signals
// =============================================================================

// QualityReport is a coarse judgement of the finished plan. Issues are
// human-readable strings; Status is "good" when the list is empty.
type QualityReport struct {
	Status       string   `json:"status"`
	Issues       []string `json:"issues,omitempty"`
	DoorsPerRoom float64  `json:"doors_per_room"`
	HallwayRatio float64  `json:"hallway_ratio"` // hallway area / (room + hallway area)
}

// Metadata carries everything the engine reports without failing: soft
// findings (unreachable rooms, unresolved swings surface via DoorPlacement),
// aggregate scores, and bookkeeping for downstream consumers.
type Metadata struct {
	PlanID           string             `json:"plan_id,omitempty"` // deterministic fingerprint
	UnreachableRooms []string           `json:"unreachable_rooms"`
	PlumbingScore    float64            `json:"plumbing_score"`
	FillRatio        float64            `json:"fill_ratio"` // room area / footprint area
	RoomCount        int                `json:"room_count"`
	RoomArea         float64            `json:"room_area"`
	HallwayCount     int                `json:"hallway_count"`
	HallwayArea      float64            `json:"hallway_area"`
	ZonePercent      map[string]float64 `json:"zone_percent,omitempty"`
	WetClusterRadius float64            `json:"wet_cluster_radius"`
	FallbackDoors    int                `json:"fallback_doors"`
	Warnings         []string           `json:"warnings,omitempty"`
	Quality          QualityReport      `json:"quality"`
}

// =============================================================================
// FloorPlan - The Hand-Off Object
// =============================================================================

// FloorPlan is the complete generated plan: placed rooms, hallways, doors,
// walls, and metadata. It is the sole object handed to downstream consumers
// and must be treated as read-only once generation finishes.
type FloorPlan struct {
	Length   float64          `json:"length_ft"` // footprint extent along x
	Width    float64          `json:"width_ft"`  // footprint extent along y
	Rooms    []PlacedRoom     `json:"rooms"`
	Hallways []HallwaySegment `json:"hallways"`
	Doors    []DoorPlacement  `json:"doors"`
	Walls    []WallSegment    `json:"walls"`
	Meta     Metadata         `json:"metadata"`
}

// Bounds returns the footprint rectangle.
func (p *FloorPlan) Bounds() geometry.Rect {
	return geometry.Rect{W: p.Length, D: p.Width}
}

// Room returns the placed room with the given name.
func (p *FloorPlan) Room(name string) (*PlacedRoom, bool) {
	for i := range p.Rooms {
		if p.Rooms[i].Name == name {
			return &p.Rooms[i], true
		}
	}
	return nil, false
}

// Hallway returns the hallway segment with the given name.
func (p *FloorPlan) Hallway(name string) (*HallwaySegment, bool) {
	for i := range p.Hallways {
		if p.Hallways[i].Name == name {
			return &p.Hallways[i], true
		}
	}
	return nil, false
}

// RoomsOfType returns all rooms of the given type in placement order.
func (p *FloorPlan) RoomsOfType(t RoomType) []*PlacedRoom {
	var out []*PlacedRoom
	for i := range p.Rooms {
		if p.Rooms[i].Type == t {
			out = append(out, &p.Rooms[i])
		}
	}
	return out
}

// WetRooms returns all rooms requiring plumbing in placement order.
func (p *FloorPlan) WetRooms() []*PlacedRoom {
	var out []*PlacedRoom
	for i := range p.Rooms {
		if p.Rooms[i].Wet {
			out = append(out, &p.Rooms[i])
		}
	}
	return out
}

// DoorsOf returns every door whose owning room or far side is name.
func (p *FloorPlan) DoorsOf(name string) []*DoorPlacement {
	var out []*DoorPlacement
	for i := range p.Doors {
		if p.Doors[i].Room == name || p.Doors[i].ConnectsTo == name {
			out = append(out, &p.Doors[i])
		}
	}
	return out
}

// validDoorWidths is the full enumerated set accepted on decode.
var validDoorWidths = map[int]bool{
	DoorWidthCloset:  true,
	DoorWidthPassage: true,
	DoorWidthWide:    true,
}

// Validate checks the structural invariants a decoded plan must satisfy
// before downstream consumers touch it.
func (p *FloorPlan) Validate() error {
	if p.Length <= 0 || p.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidPlan, "footprint must be positive, got %.1f x %.1f", p.Length, p.Width)
	}

	seen := make(map[string]bool, len(p.Rooms)+len(p.Hallways))
	for i := range p.Rooms {
		name := p.Rooms[i].Name
		if name == "" {
			return errors.New(errors.ErrCodeInvalidPlan, "room %d has no name", i)
		}
		if seen[name] {
			return errors.New(errors.ErrCodeInvalidPlan, "duplicate room name %q", name)
		}
		seen[name] = true
	}
	for i := range p.Hallways {
		name := p.Hallways[i].Name
		if name == "" {
			return errors.New(errors.ErrCodeInvalidPlan, "hallway %d has no name", i)
		}
		if seen[name] {
			return errors.New(errors.ErrCodeInvalidPlan, "duplicate space name %q", name)
		}
		seen[name] = true
	}

	for i := range p.Doors {
		d := &p.Doors[i]
		if !validDoorWidths[d.WidthIn] {
			return errors.New(errors.ErrCodeInvalidPlan, "door %s-%s has width %d, not one of 28/32/36", d.Room, d.ConnectsTo, d.WidthIn)
		}
		if !seen[d.Room] {
			return errors.New(errors.ErrCodeInvalidPlan, "door references unknown space %q", d.Room)
		}
		if !seen[d.ConnectsTo] {
			return errors.New(errors.ErrCodeInvalidPlan, "door references unknown space %q", d.ConnectsTo)
		}
	}

	return nil
}

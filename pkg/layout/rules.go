package layout

import (
	"github.com/matzehuels/planforge/pkg/plan"
)

// relation classifies how strongly two rooms want (or refuse) to share
// a wall.
type relation int

const (
	relNone relation = iota
	relStrong
	relMandatory
	relProhibited
)

// namePair is an adjacency rule keyed by exact room names.
type namePair struct {
	a, b string
	rel  relation
}

// typePair is an adjacency rule keyed by room types.
type typePair struct {
	a, b plan.RoomType
	rel  relation
}

// nameRules are the specific-room adjacency requirements. Name rules are
// checked before type rules.
var nameRules = []namePair{
	{"Kitchen", "Great_Room", relMandatory},
	{"Kitchen", "Pantry", relMandatory},
	{"Master_Bedroom", "Master_Bathroom", relMandatory},
	{"Dining_Room", "Kitchen", relMandatory},
	{"Dining_Room", "Great_Room", relMandatory},
	{"Kitchen", "Laundry", relStrong},
	{"Kitchen", "Mudroom", relStrong},
	{"Mudroom", "Laundry", relStrong},
}

// typeRules are the categorical prohibitions: noise and privacy
// separations that hold whatever the rooms are named.
var typeRules = []typePair{
	{plan.TypeKitchen, plan.TypeBedroom, relProhibited},
	{plan.TypeBathroom, plan.TypeKitchen, relProhibited},
	{plan.TypeDiningRoom, plan.TypeBedroom, relProhibited},
}

// relationBetween returns the adjacency relation for a pair of rooms.
func relationBetween(a, b *plan.PlacedRoom) relation {
	for _, r := range nameRules {
		if (r.a == a.Name && r.b == b.Name) || (r.a == b.Name && r.b == a.Name) {
			return r.rel
		}
	}
	for _, r := range typeRules {
		if (r.a == a.Type && r.b == b.Type) || (r.a == b.Type && r.b == a.Type) {
			return r.rel
		}
	}
	return relNone
}

// openFlowTypes form the open-concept core: no doors between members,
// and no wall on their boundary when the program is open concept.
func openFlowPair(a, b plan.RoomType) bool {
	isOpen := func(t plan.RoomType) bool {
		return t == plan.TypeGreatRoom || t == plan.TypeKitchen || t == plan.TypeDiningRoom
	}
	return isOpen(a) && isOpen(b)
}

// doorWidthIn returns the standard door width, in inches, for a room of
// the given type.
func doorWidthIn(t plan.RoomType) int {
	switch t {
	case plan.TypeMudroom, plan.TypeGreatRoom, plan.TypeKitchen, plan.TypeDiningRoom:
		return plan.DoorWidthWide
	case plan.TypeCloset, plan.TypePantry:
		return plan.DoorWidthCloset
	default:
		return plan.DoorWidthPassage
	}
}

// widthInForPair picks the door width for a specific opening. A door
// onto a hallway takes the served room's width; closets and pantries
// always take the narrow leaf; everything else is a standard passage
// door.
func widthInForPair(a, b *plan.PlacedRoom) int {
	if a.Type == plan.TypeHallway {
		return doorWidthIn(b.Type)
	}
	if b.Type == plan.TypeHallway {
		return doorWidthIn(a.Type)
	}
	if a.Type == plan.TypeCloset || b.Type == plan.TypeCloset ||
		a.Type == plan.TypePantry || b.Type == plan.TypePantry {
		return plan.DoorWidthCloset
	}
	return plan.DoorWidthPassage
}

// shouldHaveDoor reports whether a door may connect the pair at all.
// Room-to-hallway openings and suite-internal doors are always allowed,
// while corridor junctions and the open-concept core never take a leaf.
// Beyond that the adjacency relations decide: mandatory and strong
// pairs are doored, prohibited pairs never are.
func shouldHaveDoor(a, b *plan.PlacedRoom) bool {
	if a.Type == plan.TypeHallway && b.Type == plan.TypeHallway {
		return false
	}
	if a.Type == plan.TypeHallway || b.Type == plan.TypeHallway {
		return true
	}

	names := func(x, y string) bool {
		return (a.Name == x && b.Name == y) || (a.Name == y && b.Name == x)
	}
	if names("Master_Bedroom", "Master_Bathroom") || names("Master_Bedroom", "Master_WIC") {
		return true
	}

	if openFlowPair(a.Type, b.Type) {
		return false
	}
	switch relationBetween(a, b) {
	case relMandatory, relStrong:
		return true
	case relProhibited:
		return false
	}
	if a.Type == plan.TypeBedroom && b.Type == plan.TypeBedroom {
		return true
	}

	// No generic room-to-room doors: over-connected interiors read badly.
	return false
}

// doorPriority ranks a candidate opening. Suite-internal and pantry
// doors outrank circulation doors, which outrank adjacency-driven and
// fallback doors.
func doorPriority(a, b *plan.PlacedRoom) int {
	names := func(x, y string) bool {
		return (a.Name == x && b.Name == y) || (a.Name == y && b.Name == x)
	}
	if names("Master_Bedroom", "Master_Bathroom") || names("Master_Bedroom", "Master_WIC") {
		return 120
	}

	hasType := func(t plan.RoomType) bool { return a.Type == t || b.Type == t }
	if hasType(plan.TypeKitchen) && hasType(plan.TypePantry) {
		return 110
	}
	if hasType(plan.TypeHallway) {
		if hasType(plan.TypeBedroom) || hasType(plan.TypeBathroom) {
			return 95
		}
		if hasType(plan.TypeLaundry) || hasType(plan.TypeMudroom) ||
			hasType(plan.TypePantry) || hasType(plan.TypeCloset) {
			return 85
		}
		return 70
	}

	switch relationBetween(a, b) {
	case relMandatory:
		return 100
	case relStrong:
		return 80
	}
	if a.Type == plan.TypeBedroom && b.Type == plan.TypeBedroom {
		return 55
	}
	return 60
}

// roomMaxDoors caps how many doors a room may own. The master bedroom
// needs two for its bath and closet; public rooms take two; hallways are
// uncapped and handled by the caller.
func roomMaxDoors(r *plan.PlacedRoom) int {
	if r.Name == "Master_Bedroom" {
		return 2
	}
	switch r.Type {
	case plan.TypeGreatRoom, plan.TypeKitchen, plan.TypeDiningRoom, plan.TypeMudroom:
		return 2
	}
	return 1
}

// needsHallAccess reports whether a room must reach a hallway directly.
// The master bathroom and closet are reached through the master bedroom
// instead.
func needsHallAccess(r *plan.PlacedRoom) bool {
	if r.Name == "Master_Bathroom" || r.Name == "Master_WIC" {
		return false
	}
	switch r.Type {
	case plan.TypeBedroom, plan.TypeBathroom, plan.TypeLaundry, plan.TypeMudroom, plan.TypePantry:
		return true
	}
	return false
}

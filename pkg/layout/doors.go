package layout

import (
	"sort"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// cornerClearance keeps door jambs off wall corners so casing and
// hinges have framing to land on.
const cornerClearance = 0.5

// doorCandidate is one pair of spaces that could take a door, with the
// shared edge it would sit on.
type doorCandidate struct {
	a, b     *plan.PlacedRoom
	edge     geometry.Edge
	priority int
}

// placeDoors runs the four-pass door placement over placed rooms and
// hallways, returning the doors in placement order and the number of
// connectivity fallback doors the final pass had to add.
//
// Pass 1 places the non-negotiable suite and pantry doors. Pass 2 gives
// every room that needs hallway access its best hallway door, exempt
// from per-room caps so a fully doored suite still gets its entry.
// Pass 3 fills in the remaining circulation and adjacency doors under
// the caps. Pass 4 bridges any room the placed doors leave cut off.
func placeDoors(rooms []plan.PlacedRoom, halls []plan.HallwaySegment, openConcept bool, opts *Options) ([]plan.DoorPlacement, int) {
	all := make([]plan.PlacedRoom, 0, len(rooms)+len(halls))
	all = append(all, rooms...)
	for i := range halls {
		all = append(all, hallwayRoom(&halls[i]))
	}

	var cands []doorCandidate
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			a, b := &all[i], &all[j]
			if !shouldHaveDoor(a, b) {
				continue
			}
			edge, ok := geometry.SharedEdge(a.Rect, b.Rect, opts.Tolerance)
			if !ok || edge.Length() < 3.0 {
				continue
			}
			cands = append(cands, doorCandidate{a: a, b: b, edge: edge, priority: doorPriority(a, b)})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].priority != cands[j].priority {
			return cands[i].priority > cands[j].priority
		}
		if cands[i].edge.Length() != cands[j].edge.Length() {
			return cands[i].edge.Length() > cands[j].edge.Length()
		}
		if cands[i].a.Name != cands[j].a.Name {
			return cands[i].a.Name < cands[j].a.Name
		}
		return cands[i].b.Name < cands[j].b.Name
	})

	isHall := func(r *plan.PlacedRoom) bool { return r.Type == plan.TypeHallway }
	counts := make(map[string]int)
	placed := make(map[[2]string]bool)
	hallDoored := make(map[string]bool)
	var doors []plan.DoorPlacement

	canAdd := func(r *plan.PlacedRoom) bool {
		return isHall(r) || counts[r.Name] < roomMaxDoors(r)
	}
	add := func(c *doorCandidate, d plan.DoorPlacement) {
		doors = append(doors, d)
		placed[pairKey(c.a.Name, c.b.Name)] = true
		if !isHall(c.a) {
			counts[c.a.Name]++
		}
		if !isHall(c.b) {
			counts[c.b.Name]++
		}
		if isHall(c.a) {
			hallDoored[c.b.Name] = true
		}
		if isHall(c.b) {
			hallDoored[c.a.Name] = true
		}
	}

	// Pass 1: suite-internal and pantry doors, no cap check.
	for i := range cands {
		c := &cands[i]
		if c.priority < 100 || placed[pairKey(c.a.Name, c.b.Name)] {
			continue
		}
		if d, ok := makeDoor(c); ok {
			add(c, d)
		}
	}

	// Pass 2: a hallway door for every room that needs one.
	for i := range rooms {
		r := &rooms[i]
		if !needsHallAccess(r) || hallDoored[r.Name] {
			continue
		}
		for j := range cands {
			c := &cands[j]
			if c.priority < 60 || placed[pairKey(c.a.Name, c.b.Name)] {
				continue
			}
			if !(c.a.Name == r.Name && isHall(c.b)) && !(c.b.Name == r.Name && isHall(c.a)) {
				continue
			}
			if d, ok := makeDoor(c); ok {
				add(c, d)
				break
			}
		}
	}

	// Pass 3: remaining circulation and adjacency doors under the caps.
	for i := range cands {
		c := &cands[i]
		if c.priority < 70 || placed[pairKey(c.a.Name, c.b.Name)] {
			continue
		}
		if !canAdd(c.a) || !canAdd(c.b) {
			continue
		}
		if d, ok := makeDoor(c); ok {
			add(c, d)
		}
	}

	// Pass 4: bridge rooms the doors placed so far leave cut off. The
	// per-room caps do not apply here; an extra door beats an unreachable
	// room.
	fallback := 0
	for range cands {
		reached := doorReachable(rooms, halls, doors, openConcept, opts.Tolerance)
		cut := false
		for i := range rooms {
			if !reached[rooms[i].Name] {
				cut = true
				break
			}
		}
		if !cut {
			break
		}

		bridged := false
		for i := range cands {
			c := &cands[i]
			if placed[pairKey(c.a.Name, c.b.Name)] {
				continue
			}
			ra := isHall(c.a) || reached[c.a.Name]
			rb := isHall(c.b) || reached[c.b.Name]
			if ra == rb {
				continue
			}
			if d, ok := makeDoor(c); ok {
				add(c, d)
				fallback++
				bridged = true
				break
			}
		}
		if !bridged {
			break
		}
	}

	return doors, fallback
}

// makeDoor positions a door on the candidate's shared edge: the jamb
// sits half a foot off the nearest corner, sliding toward center when
// the edge is barely long enough. Fails when the enumerated width does
// not fit the edge at all.
func makeDoor(c *doorCandidate) (plan.DoorPlacement, bool) {
	widthIn := widthInForPair(c.a, c.b)
	w := float64(widthIn) / 12
	lo, hi := c.edge.Lo, c.edge.Hi
	if w > hi-lo+eps {
		return plan.DoorPlacement{}, false
	}

	at := lo + cornerClearance
	if at+w > hi-cornerClearance {
		at = hi - cornerClearance - w
	}
	if at < lo {
		at = lo + (hi-lo-w)/2
	}
	// The jamb never slides past center, so lo stays the near corner.
	offset := at - lo

	// A hallway door swings into the room it serves; between rooms the
	// leaf opens into the smaller one.
	outward := false
	if c.b.Type != plan.TypeHallway && c.a.Type != plan.TypeHallway {
		outward = c.a.Area() > c.b.Area()
	}

	return plan.DoorPlacement{
		Room:       c.a.Name,
		ConnectsTo: c.b.Name,
		Axis:       c.edge.Axis,
		Pos:        round2(c.edge.Pos),
		At:         round2(at),
		Offset:     round2(offset),
		WidthIn:    widthIn,
		Outward:    outward,
		SwingClear: true,
	}, true
}

// doorReachable floods from the hallways through the placed doors and
// returns the set of space names reached. In an open-concept program the
// doorless open-flow boundaries are passable too, so a great room served
// only by the kitchen opening does not trigger a bridge.
func doorReachable(rooms []plan.PlacedRoom, halls []plan.HallwaySegment, doors []plan.DoorPlacement, openConcept bool, tol float64) map[string]bool {
	type link struct{ a, b string }
	links := make([]link, 0, len(doors))
	for i := range doors {
		links = append(links, link{doors[i].Room, doors[i].ConnectsTo})
	}
	if openConcept {
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				a, b := &rooms[i], &rooms[j]
				if !openFlowPair(a.Type, b.Type) {
					continue
				}
				if geometry.SharedEdgeLength(a.Rect, b.Rect, tol) < passableSpan(a, b) {
					continue
				}
				links = append(links, link{a.Name, b.Name})
			}
		}
	}

	reached := make(map[string]bool, len(halls)+len(rooms))
	for i := range halls {
		reached[halls[i].Name] = true
	}
	for changed := true; changed; {
		changed = false
		for _, l := range links {
			if reached[l.a] != reached[l.b] {
				reached[l.a] = true
				reached[l.b] = true
				changed = true
			}
		}
	}
	return reached
}

func pairKey(a, b string) [2]string {
	if a > b {
		return [2]string{b, a}
	}
	return [2]string{a, b}
}

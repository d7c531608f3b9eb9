package layout

import (
	"math"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// swingBox returns the axis-aligned bounding box of a door's quarter
// circle swing, on the side of the wall the leaf opens into. The box is
// radius by radius with the hinge jamb at one corner.
func swingBox(d *plan.DoorPlacement, spaces map[string]geometry.Rect) geometry.Rect {
	r := d.WidthFt()
	target, ok := spaces[d.SwingInto()]
	if d.Axis == geometry.AxisY {
		if ok && target.CenterX() < d.Pos {
			return geometry.Rect{X: d.Pos - r, Y: d.At, W: r, D: r}
		}
		return geometry.Rect{X: d.Pos, Y: d.At, W: r, D: r}
	}
	if ok && target.CenterY() < d.Pos {
		return geometry.Rect{X: d.At, Y: d.Pos - r, W: r, D: r}
	}
	return geometry.Rect{X: d.At, Y: d.Pos, W: r, D: r}
}

// resolveSwings detects colliding door swings and resolves each
// conflict by reversing one door when a reversal lands clear and does
// not put a leaf into a hallway. A conflict neither flip can fix leaves
// the later door flagged as not swing clear.
func resolveSwings(doors []plan.DoorPlacement, rooms []plan.PlacedRoom, halls []plan.HallwaySegment) {
	spaces := make(map[string]geometry.Rect, len(rooms)+len(halls))
	hallName := make(map[string]bool, len(halls))
	for i := range rooms {
		spaces[rooms[i].Name] = rooms[i].Rect
	}
	for i := range halls {
		spaces[halls[i].Name] = halls[i].Rect
		hallName[halls[i].Name] = true
	}

	boxes := make([]geometry.Rect, len(doors))
	for i := range doors {
		boxes[i] = swingBox(&doors[i], spaces)
	}

	tryFlip := func(k int) bool {
		flipped := doors[k]
		flipped.Outward = !flipped.Outward
		if hallName[flipped.SwingInto()] {
			return false
		}
		nb := swingBox(&flipped, spaces)
		for m := range doors {
			if m != k && arcsOverlap(nb, boxes[m]) {
				return false
			}
		}
		doors[k] = flipped
		boxes[k] = nb
		return true
	}

	for i := range doors {
		for j := i + 1; j < len(doors); j++ {
			if !arcsOverlap(boxes[i], boxes[j]) {
				continue
			}
			if tryFlip(j) || tryFlip(i) {
				continue
			}
			doors[j].SwingClear = false
		}
	}
}

// arcsOverlap reports strict interior overlap of two swing boxes.
// Touching edges do not conflict.
func arcsOverlap(a, b geometry.Rect) bool {
	return math.Min(a.MaxX(), b.MaxX())-math.Max(a.X, b.X) > eps &&
		math.Min(a.MaxY(), b.MaxY())-math.Max(a.Y, b.Y) > eps
}

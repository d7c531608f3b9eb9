// Package geometry provides the axis-aligned rectangle math shared by the
// layout engine: containment, overlap, and shared-edge detection under the
// positional tolerance used to absorb rounding during packing.
//
// All coordinates are in feet. The x axis runs along the building length,
// the y axis along the building width ("depth" in room terms).
package geometry

const eps = 1e-9

// Rect is an axis-aligned rectangle with its origin at the minimum corner.
type Rect struct {
	X float64 `json:"x"` // origin corner
	Y float64 `json:"y"`
	W float64 `json:"w"` // extent along x (width)
	D float64 `json:"d"` // extent along y (depth)
}

// MaxX returns the far x coordinate of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the far y coordinate of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.D }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.D/2 }

// Area returns the rectangle's area.
func (r Rect) Area() float64 { return r.W * r.D }

// Aspect returns the width:depth ratio normalized to be >= 1.
// Degenerate rectangles report an infinite-like aspect via division
// by the eps floor so callers can reject them with a plain threshold.
func (r Rect) Aspect() float64 {
	w, d := r.W, r.D
	if w < eps || d < eps {
		return max(w, d) / eps
	}
	return max(w/d, d/w)
}

// Empty reports whether the rectangle has no usable extent.
func (r Rect) Empty() bool { return r.W < eps || r.D < eps }

// ContainsWithin reports whether inner lies inside r, allowing each edge
// to stick out by at most tol.
func (r Rect) ContainsWithin(inner Rect, tol float64) bool {
	return inner.X >= r.X-tol &&
		inner.Y >= r.Y-tol &&
		inner.MaxX() <= r.MaxX()+tol &&
		inner.MaxY() <= r.MaxY()+tol
}

// OverlapsWithin reports whether a and b overlap by more than tol along
// both axes. Shared edges and corner contacts do not count as overlap.
func OverlapsWithin(a, b Rect, tol float64) bool {
	ox := min(a.MaxX(), b.MaxX()) - max(a.X, b.X)
	oy := min(a.MaxY(), b.MaxY()) - max(a.Y, b.Y)
	return ox > tol && oy > tol
}

// Manhattan returns the Manhattan distance between the centers of a and b.
func Manhattan(a, b Rect) float64 {
	dx := a.CenterX() - b.CenterX()
	dy := a.CenterY() - b.CenterY()
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Axis identifies the direction a shared edge runs along.
type Axis string

const (
	// AxisX is an edge parallel to the x axis (a horizontal wall).
	AxisX Axis = "x"
	// AxisY is an edge parallel to the y axis (a vertical wall).
	AxisY Axis = "y"
)

// Edge describes the contact line between two rectangles.
type Edge struct {
	Axis Axis
	Pos  float64 // fixed coordinate of the line: y for AxisX, x for AxisY
	Lo   float64 // overlap interval start along the line
	Hi   float64 // overlap interval end along the line
}

// Length returns the overlap length of the shared edge.
func (e Edge) Length() float64 { return e.Hi - e.Lo }

// SharedEdge finds the wall two rectangles share, if any. Two rectangles
// share an edge when opposing sides coincide within tol and their extents
// overlap along that side. When both a vertical and a horizontal contact
// exist (corner cases under a generous tolerance), the longer one wins.
func SharedEdge(a, b Rect, tol float64) (Edge, bool) {
	var best Edge
	found := false

	consider := func(e Edge) {
		if e.Length() <= eps {
			return
		}
		if !found || e.Length() > best.Length() {
			best = e
			found = true
		}
	}

	// Vertical contact: a's right against b's left, or the reverse.
	if d := a.MaxX() - b.X; d >= -tol && d <= tol {
		consider(Edge{Axis: AxisY, Pos: (a.MaxX() + b.X) / 2, Lo: max(a.Y, b.Y), Hi: min(a.MaxY(), b.MaxY())})
	}
	if d := b.MaxX() - a.X; d >= -tol && d <= tol {
		consider(Edge{Axis: AxisY, Pos: (b.MaxX() + a.X) / 2, Lo: max(a.Y, b.Y), Hi: min(a.MaxY(), b.MaxY())})
	}

	// Horizontal contact: a's top against b's bottom, or the reverse.
	if d := a.MaxY() - b.Y; d >= -tol && d <= tol {
		consider(Edge{Axis: AxisX, Pos: (a.MaxY() + b.Y) / 2, Lo: max(a.X, b.X), Hi: min(a.MaxX(), b.MaxX())})
	}
	if d := b.MaxY() - a.Y; d >= -tol && d <= tol {
		consider(Edge{Axis: AxisX, Pos: (b.MaxY() + a.Y) / 2, Lo: max(a.X, b.X), Hi: min(a.MaxX(), b.MaxX())})
	}

	return best, found
}

// SharedEdgeLength returns the length of the wall a and b share, or 0
// when they do not touch.
func SharedEdgeLength(a, b Rect, tol float64) float64 {
	e, ok := SharedEdge(a, b, tol)
	if !ok {
		return 0
	}
	return e.Length()
}

package planview

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// Fill colors per zone, chosen light so wall strokes and labels stay
// readable on top.
var zoneFill = map[plan.Zone]string{
	plan.ZoneMaster:    "#dbeafe",
	plan.ZoneSecondary: "#dcfce7",
	plan.ZoneCenter:    "#fef3c7",
	plan.ZoneService:   "#fce7f3",
}

const (
	hallFill     = "#f3f4f6"
	wallColor    = "#1f2937"
	gridColor    = "#e5e7eb"
	labelColor   = "#374151"
	dimColor     = "#6b7280"
	swingColor   = "#9ca3af"
	blockedSwing = "#ef4444"
)

// SVGOption configures plan-view rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale  float64 // pixels per foot
	margin float64 // pixels around the footprint
	grid   bool
	labels bool
	swings bool
}

// WithScale sets the drawing scale in pixels per foot (default 12).
func WithScale(pxPerFoot float64) SVGOption {
	return func(r *svgRenderer) {
		if pxPerFoot > 0 {
			r.scale = pxPerFoot
		}
	}
}

// WithGrid overlays a 5 ft reference grid on the footprint.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.grid = true } }

// WithoutLabels omits room names and dimension annotations.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// WithoutSwings omits door swing arcs, leaving only the openings.
func WithoutSwings() SVGOption { return func(r *svgRenderer) { r.swings = false } }

// RenderSVG draws a floor plan to scale: zone-tinted rooms, shaded
// hallways, interior walls with door openings punched out, and door
// leaves with their swing arcs. The output is deterministic for a given
// plan and option set.
func RenderSVG(p *plan.FloorPlan, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	w := p.Length*r.scale + 2*r.margin
	h := p.Width*r.scale + 2*r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="white"/>`+"\n", w, h)

	r.drawHallways(&buf, p)
	r.drawRooms(&buf, p)
	if r.grid {
		r.drawGrid(&buf, p)
	}
	r.drawWalls(&buf, p)
	r.drawShell(&buf, p)
	r.drawDoors(&buf, p)
	if r.labels {
		r.drawLabels(&buf, p)
		r.drawFootprintDims(&buf, p)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{scale: 12, margin: 24, labels: true, swings: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// px maps a coordinate in feet to pixels, offset by the margin.
func (r *svgRenderer) px(ft float64) float64 { return ft*r.scale + r.margin }

func (r *svgRenderer) drawHallways(buf *bytes.Buffer, p *plan.FloorPlan) {
	for _, h := range p.Hallways {
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			r.px(h.X), r.px(h.Y), h.W*r.scale, h.D*r.scale, hallFill)
	}
}

func (r *svgRenderer) drawRooms(buf *bytes.Buffer, p *plan.FloorPlan) {
	for _, room := range p.Rooms {
		fill, ok := zoneFill[room.Zone]
		if !ok {
			fill = "white"
		}
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			r.px(room.X), r.px(room.Y), room.W*r.scale, room.D*r.scale, fill)
	}
}

func (r *svgRenderer) drawGrid(buf *bytes.Buffer, p *plan.FloorPlan) {
	const step = 5.0
	for x := step; x < p.Length; x += step {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5"/>`+"\n",
			r.px(x), r.px(0), r.px(x), r.px(p.Width), gridColor)
	}
	for y := step; y < p.Width; y += step {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5"/>`+"\n",
			r.px(0), r.px(y), r.px(p.Length), r.px(y), gridColor)
	}
}

// drawWalls draws the solid spans of each interior wall. Door gaps are
// already punched out, so openings come for free.
func (r *svgRenderer) drawWalls(buf *bytes.Buffer, p *plan.FloorPlan) {
	for _, wall := range p.Walls {
		for _, s := range wall.Spans() {
			var x1, y1, x2, y2 float64
			if wall.Axis == geometry.AxisX {
				x1, y1 = r.px(s.Lo), r.px(wall.Pos)
				x2, y2 = r.px(s.Hi), r.px(wall.Pos)
			} else {
				x1, y1 = r.px(wall.Pos), r.px(s.Lo)
				x2, y2 = r.px(wall.Pos), r.px(s.Hi)
			}
			fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2.5"/>`+"\n",
				x1, y1, x2, y2, wallColor)
		}
	}
}

func (r *svgRenderer) drawShell(buf *bytes.Buffer, p *plan.FloorPlan) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="4"/>`+"\n",
		r.px(0), r.px(0), p.Length*r.scale, p.Width*r.scale, wallColor)
}

func (r *svgRenderer) drawDoors(buf *bytes.Buffer, p *plan.FloorPlan) {
	if !r.swings {
		return
	}
	for _, d := range p.Doors {
		r.drawDoor(buf, p, d)
	}
}

// drawDoor draws one door as an open leaf plus the arc it sweeps from
// the closed position. The hinge sits at the At end of the opening.
func (r *svgRenderer) drawDoor(buf *bytes.Buffer, p *plan.FloorPlan, d plan.DoorPlacement) {
	w := d.WidthFt()
	side := swingSide(p, d)

	var hx, hy, cx, cy, ox, oy float64
	if d.Axis == geometry.AxisX {
		hx, hy = d.At, d.Pos
		cx, cy = d.At+w, d.Pos
		ox, oy = d.At, d.Pos+side*w
	} else {
		hx, hy = d.Pos, d.At
		cx, cy = d.Pos, d.At+w
		ox, oy = d.Pos+side*w, d.At
	}

	// Open leaf from the hinge into the room.
	stroke := swingColor
	if !d.SwingClear {
		stroke = blockedSwing
	}
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>`+"\n",
		r.px(hx), r.px(hy), r.px(ox), r.px(oy), stroke)

	// Quarter arc from the closed to the open position. The sweep flag
	// follows the rotation direction around the hinge.
	sweep := 0
	if (cx-hx)*(oy-hy)-(cy-hy)*(ox-hx) > 0 {
		sweep = 1
	}
	fmt.Fprintf(buf, `  <path d="M %.1f %.1f A %.1f %.1f 0 0 %d %.1f %.1f" fill="none" stroke="%s" stroke-width="1" stroke-dasharray="3,2"/>`+"\n",
		r.px(cx), r.px(cy), w*r.scale, w*r.scale, sweep, r.px(ox), r.px(oy), stroke)
}

// swingSide reports which side of the wall the door opens toward:
// +1 for increasing coordinate, -1 for decreasing.
func swingSide(p *plan.FloorPlan, d plan.DoorPlacement) float64 {
	var rect geometry.Rect
	if room, ok := p.Room(d.SwingInto()); ok {
		rect = room.Rect
	} else if hall, ok := p.Hallway(d.SwingInto()); ok {
		rect = hall.Rect
	} else {
		return 1
	}

	center := rect.CenterY()
	if d.Axis == geometry.AxisY {
		center = rect.CenterX()
	}
	if center < d.Pos {
		return -1
	}
	return 1
}

func (r *svgRenderer) drawLabels(buf *bytes.Buffer, p *plan.FloorPlan) {
	for _, room := range p.Rooms {
		cx, cy := r.px(room.CenterX()), r.px(room.CenterY())
		size := labelSize(room.Rect, r.scale)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
			cx, cy, size, labelColor, room.Name)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="%.0f" fill="%s">%.0f×%.0f</text>`+"\n",
			cx, cy+size+2, size*0.8, dimColor, room.W, room.D)
	}
}

// labelSize scales the font with the room so labels stay inside small
// closets and pantries.
func labelSize(rect geometry.Rect, scale float64) float64 {
	size := scale * 0.9
	if fit := rect.W * scale / 8; fit < size {
		size = fit
	}
	if size < 6 {
		size = 6
	}
	if size > 14 {
		size = 14
	}
	return size
}

func (r *svgRenderer) drawFootprintDims(buf *bytes.Buffer, p *plan.FloorPlan) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="10" fill="%s">%.0f ft × %.0f ft</text>`+"\n",
		r.px(0), r.px(p.Width)+16, dimColor, p.Length, p.Width)
}

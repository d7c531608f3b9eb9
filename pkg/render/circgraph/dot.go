package circgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/planforge/pkg/layout"
	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/render"
)

// Options configures circulation graph rendering.
type Options struct {
	// Detailed includes room areas and door widths in labels.
	// When false, only the space name is shown.
	Detailed bool

	// Tolerance is the positional tolerance used when rebuilding the
	// graph from plan geometry. Zero uses the engine default.
	Tolerance float64
}

// Node fill colors match the plan-view zone palette so the two outputs
// read together.
var zoneFill = map[plan.Zone]string{
	plan.ZoneMaster:    "#dbeafe",
	plan.ZoneSecondary: "#dcfce7",
	plan.ZoneCenter:    "#fef3c7",
	plan.ZoneService:   "#fce7f3",
}

// ToDOT converts a plan's circulation structure to Graphviz DOT format.
// Rooms appear as zone-tinted boxes, hallway segments as grey dashed
// boxes. Edges carried by a placed door are solid and annotated with the
// door width; plain wall adjacencies are dotted. The resulting DOT
// string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(p *plan.FloorPlan, opts Options) string {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = layout.DefaultOptions().Tolerance
	}
	g := layout.BuildCirculationGraph(p.Rooms, p.Hallways, p.Doors, tol)

	var buf bytes.Buffer
	buf.WriteString("graph circulation {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := fmtLabel(p, n, opts.Detailed)
		attrs := fmtAttrs(p, n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q%s;\n", e.From, e.To, edgeAttrs(p, e, opts.Detailed))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(p *plan.FloorPlan, n layout.CircNode, detailed bool) string {
	if !detailed {
		return n.Name
	}
	if room, ok := p.Room(n.Name); ok {
		return fmt.Sprintf("%s\n%.0f sqft", n.Name, room.Area())
	}
	if hall, ok := p.Hallway(n.Name); ok {
		return fmt.Sprintf("%s\n%.0f sqft", n.Name, hall.Area())
	}
	return n.Name
}

func fmtAttrs(p *plan.FloorPlan, n layout.CircNode, label string) string {
	if n.Hallway {
		return fmt.Sprintf("label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey", label)
	}
	fill := "white"
	if room, ok := p.Room(n.Name); ok {
		if f, ok := zoneFill[room.Zone]; ok {
			fill = f
		}
	}
	return fmt.Sprintf("label=%q, fillcolor=%q", label, fill)
}

func edgeAttrs(p *plan.FloorPlan, e layout.CircEdge, detailed bool) string {
	if !e.Door {
		return " [style=dotted]"
	}
	if !detailed {
		return ""
	}
	for i := range p.Doors {
		d := &p.Doors[i]
		if (d.Room == e.From && d.ConnectsTo == e.To) || (d.Room == e.To && d.ConnectsTo == e.From) {
			return fmt.Sprintf(" [label=%q]", fmt.Sprintf("%d\"", d.WidthIn))
		}
	}
	return ""
}

// RenderSVG renders a DOT graph to SVG using Graphviz. The returned
// bytes are ready for display or further conversion with [render.ToPDF]
// or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse circulation DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render circulation graph: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// Graphviz emits a pt-sized svg tag with a translated viewBox. Rewrite
// the opening tag to a zero-origin pixel box so the raster converters
// scale it predictably.
func normalizeViewBox(svg []byte) []byte {
	tag := svgTagRe.Find(svg)
	if tag == nil {
		return svg
	}

	m := viewBoxRe.FindSubmatch(tag)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w <= 0 || h <= 0 {
		return svg
	}

	open := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return bytes.Replace(svg, tag, []byte(open), 1)
}

// RenderPDF renders a DOT graph as PDF, chaining [RenderSVG] into
// [render.ToPDF]. The conversion needs rsvg-convert on the PATH.
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG, chaining [RenderSVG] into
// [render.ToPNG]. A scale of 2.0 doubles the raster resolution for
// high-DPI displays. The conversion needs rsvg-convert on the PATH.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}

// Package render provides drawing output for generated floor plans.
//
// # Overview
//
// This package contains the rendering layer that turns a [plan.FloorPlan]
// into visual artifacts. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Scaled floor-plan drawings (in [planview] subpackage)
//   - Circulation graph diagrams (in [circgraph] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// the plan-view and circulation-graph renderers.
//
//	svg := planview.RenderSVG(p, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Plan View
//
// The [planview] subpackage draws the plan to scale: zone-tinted rooms,
// shaded hallways, interior walls with door openings punched out, and
// door leaves with their swing arcs.
//
// # Circulation Graph
//
// The [circgraph] subpackage renders the plan's reachability structure
// as a Graphviz diagram. Rooms and hallway segments appear as nodes,
// passable openings as edges.
//
//	dot := circgraph.ToDOT(p, circgraph.Options{})
//	svg, err := circgraph.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [planview]: github.com/matzehuels/planforge/pkg/render/planview
// [circgraph]: github.com/matzehuels/planforge/pkg/render/circgraph
// [plan.FloorPlan]: github.com/matzehuels/planforge/pkg/plan.FloorPlan
package render

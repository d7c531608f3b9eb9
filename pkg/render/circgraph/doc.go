// Package circgraph renders a plan's circulation structure as a graph diagram.
//
// # Overview
//
// This package produces Graphviz diagrams of the reachability graph the
// engine uses for its connectivity pass: rooms and hallway segments as
// nodes, passable openings as edges. It is the quickest way to see why
// a room ended up unreachable or which doors carry the circulation.
//
// # Usage
//
// Convert a plan to DOT format, then render to SVG:
//
//	dot := circgraph.ToDOT(p, circgraph.Options{Detailed: false})
//	svg, err := circgraph.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := circgraph.RenderPDF(dot)
//	png, err := circgraph.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, labels include room areas and door widths
//   - Tolerance: Positional tolerance for rebuilding the graph (0 = engine default)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses an undirected neato layout. Room nodes carry
// the same zone tints as the plan-view renderer; hallway nodes are grey
// and dashed. Door-carried edges are solid, plain wall adjacencies dotted.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package circgraph

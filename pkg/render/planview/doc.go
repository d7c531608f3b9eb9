// Package planview draws floor plans as scaled SVG, PNG, or PDF.
//
// # Overview
//
// The renderer maps plan feet to pixels and draws, in order: hallway
// shading, zone-tinted room fills, an optional reference grid, interior
// wall spans (door gaps already punched out), the exterior shell, door
// leaves with swing arcs, and labels. Output is deterministic for a
// given plan and option set, so rendered artifacts can be cached by
// plan fingerprint.
//
// Basic usage:
//
//	svg := planview.RenderSVG(p,
//	    planview.WithScale(16),
//	    planview.WithGrid(),
//	)
//
// # SVG Options
//
//   - [WithScale]: Drawing scale in pixels per foot (default 12)
//   - [WithGrid]: Overlay a 5 ft reference grid
//   - [WithoutLabels]: Omit room names and dimensions
//   - [WithoutSwings]: Omit door swing arcs
//
// # Door Rendering
//
// Each door is drawn with its leaf in the open position plus the dashed
// quarter arc it sweeps. Doors whose swing could not be kept clear of a
// neighboring swing are drawn in red.
//
// # PNG and PDF Output
//
// [RenderPNG] and [RenderPDF] convert the SVG using rsvg-convert and
// accept pass-through SVG options:
//
//	png, err := planview.RenderPNG(p, planview.WithZoom(3.0))
//	pdf, err := planview.RenderPDF(p, planview.WithPDFSVGOptions(planview.WithGrid()))
package planview

package planview

import (
	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	zoom    float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithZoom sets the raster zoom factor (default 2.0 for 2x resolution).
func WithZoom(z float64) PNGOption {
	return func(r *pngRenderer) { r.zoom = z }
}

// RenderPNG renders the plan as PNG via SVG conversion. The conversion
// shells out to rsvg-convert and fails with an install hint when the
// tool is missing.
func RenderPNG(p *plan.FloorPlan, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{zoom: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderSVG(p, r.svgOpts...)
	return render.ToPNG(svg, r.zoom)
}

package pipeline

import (
	"fmt"

	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/render/circgraph"
	"github.com/matzehuels/planforge/pkg/render/planview"
)

// Render generates output artifacts in the requested formats.
func Render(p *plan.FloorPlan, opts Options) (map[string][]byte, error) {
	if opts.IsGraphView() {
		return renderGraph(p, opts)
	}
	return renderPlan(p, opts)
}

// renderPlan generates scaled floor-plan outputs.
func renderPlan(p *plan.FloorPlan, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = planview.RenderSVG(p, svgOpts...)
		case FormatPNG:
			data, err = planview.RenderPNG(p, planview.WithPNGSVGOptions(svgOpts...), planview.WithZoom(opts.Zoom))
		case FormatPDF:
			data, err = planview.RenderPDF(p, planview.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = plan.MarshalPlan(p)
		default:
			return nil, fmt.Errorf("unsupported plan format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderGraph generates circulation-graph outputs. The DOT source is
// built once and shared by every requested format.
func renderGraph(p *plan.FloorPlan, opts Options) (map[string][]byte, error) {
	dot := circgraph.ToDOT(p, circgraph.Options{
		Detailed:  opts.Detailed,
		Tolerance: opts.Tolerance,
	})

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = circgraph.RenderSVG(dot)
		case FormatPNG:
			data, err = circgraph.RenderPNG(dot, opts.Zoom)
		case FormatPDF:
			data, err = circgraph.RenderPDF(dot)
		default:
			return nil, fmt.Errorf("unsupported graph format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds plan-view rendering options.
func buildSVGOptions(opts Options) []planview.SVGOption {
	svgOpts := []planview.SVGOption{planview.WithScale(opts.Scale)}
	if opts.Grid {
		svgOpts = append(svgOpts, planview.WithGrid())
	}
	if opts.NoLabels {
		svgOpts = append(svgOpts, planview.WithoutLabels())
	}
	if opts.NoSwings {
		svgOpts = append(svgOpts, planview.WithoutSwings())
	}
	return svgOpts
}

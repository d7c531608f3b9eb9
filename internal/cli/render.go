package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/io"
	"github.com/matzehuels/planforge/pkg/pipeline"
)

// renderCommand creates the render command for drawing an existing plan.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [plan.json]",
		Short: "Render a generated plan as a scaled drawing",
		Long: `Render a generated plan as a scaled drawing.

The render command takes a plan.json file (produced by 'generate') and
draws it to SVG, PNG, or PDF. The plan contains all geometry, so this step
is purely about drawing.

Results are cached locally for faster subsequent runs.

Use 'graph' instead to draw the circulation graph of a plan.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.View = pipeline.ViewPlan
			opts.Formats = parseFormats(formatsStr, pipeline.FormatSVG)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Drawing flags
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "drawing scale in pixels per foot (default 12)")
	cmd.Flags().Float64Var(&opts.Zoom, "zoom", 0, "raster zoom factor for PNG (default 2)")
	cmd.Flags().BoolVar(&opts.Grid, "grid", false, "overlay a 5 ft reference grid")
	cmd.Flags().BoolVar(&opts.NoLabels, "no-labels", false, "omit room labels")
	cmd.Flags().BoolVar(&opts.NoSwings, "no-swings", false, "omit door swing arcs")

	return cmd
}

// runRender loads the plan and renders it to the requested formats.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	p, err := io.ImportJSON(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering plan...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, p, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Rendered plan")
	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      basePath(output, input),
		cacheHit:  cacheHit,
		stats:     true,
	})
}

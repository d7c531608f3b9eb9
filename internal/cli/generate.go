package cli

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/io"
	"github.com/matzehuels/planforge/pkg/pipeline"
)

// engineOptsFile is the TOML shape of an engine options file. Flags set
// explicitly on the command line win over file values.
type engineOptsFile struct {
	HallwayWidth      float64 `toml:"hallway_width"`
	MaxAspect         float64 `toml:"max_aspect"`
	Tolerance         float64 `toml:"tolerance"`
	MaxAdjacencyIters int     `toml:"max_adjacency_iters"`
	MaxPlumbingIters  int     `toml:"max_plumbing_iters"`
}

// generateCommand creates the generate command, the main entry point: it
// parses a program file, runs the layout engine, and writes the plan plus
// any requested renders.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output      string
		optionsFile string
		formatsStr  string
		noCache     bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [program.toml]",
		Short: "Generate a floor plan from a room program",
		Long: `Generate a floor plan from a room program.

The generate command reads a program file (TOML or JSON) describing the
rooms the house should contain and the rectangular footprint to fill, runs
the layout engine, and writes the finished plan as JSON alongside any
requested renders.

Generation is deterministic: the same program and options always produce
the same plan. Results are cached locally for faster subsequent runs.

Examples:
  planforge generate house.toml                       # house.plan.json + house.svg
  planforge generate house.toml -f svg,png,pdf        # multiple render formats
  planforge generate house.toml --hallway-width 4     # wider corridors
  planforge generate house.toml --options engine.toml # options from a file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ProgramPath = args[0]
			opts.Formats = parseFormats(formatsStr, pipeline.FormatSVG)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if optionsFile != "" {
				if err := applyEngineOptions(optionsFile, cmd, &opts); err != nil {
					return err
				}
			}
			return c.runGenerate(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: program file minus extension)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "render format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "regenerate even if a cached plan exists")

	// Engine flags
	cmd.Flags().StringVar(&optionsFile, "options", "", "TOML file with engine options (flags override)")
	cmd.Flags().Float64Var(&opts.HallwayWidth, "hallway-width", 0, "corridor width in feet (default 3.5)")
	cmd.Flags().Float64Var(&opts.MaxAspect, "max-aspect", 0, "maximum room aspect ratio (default 2.5)")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", 0, "shared-edge coincidence slack in feet (default 0.5)")
	cmd.Flags().IntVar(&opts.MaxAdjacencyIters, "adjacency-iters", 0, "adjacency optimizer sweep cap (default 100)")
	cmd.Flags().IntVar(&opts.MaxPlumbingIters, "plumbing-iters", 0, "plumbing optimizer sweep cap (default 60)")

	// Render flags
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "drawing scale in pixels per foot (default 12)")
	cmd.Flags().Float64Var(&opts.Zoom, "zoom", 0, "raster zoom factor for PNG (default 2)")
	cmd.Flags().BoolVar(&opts.Grid, "grid", false, "overlay a 5 ft reference grid")
	cmd.Flags().BoolVar(&opts.NoLabels, "no-labels", false, "omit room labels")
	cmd.Flags().BoolVar(&opts.NoSwings, "no-swings", false, "omit door swing arcs")

	return cmd
}

// applyEngineOptions loads engine options from a TOML file. File values
// apply only where the matching flag was not set explicitly.
func applyEngineOptions(path string, cmd *cobra.Command, opts *pipeline.Options) error {
	var file engineOptsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("load options %s: %w", path, err)
	}

	flags := cmd.Flags()
	if file.HallwayWidth != 0 && !flags.Changed("hallway-width") {
		opts.HallwayWidth = file.HallwayWidth
	}
	if file.MaxAspect != 0 && !flags.Changed("max-aspect") {
		opts.MaxAspect = file.MaxAspect
	}
	if file.Tolerance != 0 && !flags.Changed("tolerance") {
		opts.Tolerance = file.Tolerance
	}
	if file.MaxAdjacencyIters != 0 && !flags.Changed("adjacency-iters") {
		opts.MaxAdjacencyIters = file.MaxAdjacencyIters
	}
	if file.MaxPlumbingIters != 0 && !flags.Changed("plumbing-iters") {
		opts.MaxPlumbingIters = file.MaxPlumbingIters
	}
	return nil
}

// runGenerate executes the full pipeline and writes the plan and renders.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Generating floor plan...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := basePath(output, opts.ProgramPath)
	planPath := base + ".plan.json"
	if err := io.ExportJSON(result.Plan, planPath); err != nil {
		return err
	}

	printSuccess("Floor plan generated")
	printFile(planPath)
	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		base:      base,
	}); err != nil {
		return err
	}
	printStats(result.Stats.RoomCount, result.Stats.DoorCount, result.CacheInfo.GenerateHit)
	printQualityWarnings(result.Plan)
	printNewline()
	printNextStep("Inspect", "planforge inspect "+planPath)

	return nil
}

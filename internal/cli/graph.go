package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/io"
	"github.com/matzehuels/planforge/pkg/pipeline"
)

// graphCommand creates the graph command for drawing circulation graphs.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "graph [plan.json]",
		Short: "Draw the circulation graph of a generated plan",
		Long: `Draw the circulation graph of a generated plan.

The graph command takes a plan.json file (produced by 'generate') and draws
the room connectivity as an undirected graph: nodes are rooms and hallway
segments, solid edges are doors, dotted edges are open adjacencies. Useful
for checking that every room is reachable and how the wings hang together.

Output defaults to Graphviz DOT; svg, png, and pdf render through Graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.View = pipeline.ViewGraph
			opts.Formats = parseFormats(formatsStr, pipeline.FormatDOT)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runGraph(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): dot (default), svg, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label nodes with areas and edges with door widths")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", 0, "shared-edge coincidence slack in feet (default 0.5)")

	return cmd
}

// runGraph loads the plan and renders its circulation graph.
func (c *CLI) runGraph(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	p, err := io.ImportJSON(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, p, opts)
	if err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	prog.done("Drew circulation graph of %d spaces", len(p.Rooms)+len(p.Hallways))

	// Suffix the default base so graph output does not collide with the
	// plan drawings of the same file.
	if output == "" {
		output = basePath("", input) + "_graph"
	}

	printSuccess("Circulation graph rendered")
	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      basePath(output, input),
		cacheHit:  cacheHit,
		stats:     true,
	})
}

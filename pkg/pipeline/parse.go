package pipeline

import (
	"context"

	"github.com/matzehuels/planforge/pkg/program"
)

// Parse loads and validates the room program for a pipeline run.
// An inline request takes precedence over a program file path; the file
// format is detected from the extension (TOML or JSON).
func Parse(ctx context.Context, opts Options) (*program.Request, error) {
	if opts.Program != nil {
		if err := opts.Program.Validate(); err != nil {
			return nil, err
		}
		return opts.Program, nil
	}
	return program.LoadFile(opts.ProgramPath)
}

package pipeline

import (
	"github.com/matzehuels/planforge/pkg/layout"
	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/program"
)

// Generate runs the layout engine for a parsed program. The engine is a
// pure computation: identical requests and options produce identical
// plans, which is what makes the plan cache safe.
func Generate(req *program.Request, opts Options) (*plan.FloorPlan, error) {
	return layout.Generate(req, opts.LayoutOptions())
}

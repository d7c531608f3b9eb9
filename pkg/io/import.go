package io

import (
	"fmt"
	"os"

	"github.com/matzehuels/planforge/pkg/plan"
)

// ImportJSON reads a JSON file at path and returns the decoded floor plan.
//
// ImportJSON opens the file, decodes it using [plan.ReadPlan], and closes
// the file. The decoded plan is validated before it is returned: a plan
// with a non-positive footprint, duplicate room names, an off-code door
// width, or a door referencing an unknown room is rejected. Errors wrap
// the underlying cause with the file path for context.
//
// The returned plan is independent of the file and can be modified
// safely after ImportJSON returns.
func ImportJSON(path string) (*plan.FloorPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p, err := plan.ReadPlan(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p, nil
}

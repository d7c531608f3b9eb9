package io

import (
	"fmt"
	"os"

	"github.com/matzehuels/planforge/pkg/plan"
)

// ExportJSON writes a floor plan to a JSON file at path.
// The file is created with 0644 permissions and truncated if it exists.
// This is the file-based counterpart of [plan.WritePlan].
func ExportJSON(p *plan.FloorPlan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := plan.WritePlan(p, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/planforge/pkg/pipeline"
)

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., house.svg, house.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	// Strip known format extensions from output path
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte // rendered outputs keyed by format
	formats   []string          // formats in requested order
	base      string            // output base path, extension per format appended
	cacheHit  bool              // whether the artifacts came from cache
	stats     bool              // print the cached/fresh line after writing
}

// writeArtifacts writes each rendered artifact to base.<format> and prints
// the output paths.
func writeArtifacts(p artifactWriteParams) error {
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := p.base + "." + format
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	if p.stats {
		printCacheStatus(p.cacheHit)
	}
	return nil
}

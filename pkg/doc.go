// Package pkg provides the core libraries for Planforge floor-plan generation.
//
// # Overview
//
// Planforge turns an abstract room program (bedroom and bathroom counts plus
// optional rooms) and a rectangular footprint into a complete single-story
// floor plan with placed rooms, hallways, doors, walls, and quality metadata.
// The pkg directory is organized into four main areas:
//
//  1. [program] - Input model (room program, footprint, templates, file loaders)
//  2. [layout] - Generation engine (zoning, packing, circulation, doors, walls)
//  3. [render] - Visual output (plan drawings, circulation graphs, conversion)
//  4. [pipeline] - Orchestration (parse → generate → render) with caching
//
// # Architecture
//
// The typical data flow through Planforge:
//
//	TOML/JSON program file
//	         ↓
//	    [program] package (validate + expand into room specs)
//	         ↓
//	    [layout] package (zones → packing → hallways → doors → walls)
//	         ↓
//	    [plan] package (the FloorPlan hand-off object)
//	         ↓
//	    [render] package (SVG/PDF/PNG/DOT output)
//
// # Quick Start
//
// Generate a plan and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/planforge/pkg/layout"
//	    "github.com/matzehuels/planforge/pkg/program"
//	    "github.com/matzehuels/planforge/pkg/render/planview"
//	)
//
//	// 1. Describe the house
//	req := &program.Request{
//	    Footprint: program.Footprint{Length: 80, Width: 30},
//	    Program: program.Program{
//	        Bedrooms:    3,
//	        Bathrooms:   2,
//	        OpenConcept: true,
//	        HasPantry:   true,
//	    },
//	}
//
//	// 2. Run the engine (nil options = defaults)
//	p, err := layout.Generate(req, nil)
//
//	// 3. Draw it
//	svg := planview.RenderSVG(p)
//
// # Main Packages
//
// ## Input Model
//
// [program] - The abstract room program and footprint, template-based
// expansion into sized room requests, and a format registry for loading
// TOML and JSON program files.
//
// [plan] - The shared vocabulary: room specs, placed rooms, hallway
// segments, doors, walls, metadata, and the FloorPlan hand-off object
// with its deterministic fingerprint.
//
// [geometry] - Axis-aligned rectangle math used everywhere downstream
// (overlap and containment tests, shared-edge detection).
//
// ## Generation Engine
//
// [layout] - The deterministic layout engine. Splits the footprint into
// zone bands, packs rooms wing by wing, improves adjacencies and plumbing
// by local search, threads hallways, places and swings doors, verifies
// reachability, and segments walls.
//
// ## Visualization
//
// [render/planview] - Scaled SVG floor-plan drawings: zone-tinted rooms,
// interior walls with door openings punched out, swing arcs, dimensions.
//
// [render/circgraph] - Circulation graphs rendered through Graphviz:
// rooms and hallways as nodes, passable openings as edges.
//
// [render] - Top-level utilities for format conversion (SVG to PDF/PNG).
//
// ## Infrastructure
//
// [pipeline] - Complete generation pipeline (parse → generate → render)
// used by every CLI entry point, with content-addressed caching of plans
// and rendered artifacts.
//
// [cache] - Filesystem cache storing values under SHA-256 content keys.
//
// [io] - Plan and artifact writers (file output, stdout, naming).
//
// [errors] - Structured errors with machine-readable codes shared by the
// library and the CLI.
//
// [observability] - Structured logging setup for the CLI and library.
//
// # Common Workflows
//
// Load a program file instead of building the request in code:
//
//	req, err := program.LoadFile("examples/three_bed.toml")
//
// Inspect connectivity without rendering:
//
//	g := layout.BuildCirculationGraph(p.Rooms, p.Hallways, p.Doors, 0.5)
//	for _, name := range g.Unreachable() {
//	    fmt.Printf("unreachable: %s\n", name)
//	}
//
// Convert a drawing for print:
//
//	pdf, err := render.ToPDF(svg)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//	go test -run Example         # Examples only
//
// [program]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/program
// [plan]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/plan
// [geometry]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/geometry
// [layout]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/render
// [render/planview]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/render/planview
// [render/circgraph]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/render/circgraph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/observability
package pkg

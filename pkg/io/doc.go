// Package io provides JSON file import and export for floor plans.
//
// # Overview
//
// This package is the file boundary around the [plan] codec. The format is
// designed for:
//
//   - Hand-off to external tooling (CAD import, estimators, viewers)
//   - Caching of generated plans for faster re-rendering
//   - Round-trip preservation: export, re-import, and render identically
//
// # JSON Format
//
// A plan file is a single JSON object with the footprint, the placed
// geometry arrays, and a metadata block:
//
//	{
//	  "length_ft": 80,
//	  "width_ft": 30,
//	  "rooms": [
//	    {"name": "great_room", "type": "great_room", "zone": "center",
//	     "target_area": 400, "x": 24, "y": 0, "w": 22, "d": 18}
//	  ],
//	  "hallways": [
//	    {"name": "Hallway_1", "x": 20.5, "y": 0, "w": 3.5, "d": 30,
//	     "orientation": "vertical", "role": "zone-boundary"}
//	  ],
//	  "doors": [
//	    {"room": "great_room", "connects_to": "Hallway_1", "axis": "y",
//	     "pos": 24, "at": 9, "offset": 0.5, "width_in": 36, "swing_clear": true}
//	  ],
//	  "walls": [
//	    {"axis": "x", "pos": 18, "lo": 24, "hi": 46, "gaps": [{"lo": 30, "hi": 33}]}
//	  ],
//	  "metadata": {"plan_id": "…", "fill_ratio": 0.62}
//	}
//
// All geometry is in feet. Door widths are whole inches, matching the
// code lookup values (28, 32, 36). Element order is preserved, so two
// identical generation runs export byte-identical files.
//
// # Import
//
// Use [ImportJSON] to read a plan from a file path:
//
//	p, err := io.ImportJSON("house.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Import validates the decoded plan (positive footprint, unique room
// names, door width values, door references). Errors are wrapped with
// the file path for context.
//
// # Export
//
// Use [ExportJSON] to write a plan to a file:
//
//	err := io.ExportJSON(p, "output.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export includes everything the generator produced, including the
// metadata block and the plan fingerprint, so a re-imported plan renders
// identically to the original.
//
// # Concurrency
//
// All functions in this package are safe to call concurrently for
// different files. [ImportJSON] returns an independent plan instance
// that can be modified freely after import.
//
// [plan]: github.com/matzehuels/planforge/pkg/plan
package io

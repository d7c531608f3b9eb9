package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// =============================================================================
// Plan Serialization API
// =============================================================================

// MarshalPlan converts a FloorPlan to JSON bytes.
// Element order is preserved, so identical plans marshal identically.
func MarshalPlan(p *FloorPlan) ([]byte, error) {
	var buf bytes.Buffer
	if err := writePlanTo(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePlan writes a FloorPlan as JSON to an io.Writer.
// Use MarshalPlan for in-memory serialization. File-based import and
// export live in the io package.
func WritePlan(p *FloorPlan, w io.Writer) error {
	return writePlanTo(p, w)
}

// ReadPlan decodes a JSON plan from an io.Reader.
// Pass bytes.NewReader for in-memory data. The decoded plan is validated
// before it is returned.
func ReadPlan(r io.Reader) (*FloorPlan, error) {
	return readPlanFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writePlanTo(p *FloorPlan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readPlanFrom(r io.Reader) (*FloorPlan, error) {
	var p FloorPlan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

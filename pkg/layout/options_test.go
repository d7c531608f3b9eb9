package layout

import (
	"testing"

	"github.com/matzehuels/planforge/pkg/errors"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.HallwayWidth != DefaultHallwayWidth {
		t.Errorf("HallwayWidth = %v, want %v", o.HallwayWidth, DefaultHallwayWidth)
	}
	if o.MaxAspect != DefaultMaxAspect {
		t.Errorf("MaxAspect = %v, want %v", o.MaxAspect, DefaultMaxAspect)
	}
	if o.Tolerance != DefaultTolerance {
		t.Errorf("Tolerance = %v, want %v", o.Tolerance, DefaultTolerance)
	}
	if o.MaxAdjacencyIters != DefaultMaxAdjacencyIters {
		t.Errorf("MaxAdjacencyIters = %d, want %d", o.MaxAdjacencyIters, DefaultMaxAdjacencyIters)
	}
	if o.MaxPlumbingIters != DefaultMaxPlumbingIters {
		t.Errorf("MaxPlumbingIters = %d, want %d", o.MaxPlumbingIters, DefaultMaxPlumbingIters)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	// Zero fields fill in, set fields survive.
	o := &Options{HallwayWidth: 4}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if o.HallwayWidth != 4 {
		t.Errorf("HallwayWidth = %v, want 4", o.HallwayWidth)
	}
	if o.MaxAspect != DefaultMaxAspect {
		t.Errorf("MaxAspect = %v, want default %v", o.MaxAspect, DefaultMaxAspect)
	}

	// Idempotent.
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second ValidateAndSetDefaults: %v", err)
	}
}

func TestValidateRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"NegativeHallway", Options{HallwayWidth: -1}},
		{"AspectBelowOne", Options{MaxAspect: 0.5}},
		{"NegativeTolerance", Options{Tolerance: -0.1}},
		{"NegativeIters", Options{MaxAdjacencyIters: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if code := errors.GetCode(err); code != errors.ErrCodeInvalidOptions {
				t.Errorf("error code = %s, want %s", code, errors.ErrCodeInvalidOptions)
			}
		})
	}
}

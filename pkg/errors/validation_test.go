package errors

import (
	"testing"
)

func TestValidateRoomName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid template name", "master_bedroom", false},
		{"valid numbered", "Bedroom_2", false},
		{"valid short", "kitchen", false},
		{"valid closet", "Master_WIC", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 100)), true},
		{"leading digit", "2_bedroom", true},
		{"with dash", "great-room", true},
		{"with space", "great room", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoomName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRoomName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	longPath := make([]byte, 501)
	for i := range longPath {
		longPath[i] = 'a'
	}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "out/plan.json", false},
		{"valid nested", "renders/plans/house.svg", false},
		{"valid absolute", "/tmp/plan.json", false},

		{"empty", "", true},
		{"too long", string(longPath), true},
		{"path traversal", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

package errors

import (
	"testing"
)

func TestValidateEngine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"force", "force", false},
		{"tree", "tree", false},
		{"series-parallel", "seriesparallel", false},
		{"orthogonal", "orthogonal", false},
		{"hierarchic mixed case", "Hierarchic", false},

		{"empty", "", true},
		{"unknown", "circular", true},
		{"prefix only", "hier", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEngine(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEngine(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeUnknownEngine) {
				t.Errorf("ValidateEngine(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeUnknownEngine)
			}
		})
	}
}

func TestValidateOrientation(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"N", false},
		{"e", false},
		{"S", false},
		{"W", false},
		{"NE", true},
		{"x", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateOrientation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOrientation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"json", false},
		{"SVG", false},
		{"dot", false},
		{"png", false},
		{"pdf", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePositive(t *testing.T) {
	if err := ValidatePositive("distance", 50); err != nil {
		t.Errorf("ValidatePositive(50) = %v, want nil", err)
	}
	if err := ValidatePositive("distance", 0); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("ValidatePositive(0) = %v, want %v", err, ErrCodeInvalidConfig)
	}
	if err := ValidateNonNegative("margin", 0); err != nil {
		t.Errorf("ValidateNonNegative(0) = %v, want nil", err)
	}
	if err := ValidateNonNegative("margin", -1); err == nil {
		t.Error("ValidateNonNegative(-1) = nil, want error")
	}
}

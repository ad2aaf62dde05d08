package http

import (
	"strings"
	"testing"
)

func TestCustomValidatorTags(t *testing.T) {
	cv := NewValidator()

	type probe struct {
		Hex  string  `validate:"omitempty,hex32"`
		Dec  float64 `validate:"omitempty,dec2"`
		Role string  `validate:"omitempty,role"`
		Kind string  `validate:"omitempty,ruletype"`
	}

	tests := []struct {
		name string
		in   probe
		ok   bool
	}{
		{"all empty", probe{}, true},
		{"valid hex32", probe{Hex: strings.Repeat("a", 32)}, true},
		{"uppercase hex32", probe{Hex: strings.Repeat("A", 32)}, false},
		{"short hex32", probe{Hex: "abc"}, false},
		{"two decimals", probe{Dec: 10.25}, true},
		{"three decimals", probe{Dec: 10.253}, false},
		{"role employee", probe{Role: "employee"}, true},
		{"role bogus", probe{Role: "root"}, false},
		{"ruletype hybrid", probe{Kind: "hybrid"}, true},
		{"ruletype bogus", probe{Kind: "unanimous"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.in)
			if tt.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	out := ToFieldErrors(errInvalid{})
	if len(out) != 1 || out[0].Field != "_" {
		t.Fatalf("unexpected: %+v", out)
	}
}

type errInvalid struct{}

func (errInvalid) Error() string { return "boom" }

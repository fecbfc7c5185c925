package typecheck

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

type label string

func TestIsNumericLike(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"int", 42, true},
		{"negative float", -3.25, true},
		{"zero", 0, true},
		{"infinity", math.Inf(1), true},
		{"NaN", math.NaN(), false},
		{"numeric string", "42", true},
		{"leading numeric prefix", "42abc", true},
		{"padded", "  \t3.14  ", true},
		{"exponent", "1e3", true},
		{"dangling exponent", "1e", true},
		{"leading dot", ".5", true},
		{"trailing dot", "5.", true},
		{"signed", "-7px", true},
		{"Infinity literal", "Infinity", true},
		{"signed Infinity", "-Infinityx", true},
		{"hex prefix parses as zero", "0x1f", true},
		{"letters", "abc", false},
		{"empty string", "", false},
		{"whitespace only", "   ", false},
		{"sign only", "-", false},
		{"dot only", ".", false},
		{"lowercase infinity", "infinity", false},
		{"named string", label("12kg"), true},
		{"bool", true, false},
		{"nil", nil, false},
		{"bigint", big.NewInt(1), false},
		{"slice", []int{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumericLike(tt.value))
		})
	}
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"42abc", 42, true},
		{"3.14.15", 3.14, true},
		{"  -0.5e2xyz", -50, true},
		{"1e", 1, true},
		{"  7", 7, true},
		{"+Infinity and beyond", math.Inf(1), true},
		{"1e999", math.Inf(1), true},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLeadingFloat(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

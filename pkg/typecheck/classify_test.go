package typecheck

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type point struct{ X, Y int }

type tagged struct{}

func (tagged) ClassTag() string { return "Arguments" }

type panickyTag struct{}

func (panickyTag) ClassTag() string { panic("no tag") }

type celsius float64

func TestClassify(t *testing.T) {
	var nilPtr *point
	var nilMap map[string]any
	var nilFunc func()
	x := 3

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"untyped nil", nil, "null"},
		{"nil pointer", nilPtr, "null"},
		{"nil map", nilMap, "null"},
		{"nil func", nilFunc, "null"},
		{"undefined", Undefined, "undefined"},
		{"bool", true, "boolean"},
		{"int", 42, "number"},
		{"uint8", uint8(7), "number"},
		{"float", 3.5, "number"},
		{"named float", celsius(21.5), "number"},
		{"NaN", math.NaN(), "number"},
		{"complex", complex(1, 2), "complex"},
		{"string", "hi", "string"},
		{"bigint", big.NewInt(10), "bigint"},
		{"slice", []int{1, 2}, "array"},
		{"empty slice", []any{}, "array"},
		{"array", [2]string{"a", "b"}, "array"},
		{"map", map[string]any{"a": 1}, "object"},
		{"Object", Object{}, "object"},
		{"struct", point{1, 2}, "object"},
		{"struct pointer", &point{1, 2}, "object"},
		{"int pointer", &x, "pointer"},
		{"func", func() {}, "function"},
		{"channel", make(chan int), "channel"},
		{"time", time.Unix(0, 0), "date"},
		{"time pointer", &time.Time{}, "date"},
		{"regexp", regexp.MustCompile("a+"), "regexp"},
		{"error", errors.New("boom"), "error"},
		{"tagger", tagged{}, "arguments"},
		{"panicking tagger", panickyTag{}, "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.value))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	values := []any{nil, 1, "s", []int{}, map[string]int{}, point{}, func() {}}
	for _, v := range values {
		assert.Equal(t, Classify(v), Classify(v))
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "object"},
		{"undefined", Undefined, "undefined"},
		{"bool", false, "boolean"},
		{"number", 1.5, "number"},
		{"string", "", "string"},
		{"bigint", big.NewInt(1), "bigint"},
		{"complex", complex64(1), "complex"},
		{"func", func(int) {}, "function"},
		{"slice", []int{}, "object"},
		{"map", map[int]int{}, "object"},
		{"struct", point{}, "object"},
		{"pointer", &point{}, "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.value))
		})
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"undefined", Undefined, false},
		{"nil pointer", (*point)(nil), false},
		{"false", false, false},
		{"true", true, true},
		{"zero", 0, false},
		{"zero float", 0.0, false},
		{"NaN", math.NaN(), false},
		{"non-zero", -1, true},
		{"empty string", "", false},
		{"string", "0", true},
		{"zero bigint", big.NewInt(0), false},
		{"bigint", big.NewInt(5), true},
		{"empty map", map[string]any{}, true},
		{"empty slice", []int{}, true},
		{"struct", point{}, true},
		{"func", func() {}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTruthy(tt.value))
		})
	}
}

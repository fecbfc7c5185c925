package typecheck

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var leadingFloat = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

// IsNumericLike reports whether v is a number other than NaN, or a string
// that starts with a floating-point literal. Trailing characters after the
// numeric prefix are ignored, so "42px" is numeric-like and "px42" is not.
func IsNumericLike(v any) bool {
	switch TypeOf(v) {
	case "number":
		f, _ := toNumber(reflect.ValueOf(v))
		return !math.IsNaN(f)
	case "string":
		_, ok := ParseLeadingFloat(reflect.ValueOf(v).String())
		return ok
	}
	return false
}

// ParseLeadingFloat parses the longest floating-point literal at the start of
// s after skipping leading white space. It accepts an optional sign, decimal
// digits with an optional fraction and exponent, or Infinity. Values outside
// the float64 range saturate to ±Inf or zero.
func ParseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, isLeadingSpace)
	lit := leadingFloat.FindString(s)
	if lit == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func isLeadingSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

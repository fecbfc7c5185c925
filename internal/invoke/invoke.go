// Package invoke adapts functions of arbitrary signature to a uniform
// variadic form.
package invoke

import (
	"fmt"
	"math"
	"reflect"
)

// ArgumentError reports a positional argument that cannot be passed to the
// target function. It is raised as a panic from the adapted function.
type ArgumentError struct {
	Index int
	Got   reflect.Type
	Want  reflect.Type
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invoke: argument %d: cannot use %v as %v", e.Index, e.Got, e.Want)
}

// Func returns a function that calls fn with its arguments forwarded
// positionally. Missing or nil arguments become zero values, surplus
// arguments to a non-variadic fn are dropped, and results are discarded.
// Numbers convert to other numeric parameter types only when the value
// survives: integer parameters reject fractions, overflow and sign changes,
// and float parameters reject finite values that overflow to infinity.
// Arguments that cannot be passed cause the returned function to panic with
// *ArgumentError.
func Func(fn any) (func(args ...any), error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("invoke: %T is not a function", fn)
	}
	ft := fv.Type()
	return func(args ...any) {
		fv.Call(arguments(ft, args))
	}, nil
}

func arguments(ft reflect.Type, args []any) []reflect.Value {
	n := ft.NumIn()
	fixed := n
	if ft.IsVariadic() {
		fixed = n - 1
	}

	in := make([]reflect.Value, 0, max(n, len(args)))
	for i := 0; i < fixed; i++ {
		var arg any
		if i < len(args) {
			arg = args[i]
		}
		in = append(in, convert(i, arg, ft.In(i)))
	}
	if ft.IsVariadic() {
		elem := ft.In(n - 1).Elem()
		for i := fixed; i < len(args); i++ {
			in = append(in, convert(i, args[i], elem))
		}
	}
	return in
}

func convert(index int, arg any, want reflect.Type) reflect.Value {
	if arg == nil {
		return reflect.Zero(want)
	}
	v := reflect.ValueOf(arg)
	got := v.Type()
	switch {
	case got.AssignableTo(want):
		return v
	case isNumeric(got) && isNumeric(want):
		if converted := v.Convert(want); lossless(v, converted) {
			return converted
		}
	case got.Kind() == want.Kind() && got.ConvertibleTo(want):
		return v.Convert(want)
	}
	panic(&ArgumentError{Index: index, Got: got, Want: want})
}

func isNumeric(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// lossless reports whether converted represents the same number as v.
func lossless(v, converted reflect.Value) bool {
	if isFloat(converted.Type()) {
		return !math.IsInf(converted.Float(), 0) || math.IsInf(toFloat(v), 0)
	}
	if isFloat(v.Type()) {
		f := v.Float()
		return f == math.Trunc(f) && toFloat(converted) == f
	}
	if isNegative(v) != isNegative(converted) {
		return false
	}
	return converted.Convert(v.Type()).Equal(v)
}

func isFloat(t reflect.Type) bool {
	return t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64
}

func isNegative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint())
	}
	return v.Float()
}

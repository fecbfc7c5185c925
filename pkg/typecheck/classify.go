package typecheck

import (
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strings"
	"time"
)

type undefined struct{}

// Undefined is the value of a property that does not exist. Classify reports
// it as "undefined"; every shape predicate rejects it.
var Undefined any = undefined{}

// Object is the base plain-object type.
type Object map[string]any

// Tagger is implemented by values that report their own class tag, in the
// same way host objects customise their string tag.
type Tagger interface {
	ClassTag() string
}

var (
	objectType    = reflect.TypeOf(Object(nil))
	undefinedType = reflect.TypeOf(undefined{})
	timeType      = reflect.TypeOf(time.Time{})
	regexpType    = reflect.TypeOf((*regexp.Regexp)(nil))
	bigIntType    = reflect.TypeOf((*big.Int)(nil))
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
)

// Classify returns the lowercase class tag of v. Nil values yield "null" and
// Undefined yields "undefined". Objects and functions report their class tag
// ("array", "object", "date", "function", ...); any other value reports its
// runtime type name as returned by TypeOf.
func Classify(v any) string {
	if isUndefined(v) {
		return "undefined"
	}
	if isNullish(v) {
		return "null"
	}

	switch kind := TypeOf(v); kind {
	case "object", "function":
		return classTag(v)
	default:
		return kind
	}
}

// TypeOf returns the coarse runtime type name of v: "undefined", "object",
// "function", "boolean", "number", "string", "bigint" or "complex". Nil
// values are objects, mirroring how a null reference is typed.
func TypeOf(v any) string {
	if isUndefined(v) {
		return "undefined"
	}
	if v == nil {
		return "object"
	}

	rv := reflect.ValueOf(v)
	if rv.Type() == bigIntType {
		return "bigint"
	}

	switch rv.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Complex64, reflect.Complex128:
		return "complex"
	case reflect.String:
		return "string"
	case reflect.Func:
		return "function"
	default:
		return "object"
	}
}

// IsTruthy reports whether v counts as true in a boolean context. Nil,
// Undefined, false, numeric zero, NaN and the empty string are falsy;
// everything else is truthy.
func IsTruthy(v any) bool {
	if isUndefined(v) || isNullish(v) {
		return false
	}

	rv := reflect.ValueOf(v)
	if rv.Type() == bigIntType {
		return rv.Interface().(*big.Int).Sign() != 0
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	}
	if f, ok := toNumber(rv); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// classTag extracts the class tag of a non-nil object or function.
func classTag(v any) (tag string) {
	if t, ok := v.(Tagger); ok {
		if custom, ok := callTagger(t); ok && custom != "" {
			return strings.ToLower(custom)
		}
	}

	rv := reflect.ValueOf(v)
	rt := rv.Type()
	switch {
	case rt == timeType || (rt.Kind() == reflect.Pointer && rt.Elem() == timeType):
		return "date"
	case rt == regexpType:
		return "regexp"
	case rt.Implements(errorType):
		return "error"
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Pointer:
		switch rt.Elem().Kind() {
		case reflect.Struct, reflect.Map:
			return "object"
		}
		return "pointer"
	case reflect.UnsafePointer:
		return "pointer"
	case reflect.Func:
		return "function"
	case reflect.Chan:
		return "channel"
	default:
		return "object"
	}
}

func callTagger(t Tagger) (tag string, ok bool) {
	defer func() {
		if recover() != nil {
			tag, ok = "", false
		}
	}()
	return t.ClassTag(), true
}

func isUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// isNullish reports whether v is nil or a nil reference of any nilable kind.
func isNullish(v any) bool {
	if v == nil {
		return true
	}
	return isNilValue(reflect.ValueOf(v))
}

func isNilValue(rv reflect.Value) bool {
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// toNumber converts a value of a numeric kind to float64.
func toNumber(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

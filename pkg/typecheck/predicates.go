package typecheck

import (
	"reflect"
)

// IsCallable reports whether v is a non-nil function that does not look like
// a host node: values exposing a numeric NodeType or a callable Item are
// rejected even when their underlying kind is func.
func IsCallable(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return false
	}
	return !hasNumericProperty(rv, "nodeType") && !hasCallableProperty(rv, "item")
}

// IsWindowLike reports whether v is a self-referential global object, that is
// a non-nil value whose window property refers back to v itself.
func IsWindowLike(v any) bool {
	if isUndefined(v) || isNullish(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	w, ok := dataProperty(rv, "window")
	if !ok {
		return false
	}
	return sameReference(rv, unwrap(w))
}

// IsArrayLike reports whether v is a structurally indexable sequence: it has
// a length, is neither callable nor window-like, and is either an array, has
// a length of zero, or has a positive numeric length with index length-1
// present.
func IsArrayLike(v any) bool {
	if isUndefined(v) || isNullish(v) {
		return false
	}

	rv := reflect.ValueOf(v)
	length, ok := lengthOf(rv)
	if !ok {
		return false
	}
	if IsCallable(v) || IsWindowLike(v) {
		return false
	}

	if Classify(v) == "array" {
		return true
	}
	n, isNumber := toNumber(unwrap(length))
	if !isNumber {
		return false
	}
	return n == 0 || (n > 0 && hasIndex(rv, n-1))
}

// IsPlainObject reports whether v is a plain data object: a map with string
// keys or a struct (or pointer to struct) whose type is either unnamed or the
// package Object type. Values of declared types behave like class instances
// and are rejected.
func IsPlainObject(v any) bool {
	if !IsTruthy(v) || Classify(v) != "object" {
		return false
	}

	rt := reflect.TypeOf(v)
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == objectType {
		return true
	}

	switch rt.Kind() {
	case reflect.Map:
		return rt.Name() == "" && rt.Key().Kind() == reflect.String
	case reflect.Struct:
		return rt.Name() == ""
	}
	return false
}

// IsEmptyStructure reports whether v is a non-nil object that owns no keys at
// all. Every map entry and every struct field counts, unexported fields
// included; slices and arrays always own their length and are never empty.
// Pointers are looked through; other object kinds are not structures.
func IsEmptyStructure(v any) bool {
	if TypeOf(v) != "object" || isNullish(v) {
		return false
	}
	n, ok := ownKeyCount(reflect.ValueOf(v))
	return ok && n == 0
}

// ownKeyCount returns the number of keys rv owns and whether rv is a keyed
// structure at all.
func ownKeyCount(rv reflect.Value) (int, bool) {
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Len(), true
	case reflect.Struct:
		return rv.NumField(), true
	case reflect.Slice:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Len() + 1, true
	case reflect.Array:
		return rv.Len() + 1, true
	case reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}
		return ownKeyCount(rv.Elem())
	}
	return 0, false
}

// sameReference reports whether a and b denote the same object identity.
func sameReference(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() || a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return !a.IsNil() && a.Pointer() == b.Pointer()
	}
	return false
}

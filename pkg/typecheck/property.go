package typecheck

import (
	"reflect"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// dataProperty resolves name as a map entry or an exported struct field,
// following one level of pointer indirection. Promoted fields of embedded
// structs are found too.
func dataProperty(rv reflect.Value, name string) (reflect.Value, bool) {
	rv = unwrap(rv)
	if !rv.IsValid() {
		return reflect.Value{}, false
	}

	switch rv.Kind() {
	case reflect.Map:
		return mapEntry(rv, name)
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return reflect.Value{}, false
		}
		return structField(rv.Elem(), name)
	case reflect.Struct:
		return structField(rv, name)
	}
	return reflect.Value{}, false
}

// methodProperty resolves name as an exported method of rv.
func methodProperty(rv reflect.Value, name string) (reflect.Value, bool) {
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	goName := exportedName(name)
	if goName == "" {
		return reflect.Value{}, false
	}
	m := rv.MethodByName(goName)
	if !m.IsValid() && rv.Kind() == reflect.Interface && !rv.IsNil() {
		m = rv.Elem().MethodByName(goName)
	}
	return m, m.IsValid()
}

// hasNumericProperty reports whether rv exposes name as a number, either as
// data or as a getter method of the form func() <numeric>.
func hasNumericProperty(rv reflect.Value, name string) bool {
	if p, ok := dataProperty(rv, name); ok {
		if _, ok := toNumber(unwrap(p)); ok {
			return true
		}
	}
	if m, ok := methodProperty(rv, name); ok {
		mt := m.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 {
			_, ok := toNumber(reflect.Zero(mt.Out(0)))
			return ok
		}
	}
	return false
}

// hasCallableProperty reports whether rv exposes name as a method or as a
// data property holding a non-nil function.
func hasCallableProperty(rv reflect.Value, name string) bool {
	if _, ok := methodProperty(rv, name); ok {
		return true
	}
	if p, ok := dataProperty(rv, name); ok {
		p = unwrap(p)
		return p.IsValid() && p.Kind() == reflect.Func && !p.IsNil()
	}
	return false
}

// lengthOf returns the length of rv and whether one is defined at all. The
// length is returned as a reflect.Value because a user-supplied length
// property need not be numeric.
func lengthOf(rv reflect.Value) (length reflect.Value, ok bool) {
	rv = unwrap(rv)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		return reflect.ValueOf(rv.Len()), true
	}

	if p, ok := dataProperty(rv, "length"); ok {
		p = unwrap(p)
		if p.IsValid() && p.Type() == undefinedType {
			return reflect.Value{}, false
		}
		return p, true
	}
	return callLen(rv)
}

// callLen invokes a Len() <integer> method. A panicking Len is treated as if
// no length were defined.
func callLen(rv reflect.Value) (length reflect.Value, ok bool) {
	m, found := methodProperty(rv, "len")
	if !found {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return reflect.Value{}, false
	}
	switch mt.Out(0).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return reflect.Value{}, false
	}

	defer func() {
		if recover() != nil {
			length, ok = reflect.Value{}, false
		}
	}()
	return m.Call(nil)[0], true
}

// hasIndex reports whether index i is present on rv, by native indexing for
// sequences or by key lookup for maps.
func hasIndex(rv reflect.Value, i float64) bool {
	rv = unwrap(rv)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		return i >= 0 && i == float64(int(i)) && int(i) < rv.Len()
	}
	_, ok := dataProperty(rv, strconv.FormatFloat(i, 'f', -1, 64))
	return ok
}

func mapEntry(m reflect.Value, name string) (reflect.Value, bool) {
	kt := m.Type().Key()
	var key reflect.Value

	switch kt.Kind() {
	case reflect.String:
		key = reflect.ValueOf(name).Convert(kt)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(name, 10, kt.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		key = reflect.ValueOf(n).Convert(kt)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(name, 10, kt.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		key = reflect.ValueOf(n).Convert(kt)
	case reflect.Interface:
		return interfaceKeyEntry(m, name)
	default:
		return reflect.Value{}, false
	}

	v := m.MapIndex(key)
	return v, v.IsValid()
}

// interfaceKeyEntry looks name up in a map keyed by an interface type, first
// as a string and then, for numeric names, as an int.
func interfaceKeyEntry(m reflect.Value, name string) (reflect.Value, bool) {
	kt := m.Type().Key()
	if reflect.TypeOf(name).AssignableTo(kt) {
		if v := m.MapIndex(reflect.ValueOf(name)); v.IsValid() {
			return v, true
		}
	}
	n, err := strconv.Atoi(name)
	if err != nil || !reflect.TypeOf(n).AssignableTo(kt) {
		return reflect.Value{}, false
	}
	v := m.MapIndex(reflect.ValueOf(n))
	return v, v.IsValid()
}

func structField(sv reflect.Value, name string) (reflect.Value, bool) {
	goName := exportedName(name)
	if goName == "" {
		return reflect.Value{}, false
	}
	sf, ok := sv.Type().FieldByName(goName)
	if !ok || !sf.IsExported() {
		return reflect.Value{}, false
	}
	f, err := sv.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, false
	}
	return f, true
}

// exportedName maps a property name to its Go identifier form, or returns ""
// when the name cannot be an exported identifier.
func exportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return ""
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// unwrap strips interface wrappers so the dynamic value can be inspected.
func unwrap(rv reflect.Value) reflect.Value {
	for rv.IsValid() && rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

/*
Package typecheck answers structural questions about arbitrary Go values:
what category a value belongs to, and whether it matches a shape such as
"array-like" or "plain data object".

Every predicate is total. It accepts any input, including nil, typed nil
pointers and host-provided values with unusual method sets, never panics and
never mutates its argument.

Classification:

	typecheck.Classify(nil)                       // "null"
	typecheck.Classify(typecheck.Undefined)       // "undefined"
	typecheck.Classify([]int{1, 2})               // "array"
	typecheck.Classify(map[string]any{})          // "object"
	typecheck.Classify(time.Now())                // "date"
	typecheck.Classify(func() {})                 // "function"
	typecheck.Classify(3.5)                       // "number"

Properties:

Several predicates look up a named property on a value. A property is a map
entry (string keys, or integer keys for numeric indices), an exported struct
field including fields promoted from embedded structs, or an exported method.
Names are matched in Go form, so "nodeType" resolves the field or method
NodeType. Methods are inspected by signature and never invoked, except for a
Len() int method which supplies a length.

Shapes:

	typecheck.IsArrayLike(map[string]any{"length": 2, "0": "a", "1": "b"}) // true
	typecheck.IsPlainObject(struct{ X int }{1})                           // true
	typecheck.IsPlainObject(time.Now())                                    // false
	typecheck.IsEmptyStructure(map[string]any{})                           // true
	typecheck.IsNumericLike("42px")                                        // true

A named (declared) type plays the role of a class: its values are objects but
not plain objects. Unnamed composite types and the package's Object type are
plain.
*/
package typecheck

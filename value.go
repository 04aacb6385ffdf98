package decaf

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase kind name as used in error descriptions.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is an immutable JSON value: null, bool, number, string, array or
// object. The zero Value is null. Values may be shared freely across
// traversals and goroutines; nothing mutates them after construction.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String returns a string value.
func String(v string) Value { return Value{kind: KindString, str: v} }

// Number returns a numeric value from its JSON literal. The literal is not
// validated here; MarshalJSON rejects text that is not a valid JSON number.
func Number(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// Int returns a numeric value holding an integer literal.
func Int(v int64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatInt(v, 10))}
}

// Float returns a numeric value holding a floating-point literal. NaN and
// infinities produce literals that MarshalJSON rejects.
func Float(v float64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatFloat(v, 'g', -1, 64))}
}

// Array returns an array value. The elements are copied.
func Array(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: KindArray, arr: arr}
}

// Object returns an object value. The map is copied; a nil map yields the
// empty object.
func Object(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool views v as a bool, or fails with type_mismatch.
func (v Value) AsBool() Result[bool] {
	if v.kind != KindBool {
		return Fail[bool](Error{Code: CodeTypeMismatch, Expected: "bool", Actual: v.kind.String()})
	}
	return Succeed(v.b)
}

// AsString views v as a string, or fails with type_mismatch.
func (v Value) AsString() Result[string] {
	if v.kind != KindString {
		return Fail[string](Error{Code: CodeTypeMismatch, Expected: "string", Actual: v.kind.String()})
	}
	return Succeed(v.str)
}

// AsNumber views v as its json.Number literal, or fails with type_mismatch.
func (v Value) AsNumber() Result[json.Number] {
	if v.kind != KindNumber {
		return Fail[json.Number](Error{Code: CodeTypeMismatch, Expected: "number", Actual: v.kind.String()})
	}
	return Succeed(v.num)
}

// AsInt views v as an int64. Integral floating literals such as 1e3 or 2.0
// are accepted; fractional or out-of-range numbers fail with type_mismatch.
func (v Value) AsInt() Result[int64] {
	if v.kind != KindNumber {
		return Fail[int64](Error{Code: CodeTypeMismatch, Expected: "integer", Actual: v.kind.String()})
	}
	n, err := v.num.Int64()
	if err == nil {
		return Succeed(n)
	}
	if f, ferr := v.num.Float64(); ferr == nil && f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63 {
		return Succeed(int64(f))
	}
	return Fail[int64](Error{Code: CodeTypeMismatch, Expected: "integer", Actual: "number " + v.num.String(), Cause: err})
}

// AsFloat views v as a float64, or fails with type_mismatch.
func (v Value) AsFloat() Result[float64] {
	if v.kind != KindNumber {
		return Fail[float64](Error{Code: CodeTypeMismatch, Expected: "number", Actual: v.kind.String()})
	}
	f, err := v.num.Float64()
	if err != nil {
		return Fail[float64](Error{Code: CodeTypeMismatch, Expected: "number", Actual: "number " + v.num.String(), Cause: err})
	}
	return Succeed(f)
}

// AsArray views v as its elements, or fails with type_mismatch. The returned
// slice is a copy; mutating it does not affect v.
func (v Value) AsArray() Result[[]Value] {
	if v.kind != KindArray {
		return Fail[[]Value](Error{Code: CodeTypeMismatch, Expected: "array", Actual: v.kind.String()})
	}
	out := make([]Value, len(v.arr))
	copy(out, v.arr)
	return Succeed(out)
}

// AsObject views v as its members, or fails with type_mismatch. The returned
// map is a copy.
func (v Value) AsObject() Result[map[string]Value] {
	if v.kind != KindObject {
		return Fail[map[string]Value](Error{Code: CodeTypeMismatch, Expected: "object", Actual: v.kind.String()})
	}
	out := make(map[string]Value, len(v.obj))
	for k, m := range v.obj {
		out[k] = m
	}
	return Succeed(out)
}

// Field returns the member named name. The second result is false when v is
// not an object or the key is absent; use the dsl package when the two cases
// must produce distinct errors.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	f, ok := v.obj[name]
	return f, ok
}

// Index returns the i-th element. The second result is false when v is not an
// array or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Equal reports deep structural equality. Numbers compare by literal, so
// Int(1) and Float(1) are equal ("1" both) while Number("1.0") and
// Number("1") are not.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, ev := range v.obj {
			ov, ok := o.obj[k]
			if !ok || !ev.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// At resolves a Path against v. The failure names the first segment that
// cannot be resolved: wrong_container points at the non-container value,
// missing_key and missing_index include the unresolved segment.
func (v Value) At(p Path) Result[Value] {
	cur := v
	for i, s := range p {
		if name, ok := s.Key(); ok {
			if cur.kind != KindObject {
				return Fail[Value](Error{Path: clonePath(p[:i]), Code: CodeWrongContainer, Expected: "object", Actual: cur.kind.String()})
			}
			next, present := cur.obj[name]
			if !present {
				return Fail[Value](Error{Path: clonePath(p[:i+1]), Code: CodeMissingKey, Expected: "value", Actual: "absent"})
			}
			cur = next
			continue
		}
		idx, _ := s.Index()
		if cur.kind != KindArray {
			return Fail[Value](Error{Path: clonePath(p[:i]), Code: CodeWrongContainer, Expected: "array", Actual: cur.kind.String()})
		}
		if idx < 0 || idx >= len(cur.arr) {
			return Fail[Value](Error{Path: clonePath(p[:i+1]), Code: CodeMissingIndex, Expected: "value", Actual: "absent"})
		}
		cur = cur.arr[idx]
	}
	return Succeed(cur)
}

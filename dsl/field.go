package dsl

import (
	decaf "github.com/norelock/decaf"
)

// Field decodes the member name of an object with d. Decoding fails with
// wrong_container when the value is not an object and with missing_key when
// the member is absent; failures inside d are reported at /name/....
func Field[T any](name string, d decaf.Decoder[T]) decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(v decaf.Value) decaf.Result[T] {
		if v.Kind() != decaf.KindObject {
			return decaf.FailWith[T](wrongContainer("object", v))
		}
		sub, ok := v.Field(name)
		if !ok {
			return decaf.Fail[T](missingKey(name))
		}
		return prefixKey(d.Decode(sub), name)
	})
}

// OptionalField decodes the member name of an object with d, yielding nil
// when the member is absent or null. A present non-null member still has to
// match d: optionality forgives absence, not the wrong shape.
func OptionalField[T any](name string, d decaf.Decoder[T]) decaf.Decoder[*T] {
	return decaf.DecoderFunc[*T](func(v decaf.Value) decaf.Result[*T] {
		if v.Kind() != decaf.KindObject {
			return decaf.FailWith[*T](wrongContainer("object", v))
		}
		sub, ok := v.Field(name)
		if !ok || sub.IsNull() {
			return decaf.Succeed[*T](nil)
		}
		r := d.Decode(sub)
		val, ok := r.Get()
		if !ok {
			return decaf.FailWith[*T](r.Err().PrefixKey(name))
		}
		return decaf.Succeed(&val)
	})
}

// OptionalFieldOr is OptionalField with a default instead of a nil pointer:
// absent and null both yield def.
func OptionalFieldOr[T any](name string, d decaf.Decoder[T], def T) decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(v decaf.Value) decaf.Result[T] {
		if v.Kind() != decaf.KindObject {
			return decaf.FailWith[T](wrongContainer("object", v))
		}
		sub, ok := v.Field(name)
		if !ok || sub.IsNull() {
			return decaf.Succeed(def)
		}
		return prefixKey(d.Decode(sub), name)
	})
}

// Index decodes element i of an array with d. Decoding fails with
// wrong_container when the value is not an array and with missing_index when
// i is out of range; failures inside d are reported at /i/....
func Index[T any](i int, d decaf.Decoder[T]) decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(v decaf.Value) decaf.Result[T] {
		if v.Kind() != decaf.KindArray {
			return decaf.FailWith[T](wrongContainer("array", v))
		}
		sub, ok := v.Index(i)
		if !ok {
			return decaf.Fail[T](missingIndex(i))
		}
		return prefixIndex(d.Decode(sub), i)
	})
}

// At decodes the value reached by following keys from the outside in, so
// At([]string{"a", "b"}, d) is Field("a", Field("b", d)). Every step is
// required.
func At[T any](keys []string, d decaf.Decoder[T]) decaf.Decoder[T] {
	for i := len(keys) - 1; i >= 0; i-- {
		d = Field(keys[i], d)
	}
	return d
}

func wrongContainer(expected string, v decaf.Value) decaf.Errors {
	return decaf.Errors{{
		Code:     decaf.CodeWrongContainer,
		Expected: expected,
		Actual:   v.Kind().String(),
	}}
}

func missingKey(name string) decaf.Error {
	return decaf.Error{
		Path:     decaf.Path{decaf.Key(name)},
		Code:     decaf.CodeMissingKey,
		Expected: "value",
		Actual:   "absent",
	}
}

func missingIndex(i int) decaf.Error {
	return decaf.Error{
		Path:     decaf.Path{decaf.Index(i)},
		Code:     decaf.CodeMissingIndex,
		Expected: "value",
		Actual:   "absent",
	}
}

func prefixKey[T any](r decaf.Result[T], name string) decaf.Result[T] {
	if r.Ok() {
		return r
	}
	return decaf.FailWith[T](r.Err().PrefixKey(name))
}

func prefixIndex[T any](r decaf.Result[T], i int) decaf.Result[T] {
	if r.Ok() {
		return r
	}
	return decaf.FailWith[T](r.Err().PrefixIndex(i))
}

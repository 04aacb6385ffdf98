package dsl

import (
	"encoding/json"

	decaf "github.com/norelock/decaf"
)

// String decodes a string value.
func String() decaf.Decoder[string] {
	return decaf.DecoderFunc[string](func(v decaf.Value) decaf.Result[string] {
		return v.AsString()
	})
}

// Bool decodes a boolean value.
func Bool() decaf.Decoder[bool] {
	return decaf.DecoderFunc[bool](func(v decaf.Value) decaf.Result[bool] {
		return v.AsBool()
	})
}

// Int decodes a number as int64. Floating-point literals are accepted when
// they denote a whole number within the int64 range, so 2.0 and 1e3 decode
// while 1.5 is a type_mismatch.
func Int() decaf.Decoder[int64] {
	return decaf.DecoderFunc[int64](func(v decaf.Value) decaf.Result[int64] {
		return v.AsInt()
	})
}

// Float decodes a number as float64.
func Float() decaf.Decoder[float64] {
	return decaf.DecoderFunc[float64](func(v decaf.Value) decaf.Result[float64] {
		return v.AsFloat()
	})
}

// Number decodes a number without converting it, preserving the source
// literal exactly as it appeared in the input.
func Number() decaf.Decoder[json.Number] {
	return decaf.DecoderFunc[json.Number](func(v decaf.Value) decaf.Result[json.Number] {
		return v.AsNumber()
	})
}

// Null succeeds with replacement when the value is null and fails with
// type_mismatch otherwise. Combine with OneOf to give null a concrete
// meaning inside a larger decoder.
func Null[T any](replacement T) decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(v decaf.Value) decaf.Result[T] {
		if !v.IsNull() {
			return decaf.Fail[T](decaf.Error{
				Code:     decaf.CodeTypeMismatch,
				Expected: "null",
				Actual:   v.Kind().String(),
			})
		}
		return decaf.Succeed(replacement)
	})
}

// StringOf decodes a string value into a named string type.
func StringOf[T ~string]() decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(v decaf.Value) decaf.Result[T] {
		return decaf.Map(v.AsString(), func(s string) T { return T(s) })
	})
}

// BoolOf decodes a boolean value into a named bool type.
func BoolOf[T ~bool]() decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(v decaf.Value) decaf.Result[T] {
		return decaf.Map(v.AsBool(), func(b bool) T { return T(b) })
	})
}

// IntOf decodes an integral number into a named int64 type.
func IntOf[T ~int64]() decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(v decaf.Value) decaf.Result[T] {
		return decaf.Map(v.AsInt(), func(n int64) T { return T(n) })
	})
}

// FloatOf decodes a number into a named float64 type.
func FloatOf[T ~float64]() decaf.Decoder[T] {
	return decaf.DecoderFunc[T](func(v decaf.Value) decaf.Result[T] {
		return decaf.Map(v.AsFloat(), func(f float64) T { return T(f) })
	})
}

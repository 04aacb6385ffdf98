// Package dsl provides the combinators that build decaf decoders.
//
// Overview
//
//   - Primitives (String, Bool, Int, Float, Number) read a single scalar.
//   - Traversal (Field, OptionalField, Index, At) walks into containers and
//     qualifies failures with the path it followed.
//   - Collections (Array, Dict) apply an element decoder across a container.
//   - Composition (MapN, AndThen, OneOf, Lazy) assembles record, union and
//     recursive decoders out of smaller ones.
//
// Decoders are plain values. Build them once, reuse them everywhere, share
// them across goroutines; decoding never mutates the decoder or the input.
//
// A record decoder lifts a constructor over its field decoders:
//
//	type User struct {
//		Name string
//		Age  int64
//	}
//
//	userDec := dsl.Map2(
//		dsl.Field("name", dsl.String()),
//		dsl.Field("age", dsl.Int()),
//		func(name string, age int64) User { return User{Name: name, Age: age} },
//	)
//
//	v, err := decaf.ParseJSON([]byte(`{"name":"ada","age":36}`))
//	if err != nil {
//		// malformed input text
//	}
//	u, derr := decaf.Decode(userDec, v)
//
// Failures carry the path from the decoded root to the offending value, so
// dsl.Field("user", dsl.Field("age", dsl.Int())) reports a string at that
// position as type_mismatch at /user/age.
package dsl

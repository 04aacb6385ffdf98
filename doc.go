package decaf

// Package decaf turns loosely-typed documents into typed Go values through
// composable decoders:
//
// - An immutable Value model covering null, bool, number, string, array, object
// - A Result/Errors pair carrying JSON Pointer paths to every failure
// - A Decoder[T] contract plus combinators under dsl/ for records, options,
//   collections, unions and recursion
// - Pluggable input sources: encoding/json by default, goccy/go-json behind the
//   gojson build tag, YAML and CBOR under source/
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place combinators under dsl/, codecs under codec/, and the CLI under cmd/decaf.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := decaf.ParseJSON(data)        // malformed text -> *ParseError
//	u, err := decaf.Decode(userDec, v)     // shape mismatch -> Errors
//
//	v, err := decaf.ParseFrom(decaf.JSONReader(r), decaf.ParseOpt{OnDuplicate: decaf.DupReject})
//	u, err := decaf.DecodeFrom(userDec, decaf.JSONBytes(data))

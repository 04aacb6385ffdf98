package decaf

// Decoder converts a Value into a typed result. Implementations are pure,
// stateless and safe for concurrent use on shared Values; a Decoder never
// panics on any well-formed Value.
type Decoder[T any] interface {
	Decode(v Value) Result[T]
}

// DecoderFunc adapts an ordinary function to the Decoder interface.
type DecoderFunc[T any] func(Value) Result[T]

// Decode calls f(v).
func (f DecoderFunc[T]) Decode(v Value) Result[T] { return f(v) }

// Codec pairs a Decoder with the inverse encoding so values can round-trip
// through their wire shape.
type Codec[T any] interface {
	Decoder[T]
	Encode(v T) Value
}

// Decode runs d against v and splits the outcome into Go's conventional
// value/error pair. A non-nil error is always an Errors value.
func Decode[T any](d Decoder[T], v Value) (T, error) {
	if d == nil {
		var zero T
		return zero, Errors{{Code: CodeCustom, Expected: "decoder", Actual: "nil"}}
	}
	return d.Decode(v).Unpack()
}

// DecodeFrom parses src into a Value and then runs d against it. Malformed
// input surfaces as a *ParseError, decode failures as Errors; the two
// domains never mix.
func DecodeFrom[T any](d Decoder[T], src Source, opts ...ParseOpt) (T, error) {
	v, err := ParseFrom(src, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode(d, v)
}

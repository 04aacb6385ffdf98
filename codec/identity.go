package codec

import (
	decaf "github.com/norelock/decaf"
)

// Identity converts a Value to itself in both directions. It is the seed for
// building richer codecs and the way to thread an already-shaped Value
// through an API that wants a Codec.
func Identity() decaf.Codec[decaf.Value] { return identityCodec{} }

type identityCodec struct{}

func (identityCodec) Decode(v decaf.Value) decaf.Result[decaf.Value] {
	return decaf.Succeed(v)
}

func (identityCodec) Encode(v decaf.Value) decaf.Value { return v }

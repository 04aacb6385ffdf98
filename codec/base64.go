package codec

import (
	"encoding/base64"

	decaf "github.com/norelock/decaf"
)

// Base64Bytes converts between standard-encoding base64 strings and byte
// slices. This matches the binary representation the yaml and cbor sources
// produce for raw bytes.
func Base64Bytes() decaf.Codec[[]byte] { return base64Codec{} }

type base64Codec struct{}

func (base64Codec) Decode(v decaf.Value) decaf.Result[[]byte] {
	rs := v.AsString()
	s, ok := rs.Get()
	if !ok {
		return decaf.FailWith[[]byte](rs.Err())
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return decaf.Fail[[]byte](decaf.Error{
			Code:     decaf.CodeCustom,
			Expected: "a base64 string",
			Actual:   "malformed string",
			Cause:    err,
		})
	}
	return decaf.Succeed(b)
}

func (base64Codec) Encode(b []byte) decaf.Value {
	return decaf.String(base64.StdEncoding.EncodeToString(b))
}

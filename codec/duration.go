package codec

import (
	"time"

	decaf "github.com/norelock/decaf"
)

// Duration converts between Go duration strings such as "1h30m" and
// time.Duration. Encoding uses time.Duration.String, which always
// re-decodes to the same duration.
func Duration() decaf.Codec[time.Duration] { return durationCodec{} }

type durationCodec struct{}

func (durationCodec) Decode(v decaf.Value) decaf.Result[time.Duration] {
	rs := v.AsString()
	s, ok := rs.Get()
	if !ok {
		return decaf.FailWith[time.Duration](rs.Err())
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return decaf.Fail[time.Duration](decaf.Error{
			Code:     decaf.CodeCustom,
			Expected: "a duration string",
			Actual:   "malformed string",
			Cause:    err,
		})
	}
	return decaf.Succeed(d)
}

func (durationCodec) Encode(d time.Duration) decaf.Value {
	return decaf.String(d.String())
}

package codec

import (
	"time"

	decaf "github.com/norelock/decaf"
)

// TimeRFC3339 converts between RFC 3339 strings and time.Time. Decoding
// accepts fractional seconds; encoding normalizes to UTC with trailing zeros
// trimmed, so the encoded form is canonical rather than byte-identical to
// the input.
func TimeRFC3339() decaf.Codec[time.Time] { return timeCodec{} }

type timeCodec struct{}

func (timeCodec) Decode(v decaf.Value) decaf.Result[time.Time] {
	rs := v.AsString()
	s, ok := rs.Get()
	if !ok {
		return decaf.FailWith[time.Time](rs.Err())
	}
	t, err := parseRFC3339(s)
	if err != nil {
		return decaf.Fail[time.Time](decaf.Error{
			Code:     decaf.CodeCustom,
			Expected: "an RFC 3339 timestamp",
			Actual:   "malformed string",
			Cause:    err,
		})
	}
	return decaf.Succeed(t)
}

func (timeCodec) Encode(t time.Time) decaf.Value {
	return decaf.String(formatRFC3339Canonical(t))
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

package codec

import (
	"testing"
	"time"

	decaf "github.com/norelock/decaf"
)

func TestTimeRFC3339_Decode(t *testing.T) {
	c := TimeRFC3339()

	r := c.Decode(decaf.String("2025-01-01T00:00:00Z"))
	got, ok := r.Get()
	if !ok {
		t.Fatalf("decode err: %v", r.Err())
	}
	if !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}
}

func TestTimeRFC3339_Decode_Fractional(t *testing.T) {
	c := TimeRFC3339()

	r := c.Decode(decaf.String("2025-01-01T00:00:00.250Z"))
	got, ok := r.Get()
	if !ok {
		t.Fatalf("decode err: %v", r.Err())
	}
	if got.Nanosecond() != 250_000_000 {
		t.Fatalf("unexpected fraction: %v", got)
	}
}

func TestTimeRFC3339_Roundtrip(t *testing.T) {
	c := TimeRFC3339()

	in := "2025-01-01T00:00:00Z"
	r := c.Decode(decaf.String(in))
	got, ok := r.Get()
	if !ok {
		t.Fatalf("decode err: %v", r.Err())
	}
	out := c.Encode(got)
	s, ok := out.AsString().Get()
	if !ok {
		t.Fatalf("encode produced %v", out.Kind())
	}
	if s != in {
		t.Fatalf("roundtrip mismatch: %s != %s", s, in)
	}
}

func TestTimeRFC3339_Encode_NormalizesToUTC(t *testing.T) {
	c := TimeRFC3339()

	loc := time.FixedZone("JST", 9*3600)
	out := c.Encode(time.Date(2025, 1, 1, 9, 0, 0, 0, loc))
	s, _ := out.AsString().Get()
	if s != "2025-01-01T00:00:00Z" {
		t.Fatalf("unexpected canonical form: %q", s)
	}
}

func TestTimeRFC3339_Decode_Malformed(t *testing.T) {
	c := TimeRFC3339()

	r := c.Decode(decaf.String("not a time"))
	if r.Ok() {
		t.Fatalf("expected failure for malformed timestamp")
	}
	errs := r.Err()
	if len(errs) != 1 || errs[0].Code != decaf.CodeCustom {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if errs[0].Cause == nil {
		t.Fatalf("expected cause to carry the time parse error")
	}
}

func TestTimeRFC3339_Decode_WrongKind(t *testing.T) {
	c := TimeRFC3339()

	r := c.Decode(decaf.Int(42))
	if r.Ok() {
		t.Fatalf("expected failure for non-string value")
	}
	errs := r.Err()
	if len(errs) != 1 || errs[0].Code != decaf.CodeTypeMismatch {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

package codec

import (
	"bytes"
	"testing"

	decaf "github.com/norelock/decaf"
)

func TestBase64Bytes_Roundtrip(t *testing.T) {
	c := Base64Bytes()

	in := []byte{0x00, 0x01, 0xfe, 0xff}
	r := c.Decode(c.Encode(in))
	got, ok := r.Get()
	if !ok {
		t.Fatalf("roundtrip decode err: %v", r.Err())
	}
	if !bytes.Equal(got, in) {
		t.Fatalf("roundtrip mismatch: %x != %x", got, in)
	}
}

func TestBase64Bytes_Decode(t *testing.T) {
	c := Base64Bytes()

	r := c.Decode(decaf.String("aGVsbG8="))
	got, ok := r.Get()
	if !ok {
		t.Fatalf("decode err: %v", r.Err())
	}
	if string(got) != "hello" {
		t.Fatalf("unexpected bytes: %q", got)
	}
}

func TestBase64Bytes_Decode_Malformed(t *testing.T) {
	c := Base64Bytes()

	r := c.Decode(decaf.String("@@@"))
	if r.Ok() {
		t.Fatalf("expected failure for malformed base64")
	}
	if errs := r.Err(); errs[0].Code != decaf.CodeCustom {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

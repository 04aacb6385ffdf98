//go:build gojson

package gojson_test

import (
	"errors"
	"testing"

	decaf "github.com/norelock/decaf"
	drv "github.com/norelock/decaf/source/gojson"
)

func init() { decaf.SetJSONDriver(drv.Driver()) }

func TestDriverName(t *testing.T) {
	if got := decaf.CurrentJSONDriverName(); got != "go-json" {
		t.Fatalf("driver name = %q, want go-json", got)
	}
}

func TestParseThroughDriver(t *testing.T) {
	v, err := decaf.ParseJSON([]byte(`{"a":[1,"s"],"ok":true}`))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if got, ok := v.At(decaf.Path{decaf.Key("a"), decaf.Index(0)}).Get(); !ok || !got.Equal(decaf.Int(1)) {
		t.Fatalf("at /a/0 = %v, want 1", got)
	}
	if got, ok := v.At(decaf.Path{decaf.Key("ok")}).Get(); !ok || !got.Equal(decaf.Bool(true)) {
		t.Fatalf("at /ok = %v, want true", got)
	}
}

func TestNumberLiteralsSurvive(t *testing.T) {
	v, err := decaf.ParseJSON([]byte(`{"exp":1e3,"neat":0.10}`))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	n, ok := v.At(decaf.Path{decaf.Key("exp")}).Get()
	if !ok {
		t.Fatalf("missing /exp")
	}
	if lit, ok := n.AsNumber().Get(); !ok || string(lit) != "1e3" {
		t.Fatalf("literal = %q, want 1e3", lit)
	}
}

func TestMalformedInputIsParseError(t *testing.T) {
	_, err := decaf.ParseJSON([]byte(`{"broken`))
	if err == nil {
		t.Fatalf("expected error for malformed input")
	}
	var pe *decaf.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}

func TestDuplicatePolicyThroughDriver(t *testing.T) {
	_, err := decaf.ParseJSON([]byte(`{"a":1,"a":2}`), decaf.ParseOpt{OnDuplicate: decaf.DupReject})
	var pe *decaf.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected duplicate-key parse error, got %v", err)
	}
}

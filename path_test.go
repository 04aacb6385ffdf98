package decaf_test

import (
	"testing"

	decaf "github.com/norelock/decaf"
)

func TestPath_String(t *testing.T) {
	p := decaf.Path{decaf.Key("users"), decaf.Index(2), decaf.Key("name")}
	if got := p.String(); got != "/users/2/name" {
		t.Fatalf("unexpected pointer: %q", got)
	}
	if got := (decaf.Path{}).String(); got != "" {
		t.Fatalf("expected empty string for root, got %q", got)
	}
}

func TestPath_String_EscapesTokens(t *testing.T) {
	p := decaf.Path{decaf.Key("a/b"), decaf.Key("m~n")}
	if got := p.String(); got != "/a~1b/m~0n" {
		t.Fatalf("unexpected escaping: %q", got)
	}
}

func TestParsePointer_Roundtrip(t *testing.T) {
	for _, ptr := range []string{"", "/a", "/a/0/b", "/a~1b/m~0n", "/"} {
		p, err := decaf.ParsePointer(ptr)
		if err != nil {
			t.Fatalf("parse %q: %v", ptr, err)
		}
		if got := p.String(); got != ptr {
			t.Fatalf("roundtrip mismatch: %q -> %q", ptr, got)
		}
	}
}

func TestParsePointer_IndexTokens(t *testing.T) {
	p, err := decaf.ParsePointer("/xs/0/10")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if i, ok := p[1].Index(); !ok || i != 0 {
		t.Fatalf("expected index 0, got %v ok=%v", i, ok)
	}
	if i, ok := p[2].Index(); !ok || i != 10 {
		t.Fatalf("expected index 10, got %v ok=%v", i, ok)
	}

	// leading zeros are keys per the RFC array grammar
	p, err = decaf.ParsePointer("/01")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if name, ok := p[0].Key(); !ok || name != "01" {
		t.Fatalf("expected key %q, got %q ok=%v", "01", name, ok)
	}
}

func TestParsePointer_Invalid(t *testing.T) {
	for _, ptr := range []string{"a/b", "/a~2b", "/a~"} {
		if _, err := decaf.ParsePointer(ptr); err == nil {
			t.Fatalf("expected error for %q", ptr)
		}
	}
}

func TestPath_Equal(t *testing.T) {
	a := decaf.Path{decaf.Key("a"), decaf.Index(1)}
	b := decaf.Path{decaf.Key("a"), decaf.Index(1)}
	if !a.Equal(b) {
		t.Fatalf("expected equal paths")
	}
	if a.Equal(decaf.Path{decaf.Key("a")}) {
		t.Fatalf("expected inequality on length")
	}
	if a.Equal(decaf.Path{decaf.Key("a"), decaf.Key("1")}) {
		t.Fatalf("expected key and index segments to differ")
	}
}

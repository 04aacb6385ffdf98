package dsl_test

import (
	"testing"

	decaf "github.com/norelock/decaf"
	d "github.com/norelock/decaf/dsl"
)

func mustParse(t *testing.T, js string) decaf.Value {
	t.Helper()
	v, err := decaf.ParseJSON([]byte(js))
	if err != nil {
		t.Fatalf("parse %q: %v", js, err)
	}
	return v
}

func TestField_Nested_PathQualifiesFailure(t *testing.T) {
	v := mustParse(t, `{"a":{"b":1}}`)
	dec := d.Field("a", d.Field("b", d.String()))

	r := dec.Decode(v)
	if r.Ok() {
		t.Fatalf("expected failure for number at /a/b")
	}
	e := r.Err()[0]
	if e.Code != decaf.CodeTypeMismatch || e.Path.String() != "/a/b" {
		t.Fatalf("unexpected error: %+v", e)
	}

	// the same decoder succeeds on the right shape
	v = mustParse(t, `{"a":{"b":"ok"}}`)
	if got, ok := dec.Decode(v).Get(); !ok || got != "ok" {
		t.Fatalf("expected success, got %v ok=%v", got, ok)
	}
}

func TestField_MissingKey(t *testing.T) {
	v := mustParse(t, `{"age":1}`)

	r := d.Field("name", d.String()).Decode(v)
	if r.Ok() {
		t.Fatalf("expected missing_key")
	}
	e := r.Err()[0]
	if e.Code != decaf.CodeMissingKey || e.Path.String() != "/name" {
		t.Fatalf("unexpected error: %+v", e)
	}
	if e.Actual != "absent" {
		t.Fatalf("unexpected detail: %+v", e)
	}
}

func TestField_WrongContainer(t *testing.T) {
	r := d.Field("name", d.String()).Decode(decaf.Array())
	if r.Ok() {
		t.Fatalf("expected wrong_container")
	}
	e := r.Err()[0]
	if e.Code != decaf.CodeWrongContainer || len(e.Path) != 0 {
		t.Fatalf("unexpected error: %+v", e)
	}
	if e.Expected != "object" || e.Actual != "array" {
		t.Fatalf("unexpected detail: %+v", e)
	}
}

func TestOptionalField_AbsenceAndNull(t *testing.T) {
	dec := d.OptionalField("nickname", d.String())

	// absent member decodes to nil
	got, ok := dec.Decode(mustParse(t, `{}`)).Get()
	if !ok || got != nil {
		t.Fatalf("expected nil for absent member, got %v ok=%v", got, ok)
	}

	// null member decodes to nil as well
	got, ok = dec.Decode(mustParse(t, `{"nickname":null}`)).Get()
	if !ok || got != nil {
		t.Fatalf("expected nil for null member, got %v ok=%v", got, ok)
	}

	// present member decodes through
	got, ok = dec.Decode(mustParse(t, `{"nickname":"kit"}`)).Get()
	if !ok || got == nil || *got != "kit" {
		t.Fatalf("expected kit, got %v ok=%v", got, ok)
	}
}

func TestOptionalField_WrongTypeStillFails(t *testing.T) {
	dec := d.OptionalField("nickname", d.String())

	r := dec.Decode(mustParse(t, `{"nickname":42}`))
	if r.Ok() {
		t.Fatalf("optionality must not forgive the wrong shape")
	}
	e := r.Err()[0]
	if e.Code != decaf.CodeTypeMismatch || e.Path.String() != "/nickname" {
		t.Fatalf("unexpected error: %+v", e)
	}
}

func TestOptionalFieldOr_Default(t *testing.T) {
	dec := d.OptionalFieldOr("limit", d.Int(), 10)

	if got, _ := dec.Decode(mustParse(t, `{}`)).Get(); got != 10 {
		t.Fatalf("expected default for absent member, got %v", got)
	}
	if got, _ := dec.Decode(mustParse(t, `{"limit":null}`)).Get(); got != 10 {
		t.Fatalf("expected default for null member, got %v", got)
	}
	if got, _ := dec.Decode(mustParse(t, `{"limit":3}`)).Get(); got != 3 {
		t.Fatalf("expected present member to win, got %v", got)
	}
	if dec.Decode(mustParse(t, `{"limit":"all"}`)).Ok() {
		t.Fatalf("expected wrong shape to fail")
	}
}

func TestIndex_Basic(t *testing.T) {
	v := mustParse(t, `["a","b"]`)

	if got, ok := d.Index(1, d.String()).Decode(v).Get(); !ok || got != "b" {
		t.Fatalf("expected b, got %v ok=%v", got, ok)
	}

	r := d.Index(5, d.String()).Decode(v)
	if r.Ok() {
		t.Fatalf("expected missing_index")
	}
	e := r.Err()[0]
	if e.Code != decaf.CodeMissingIndex || e.Path.String() != "/5" {
		t.Fatalf("unexpected error: %+v", e)
	}

	r = d.Index(0, d.String()).Decode(decaf.Object(nil))
	if r.Ok() || r.Err()[0].Code != decaf.CodeWrongContainer {
		t.Fatalf("expected wrong_container, got %v", r.Err())
	}

	// element failures carry the index
	ri := d.Index(1, d.Int()).Decode(v)
	if ri.Ok() {
		t.Fatalf("expected element failure")
	}
	if got := ri.Err()[0].Path.String(); got != "/1" {
		t.Fatalf("expected /1, got %s", got)
	}
}

func TestAt_ChainsRequiredKeys(t *testing.T) {
	v := mustParse(t, `{"a":{"b":{"c":"deep"}}}`)

	dec := d.At([]string{"a", "b", "c"}, d.String())
	if got, ok := dec.Decode(v).Get(); !ok || got != "deep" {
		t.Fatalf("expected deep, got %v ok=%v", got, ok)
	}

	// a miss in the middle names the full prefix
	r := d.At([]string{"a", "x", "c"}, d.String()).Decode(v)
	if r.Ok() {
		t.Fatalf("expected missing_key")
	}
	e := r.Err()[0]
	if e.Code != decaf.CodeMissingKey || e.Path.String() != "/a/x" {
		t.Fatalf("unexpected error: %+v", e)
	}

	// zero keys decode the value itself
	if got, ok := d.At(nil, d.Raw()).Decode(v).Get(); !ok || !got.Equal(v) {
		t.Fatalf("expected identity for empty chain")
	}
}

package decaf_test

import (
	"encoding/json"
	"math"
	"testing"

	decaf "github.com/norelock/decaf"
)

func TestMarshalJSON_SortedKeys(t *testing.T) {
	v := decaf.Object(map[string]decaf.Value{
		"b": decaf.Int(2),
		"a": decaf.Int(1),
		"c": decaf.Array(decaf.Null(), decaf.Bool(false)),
	})
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	if string(b) != `{"a":1,"b":2,"c":[null,false]}` {
		t.Fatalf("unexpected output: %s", b)
	}
}

func TestMarshalJSON_PreservesNumberLiterals(t *testing.T) {
	v := mustParse(t, `{"big":12345678901234567890,"exp":1e3,"neat":0.10}`)
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	if string(b) != `{"big":12345678901234567890,"exp":1e3,"neat":0.10}` {
		t.Fatalf("expected literals preserved, got %s", b)
	}
}

func TestMarshalJSON_RejectsInvalidNumber(t *testing.T) {
	if _, err := json.Marshal(decaf.Number(json.Number("nope"))); err == nil {
		t.Fatalf("expected error for invalid number literal")
	}
}

func TestParseMarshalRoundtrip(t *testing.T) {
	const doc = `{"user":{"name":"ada","tags":["x","y"],"extra":null},"count":3}`
	v := mustParse(t, doc)
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	again := mustParse(t, string(b))
	if !v.Equal(again) {
		t.Fatalf("roundtrip changed the value:\n  first:  %s\n  second: %s", v, again)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var v decaf.Value
	if err := json.Unmarshal([]byte(`{"a":[1,2]}`), &v); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	got, ok := v.At(decaf.Path{decaf.Key("a"), decaf.Index(1)}).Get()
	if !ok || !got.Equal(decaf.Int(2)) {
		t.Fatalf("unexpected value: %v ok=%v", got, ok)
	}

	if err := json.Unmarshal([]byte(`{"broken"`), &v); err == nil {
		t.Fatalf("expected error for malformed input")
	}
}

func TestValueString_Debug(t *testing.T) {
	v := decaf.Array(decaf.String("x"), decaf.Int(1))
	if got := v.String(); got != `["x",1]` {
		t.Fatalf("unexpected String: %q", got)
	}
}

func TestValueOf_Conversions(t *testing.T) {
	v, err := decaf.ValueOf(map[string]any{
		"n":    int32(5),
		"f":    2.5,
		"s":    "str",
		"ok":   true,
		"null": nil,
		"list": []any{json.Number("7"), uint64(18446744073709551615)},
	})
	if err != nil {
		t.Fatalf("ValueOf err: %v", err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	if string(b) != `{"f":2.5,"list":[7,18446744073709551615],"n":5,"null":null,"ok":true,"s":"str"}` {
		t.Fatalf("unexpected output: %s", b)
	}
}

func TestValueOf_RejectsNonFiniteAndUnknown(t *testing.T) {
	if _, err := decaf.ValueOf(map[string]any{"bad": math.Inf(1)}); err == nil {
		t.Fatalf("expected error for +Inf")
	}
	if _, err := decaf.ValueOf(struct{ X int }{1}); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}

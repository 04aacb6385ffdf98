//go:build jsonv2

// Package jsonv2 provides a driver backed by the experimental
// encoding/json/v2, enabled with the jsonv2 build tag. Building it also
// requires GOEXPERIMENT=jsonv2.
package jsonv2

import (
	v2 "encoding/json/v2"
	"io"
	"sort"
	"strconv"

	decaf "github.com/norelock/decaf"
)

// Driver returns a decaf.JSONDriver backed by encoding/json/v2.
func Driver() decaf.JSONDriver { return driverV2{} }

type driverV2 struct{}

func (driverV2) NewReader(r io.Reader) decaf.Source {
	data, err := io.ReadAll(r)
	if err != nil {
		return &v2Source{err: err}
	}
	return newSource(data)
}

func (driverV2) NewBytes(b []byte) decaf.Source { return newSource(b) }
func (driverV2) Name() string                   { return "encoding/json/v2" }

// v2Source replays tokens materialized from a fully decoded tree. The v2
// streaming API is still in flux, so the driver decodes first and tokenizes
// after.
type v2Source struct {
	tokens []decaf.Token
	idx    int
	err    error
}

func newSource(b []byte) decaf.Source {
	var raw any
	if err := v2.Unmarshal(b, &raw); err != nil {
		return &v2Source{err: err}
	}
	return &v2Source{tokens: appendTokens(make([]decaf.Token, 0, 64), raw)}
}

func (s *v2Source) NextToken() (decaf.Token, error) {
	if s.err != nil {
		return decaf.Token{}, s.err
	}
	if s.idx >= len(s.tokens) {
		return decaf.Token{}, io.EOF
	}
	t := s.tokens[s.idx]
	s.idx++
	return t, nil
}

// Location always reports -1: offsets are lost in the materialization step.
func (s *v2Source) Location() int64 { return -1 }

func appendTokens(out []decaf.Token, raw any) []decaf.Token {
	switch x := raw.(type) {
	case map[string]any:
		out = append(out, tok(decaf.TokenBeginObject))
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t := tok(decaf.TokenKey)
			t.String = k
			out = append(out, t)
			out = appendTokens(out, x[k])
		}
		out = append(out, tok(decaf.TokenEndObject))
	case []any:
		out = append(out, tok(decaf.TokenBeginArray))
		for _, e := range x {
			out = appendTokens(out, e)
		}
		out = append(out, tok(decaf.TokenEndArray))
	case string:
		t := tok(decaf.TokenString)
		t.String = x
		out = append(out, t)
	case bool:
		t := tok(decaf.TokenBool)
		t.Bool = x
		out = append(out, t)
	case float64:
		t := tok(decaf.TokenNumber)
		t.Number = strconv.FormatFloat(x, 'g', -1, 64)
		out = append(out, t)
	case int64:
		t := tok(decaf.TokenNumber)
		t.Number = strconv.FormatInt(x, 10)
		out = append(out, t)
	case uint64:
		t := tok(decaf.TokenNumber)
		t.Number = strconv.FormatUint(x, 10)
		out = append(out, t)
	default:
		out = append(out, tok(decaf.TokenNull))
	}
	return out
}

func tok(k decaf.TokenKind) decaf.Token { return decaf.Token{Kind: k, Offset: -1} }

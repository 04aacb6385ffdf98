//go:build gojson

// Package gojson provides a goccy/go-json backed driver, enabled with the
// gojson build tag.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	decaf "github.com/norelock/decaf"
	eng "github.com/norelock/decaf/internal/engine"
)

// Driver returns a decaf.JSONDriver backed by goccy/go-json.
func Driver() decaf.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) decaf.Source { return decaf.FromEngine(NewReader(r)) }
func (driverGoJSON) NewBytes(b []byte) decaf.Source     { return decaf.FromEngine(NewBytes(b)) }
func (driverGoJSON) Name() string                       { return "go-json" }

type frameKind int

const (
	frameObject frameKind = iota
	frameArray
)

type frame struct {
	kind         frameKind
	expectingKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
}

// NewReader wraps an io.Reader into a token source backed by go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into a token source backed by go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.push(frame{kind: frameObject, expectingKey: true})
			return tokOf(eng.KindBeginObject), nil
		case '}':
			s.pop()
			return tokOf(eng.KindEndObject), nil
		case '[':
			s.push(frame{kind: frameArray})
			return tokOf(eng.KindBeginArray), nil
		default: // ']'
			s.pop()
			return tokOf(eng.KindEndArray), nil
		}
	case string:
		if s.keyExpected() {
			s.markKeyRead()
			t := tokOf(eng.KindKey)
			t.String = v
			return t, nil
		}
		s.markValueRead()
		t := tokOf(eng.KindString)
		t.String = v
		return t, nil
	case bool:
		s.markValueRead()
		t := tokOf(eng.KindBool)
		t.Bool = v
		return t, nil
	case j.Number:
		s.markValueRead()
		t := tokOf(eng.KindNumber)
		t.Number = string(v)
		return t, nil
	case float64:
		s.markValueRead()
		t := tokOf(eng.KindNumber)
		t.Number = strconv.FormatFloat(v, 'g', -1, 64)
		return t, nil
	}
	s.markValueRead()
	return tokOf(eng.KindNull), nil
}

// Location always reports -1: go-json's streaming decoder does not expose
// input offsets.
func (s *source) Location() int64 { return -1 }

func (s *source) push(f frame) { s.stack = append(s.stack, f) }

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.markValueRead()
}

func (s *source) keyExpected() bool {
	n := len(s.stack)
	return n > 0 && s.stack[n-1].kind == frameObject && s.stack[n-1].expectingKey
}

func (s *source) markKeyRead() {
	if n := len(s.stack); n > 0 {
		s.stack[n-1].expectingKey = false
	}
}

func (s *source) markValueRead() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == frameObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func tokOf(k eng.Kind) eng.Token { return eng.Token{Kind: k, Offset: -1} }

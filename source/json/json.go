// Package json implements the default token source over encoding/json.
package json

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	eng "github.com/norelock/decaf/internal/engine"
)

type frameKind int

const (
	frameObject frameKind = iota
	frameArray
)

// frame tracks whether the next string token inside an object is a key.
type frame struct {
	kind         frameKind
	expectingKey bool
}

type source struct {
	dec        *json.Decoder
	stack      []frame
	lastOffset int64
}

// NewReader wraps an io.Reader into a token source for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into a token source for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.push(frame{kind: frameObject, expectingKey: true})
			return s.tok(eng.KindBeginObject), nil
		case '}':
			s.pop()
			return s.tok(eng.KindEndObject), nil
		case '[':
			s.push(frame{kind: frameArray})
			return s.tok(eng.KindBeginArray), nil
		default: // ']'
			s.pop()
			return s.tok(eng.KindEndArray), nil
		}
	case string:
		if s.keyExpected() {
			s.markKeyRead()
			t := s.tok(eng.KindKey)
			t.String = v
			return t, nil
		}
		s.markValueRead()
		t := s.tok(eng.KindString)
		t.String = v
		return t, nil
	case bool:
		s.markValueRead()
		t := s.tok(eng.KindBool)
		t.Bool = v
		return t, nil
	case json.Number:
		s.markValueRead()
		t := s.tok(eng.KindNumber)
		t.Number = string(v)
		return t, nil
	case float64:
		// UseNumber normally prevents this shape; handled for completeness.
		s.markValueRead()
		t := s.tok(eng.KindNumber)
		t.Number = strconv.FormatFloat(v, 'g', -1, 64)
		return t, nil
	}
	s.markValueRead()
	return s.tok(eng.KindNull), nil
}

func (s *source) Location() int64 { return s.lastOffset }

func (s *source) push(f frame) { s.stack = append(s.stack, f) }

// pop closes the current container and marks a completed value in the parent.
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

// markValueRead flips the enclosing object back to expecting a key once a
// member value completes.
func (s *source) markValueRead() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == frameObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *source) tok(k eng.Kind) eng.Token { return eng.Token{Kind: k, Offset: s.lastOffset} }

// Package engine builds generic value trees from streaming token sources,
// enforcing input limits along the way.
package engine

import (
	"encoding/json"
	"fmt"
	"io"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is the minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// Limits controls enforcement while building.
type Limits struct {
	MaxDepth         int   // <= 0 disables the cap.
	MaxBytes         int64 // <= 0 disables the cap.
	RejectDuplicates bool  // Duplicate object keys become errors.
}

// Error reports a malformed token stream or a limit violation, with the byte
// offset when known (-1 otherwise).
type Error struct {
	Offset int64
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

// BuildAny drains exactly one value from src into an any tree
// (map[string]any, []any, json.Number, string, bool, nil) under the given
// limits. Trailing tokens are the caller's concern.
func BuildAny(src TokenSource, lim Limits) (any, error) {
	b := &builder{src: src, lim: lim}
	tok, err := b.next()
	if err != nil {
		return nil, b.wrapEOF(err)
	}
	return b.value(tok, 0)
}

type builder struct {
	src TokenSource
	lim Limits
}

func (b *builder) next() (Token, error) {
	tok, err := b.src.NextToken()
	if err != nil {
		return Token{}, err
	}
	if b.lim.MaxBytes > 0 {
		if off := b.src.Location(); off >= 0 && off > b.lim.MaxBytes {
			return Token{}, &Error{Offset: off, Msg: "max bytes exceeded"}
		}
	}
	return tok, nil
}

func (b *builder) value(tok Token, depth int) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return b.object(depth + 1)
	case KindBeginArray:
		return b.array(depth + 1)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, b.errAt("unexpected token")
	}
}

func (b *builder) object(depth int) (any, error) {
	if err := b.checkDepth(depth); err != nil {
		return nil, err
	}
	m := make(map[string]any)
	var seen map[string]struct{}
	if b.lim.RejectDuplicates {
		seen = make(map[string]struct{})
	}
	for {
		tok, err := b.next()
		if err != nil {
			return nil, b.wrapEOF(err)
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, b.errAt("expected object key")
		}
		if seen != nil {
			if _, dup := seen[tok.String]; dup {
				return nil, &Error{Offset: tok.Offset, Msg: fmt.Sprintf("duplicate object key %q", tok.String)}
			}
			seen[tok.String] = struct{}{}
		}
		vt, err := b.next()
		if err != nil {
			return nil, b.wrapEOF(err)
		}
		v, err := b.value(vt, depth)
		if err != nil {
			return nil, err
		}
		// last occurrence wins when duplicates are allowed
		m[tok.String] = v
	}
}

func (b *builder) array(depth int) (any, error) {
	if err := b.checkDepth(depth); err != nil {
		return nil, err
	}
	var arr []any
	for {
		tok, err := b.next()
		if err != nil {
			return nil, b.wrapEOF(err)
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := b.value(tok, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func (b *builder) checkDepth(depth int) error {
	if b.lim.MaxDepth > 0 && depth > b.lim.MaxDepth {
		return b.errAt("max depth exceeded")
	}
	return nil
}

func (b *builder) errAt(msg string) error {
	return &Error{Offset: b.src.Location(), Msg: msg}
}

func (b *builder) wrapEOF(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return b.errAt("unexpected end of input")
	}
	return err
}

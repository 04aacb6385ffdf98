package decaf

import (
	"errors"
	"fmt"
	"io"

	eng "github.com/norelock/decaf/internal/engine"
)

// ParseError reports malformed input or an enforcement violation from the
// text-parsing boundary. It is distinct from Errors: a document that fails to
// parse has no value tree for decode errors to point into.
type ParseError struct {
	Offset int64 // byte offset when known, -1 otherwise
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("decaf: parse: %s at offset %d", e.Msg, e.Offset)
	}
	return "decaf: parse: " + e.Msg
}

// ParseFrom is the primary parsing entry point. It drains src into a Value
// under the given options; the last option wins when several are supplied.
// Trailing data after the first value is an error.
func ParseFrom(src Source, opts ...ParseOpt) (Value, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	maxDepth := opt.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	raw, err := eng.BuildAny(engineTokens(src), eng.Limits{
		MaxDepth:         maxDepth,
		MaxBytes:         opt.MaxBytes,
		RejectDuplicates: opt.OnDuplicate == DupReject,
	})
	if err != nil {
		return Value{}, toParseError(src, err)
	}
	if err := expectEOF(src); err != nil {
		return Value{}, err
	}
	v, err := ValueOf(raw)
	if err != nil {
		// BuildAny only emits convertible shapes; surface a mismatch as a
		// parse failure rather than panicking.
		return Value{}, &ParseError{Offset: src.Location(), Msg: err.Error()}
	}
	return v, nil
}

// ParseJSON parses a single JSON document from a byte slice using the
// registered driver.
func ParseJSON(data []byte, opts ...ParseOpt) (Value, error) {
	return ParseFrom(JSONBytes(data), opts...)
}

// ParseJSONReader parses a single JSON document from r. When MaxBytes is set
// the reader is capped up front so an oversized input fails without being
// fully consumed.
func ParseJSONReader(r io.Reader, opts ...ParseOpt) (Value, error) {
	if len(opts) > 0 && opts[len(opts)-1].MaxBytes > 0 {
		max := opts[len(opts)-1].MaxBytes
		data, err := io.ReadAll(io.LimitReader(r, max+1))
		if err != nil {
			return Value{}, &ParseError{Offset: -1, Msg: err.Error()}
		}
		if int64(len(data)) > max {
			return Value{}, &ParseError{Offset: max, Msg: "max bytes exceeded"}
		}
		return ParseFrom(JSONBytes(data), opts...)
	}
	return ParseFrom(JSONReader(r), opts...)
}

// expectEOF verifies the source is exhausted after the first value.
func expectEOF(src Source) error {
	if _, err := src.NextToken(); err != io.EOF {
		if err != nil {
			return toParseError(src, err)
		}
		return &ParseError{Offset: src.Location(), Msg: "trailing data after value"}
	}
	return nil
}

func toParseError(src Source, err error) error {
	var ee *eng.Error
	if errors.As(err, &ee) {
		return &ParseError{Offset: ee.Offset, Msg: ee.Msg}
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	off := int64(-1)
	if src != nil {
		off = src.Location()
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &ParseError{Offset: off, Msg: "unexpected end of input"}
	}
	return &ParseError{Offset: off, Msg: err.Error()}
}

// ---- Source -> engine.TokenSource adapter ----

type tokenSourceAdapter struct{ inner Source }

// engineTokens exposes the engine view of a Source, unwrapping engine-backed
// sources to avoid adapter round-trips.
func engineTokens(src Source) eng.TokenSource {
	if ea, ok := src.(*engineSourceAdapter); ok {
		return ea.inner
	}
	return &tokenSourceAdapter{inner: src}
}

func (a *tokenSourceAdapter) NextToken() (eng.Token, error) {
	t, err := a.inner.NextToken()
	if err != nil {
		return eng.Token{}, err
	}
	return eng.Token{
		Kind:   toEngineKind(t.Kind),
		String: t.String,
		Number: t.Number,
		Bool:   t.Bool,
		Offset: t.Offset,
	}, nil
}

func (a *tokenSourceAdapter) Location() int64 { return a.inner.Location() }

func toEngineKind(k TokenKind) eng.Kind {
	switch k {
	case TokenBeginObject:
		return eng.KindBeginObject
	case TokenEndObject:
		return eng.KindEndObject
	case TokenBeginArray:
		return eng.KindBeginArray
	case TokenEndArray:
		return eng.KindEndArray
	case TokenKey:
		return eng.KindKey
	case TokenString:
		return eng.KindString
	case TokenNumber:
		return eng.KindNumber
	case TokenBool:
		return eng.KindBool
	default:
		return eng.KindNull
	}
}

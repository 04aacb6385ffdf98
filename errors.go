package decaf

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTypeMismatch   = "type_mismatch"   // value present but not of the expected variant
	CodeMissingKey     = "missing_key"     // required object member absent
	CodeMissingIndex   = "missing_index"   // required array element absent
	CodeWrongContainer = "wrong_container" // traversal attempted on a non-container value
	CodeCustom         = "custom"          // decoder-supplied failure
)

// Error describes a single decode failure. Path addresses the offending value
// from the document root. Expected and Actual are short descriptions of what
// the decoder wanted and what the value held; "absent" marks a missing
// traversal target.
type Error struct {
	Path     Path
	Code     string // One of the codes listed above.
	Expected string
	Actual   string
	Cause    error // Optional: underlying error.
}

// String renders the error as "code at /path: expected ..., found ...".
func (e Error) String() string {
	b := &strings.Builder{}
	b.WriteString(e.Code)
	b.WriteString(" at ")
	b.WriteString(displayPath(e.Path))
	switch {
	case e.Expected != "" && e.Actual != "":
		fmt.Fprintf(b, ": expected %s, found %s", e.Expected, e.Actual)
	case e.Expected != "":
		fmt.Fprintf(b, ": expected %s", e.Expected)
	case e.Actual != "":
		fmt.Fprintf(b, ": found %s", e.Actual)
	}
	return b.String()
}

// Equal reports structural equality: same path, code, expected and actual.
// Cause is ignored so assertions stay deterministic.
func (e Error) Equal(o Error) bool {
	return e.Code == o.Code && e.Expected == o.Expected && e.Actual == o.Actual && e.Path.Equal(o.Path)
}

// prefix returns a copy of e with s prepended to its path. The original is
// left untouched; errors are wrapped, never mutated.
func (e Error) prefix(s Segment) Error {
	np := make(Path, 0, len(e.Path)+1)
	np = append(np, s)
	np = append(np, e.Path...)
	e.Path = np
	return e
}

// Errors is a collection of decode failures that implements error. A slice of
// length greater than one is a composite failure; every element keeps its own
// full path.
type Errors []Error

// Error summarizes the first few errors.
func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(es)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		e := es[i]
		// e.g. missing_key at /name
		fmt.Fprintf(b, "%s at %s", e.Code, displayPath(e.Path))
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

func displayPath(p Path) string {
	if len(p) == 0 {
		return "/"
	}
	return p.String()
}

// Prefix returns a copy of es with s prepended to every element's path.
func (es Errors) Prefix(s Segment) Errors {
	if len(es) == 0 {
		return es
	}
	out := make(Errors, len(es))
	for i := range es {
		out[i] = es[i].prefix(s)
	}
	return out
}

// PrefixKey prepends an object key segment to every element's path.
func (es Errors) PrefixKey(name string) Errors { return es.Prefix(Key(name)) }

// PrefixIndex prepends an array index segment to every element's path.
func (es Errors) PrefixIndex(i int) Errors { return es.Prefix(Index(i)) }

// AppendErrors appends errors to the destination, initializing the slice when
// needed.
func AppendErrors(dst Errors, more ...Error) Errors {
	if dst == nil {
		dst = Errors{}
	}
	dst = append(dst, more...)
	return dst
}

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}

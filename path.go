package decaf

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is a single step of a Path: an object key or an array index.
type Segment struct {
	key   string
	idx   int
	isKey bool
}

// Key returns a Segment addressing an object member.
func Key(name string) Segment { return Segment{key: name, isKey: true} }

// Index returns a Segment addressing an array element.
func Index(i int) Segment { return Segment{idx: i} }

// IsKey reports whether the segment addresses an object member.
func (s Segment) IsKey() bool { return s.isKey }

// Key returns the member name; ok is false for index segments.
func (s Segment) Key() (name string, ok bool) { return s.key, s.isKey }

// Index returns the element index; ok is false for key segments.
func (s Segment) Index() (i int, ok bool) {
	if s.isKey {
		return 0, false
	}
	return s.idx, true
}

// String renders the segment as an escaped JSON Pointer reference token.
func (s Segment) String() string {
	if s.isKey {
		return escapePointerToken(s.key)
	}
	return strconv.Itoa(s.idx)
}

// Path locates a value within a value tree, outermost segment first. The
// empty Path denotes the document root.
type Path []Segment

// String renders the path as an RFC 6901 JSON Pointer. The root path renders
// as the empty string; error summaries show it as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// Equal reports whether two paths address the same location.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

func clonePath(p Path) Path {
	if len(p) == 0 {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

func escapePointerToken(s string) string { return pointerEscaper.Replace(s) }

// ParsePointer parses an RFC 6901 JSON Pointer into a Path. Reference tokens
// that are valid decimal indices (no leading zeros) become Index segments;
// everything else becomes a Key. "" is the root; "/" addresses the member
// with the empty key.
func ParsePointer(ptr string) (Path, error) {
	if ptr == "" {
		return nil, nil
	}
	if !strings.HasPrefix(ptr, "/") {
		return nil, fmt.Errorf("decaf: invalid JSON pointer %q: missing leading slash", ptr)
	}
	toks := strings.Split(ptr[1:], "/")
	p := make(Path, 0, len(toks))
	for _, t := range toks {
		if err := checkPointerEscapes(t); err != nil {
			return nil, fmt.Errorf("decaf: invalid JSON pointer %q: %w", ptr, err)
		}
		if isPointerIndex(t) {
			n, err := strconv.Atoi(t)
			if err != nil {
				return nil, fmt.Errorf("decaf: invalid JSON pointer %q: index %q out of range", ptr, t)
			}
			p = append(p, Index(n))
			continue
		}
		p = append(p, Key(pointerUnescaper.Replace(t)))
	}
	return p, nil
}

func checkPointerEscapes(tok string) error {
	for i := 0; i < len(tok); i++ {
		if tok[i] != '~' {
			continue
		}
		if i+1 >= len(tok) || (tok[i+1] != '0' && tok[i+1] != '1') {
			return fmt.Errorf("bad escape in token %q", tok)
		}
	}
	return nil
}

// isPointerIndex follows the RFC 6901 array-index grammar: "0" or a non-zero
// leading digit sequence.
func isPointerIndex(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return tok == "0" || tok[0] != '0'
}

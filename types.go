package decaf

// DupPolicy controls how duplicate object keys in parsed input are handled.
type DupPolicy int

const (
	DupLastWins DupPolicy = iota // Later occurrences replace earlier ones.
	DupReject                    // Any duplicate key is a parse error.
)

// String returns the policy name for diagnostics and flag values.
func (p DupPolicy) String() string {
	switch p {
	case DupReject:
		return "reject"
	default:
		return "last-wins"
	}
}

// DefaultMaxDepth caps container nesting when ParseOpt.MaxDepth is zero.
const DefaultMaxDepth = 256

// ParseOpt bundles parsing options. The zero value selects the defaults:
// DefaultMaxDepth nesting, no byte cap, duplicates resolved last-wins.
type ParseOpt struct {
	// MaxDepth caps container nesting. Zero selects DefaultMaxDepth; a
	// negative value disables the cap.
	MaxDepth int
	// MaxBytes caps the consumed input size in bytes when positive.
	MaxBytes int64
	// OnDuplicate selects the duplicate object key policy.
	OnDuplicate DupPolicy
}

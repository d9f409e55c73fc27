package selection

import (
	"fmt"

	"github.com/rfinnegan/skein/internal/engine/text"
)

// ByteOffset is an alias for text.ByteOffset for convenience.
type ByteOffset = text.ByteOffset

// Affinity describes which visual side of a line-wrap boundary a caret
// logically belongs to.
type Affinity int

const (
	// AffinityDownstream associates the caret with the following line.
	// This is the default.
	AffinityDownstream Affinity = iota
	// AffinityUpstream associates the caret with the preceding line.
	AffinityUpstream
)

// String returns the affinity name.
func (a Affinity) String() string {
	switch a {
	case AffinityDownstream:
		return "downstream"
	case AffinityUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// Horiz is an optional cached visual column. The zero value is "absent":
// vertical motion recomputes the column from the active point on demand.
type Horiz struct {
	col int
	ok  bool
}

// HorizAt returns a present Horiz with the given column.
func HorizAt(col int) Horiz {
	return Horiz{col: col, ok: true}
}

// Col returns the cached column and whether it is present.
func (h Horiz) Col() (int, bool) {
	return h.col, h.ok
}

// IsSet returns true if a column is cached.
func (h Horiz) IsSet() bool {
	return h.ok
}

// Region is one selection span. Start is the anchor, End the active point
// (where the caret blinks and further motion applies). Start may be
// greater than End for a backward selection.
type Region struct {
	Start    ByteOffset
	End      ByteOffset
	Horiz    Horiz
	Affinity Affinity
}

// NewCaret creates a caret region at the given offset.
func NewCaret(off ByteOffset) Region {
	return Region{Start: off, End: off}
}

// NewRegion creates a region from anchor to active point.
func NewRegion(start, end ByteOffset) Region {
	return Region{Start: start, End: end}
}

// IsCaret returns true if the region has no extent.
func (r Region) IsCaret() bool {
	return r.Start == r.End
}

// Min returns the lesser of the region's endpoints.
func (r Region) Min() ByteOffset {
	if r.Start < r.End {
		return r.Start
	}
	return r.End
}

// Max returns the greater of the region's endpoints.
func (r Region) Max() ByteOffset {
	if r.Start > r.End {
		return r.Start
	}
	return r.End
}

// Touches returns true if the regions overlap or are adjacent.
func (r Region) Touches(other Region) bool {
	return r.Min() <= other.Max() && other.Min() <= r.Max()
}

// String returns a string representation of the region.
func (r Region) String() string {
	if r.IsCaret() {
		return fmt.Sprintf("Caret(%d)", r.End)
	}
	return fmt.Sprintf("Region(%d..%d)", r.Start, r.End)
}

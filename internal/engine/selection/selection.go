package selection

import (
	"sort"
	"strings"
)

// Selection is an ordered set of regions representing simultaneous
// cursors and ranges. Regions are kept sorted by position and
// non-overlapping; AddRegion merges regions that overlap or touch.
type Selection struct {
	regions []Region
}

// New creates an empty selection.
func New() *Selection {
	return &Selection{}
}

// FromRegions creates a selection from the given regions, normalizing
// them through the merge policy.
func FromRegions(regions []Region) *Selection {
	s := &Selection{}
	for _, r := range regions {
		s.AddRegion(r)
	}
	return s
}

// CaretAt creates a selection holding a single caret.
func CaretAt(off ByteOffset) *Selection {
	return &Selection{regions: []Region{NewCaret(off)}}
}

// Len returns the number of regions.
func (s *Selection) Len() int {
	return len(s.regions)
}

// IsEmpty returns true if the selection holds no regions.
func (s *Selection) IsEmpty() bool {
	return len(s.regions) == 0
}

// Regions returns a copy of the regions in position order.
// The returned slice is safe to modify without affecting the Selection.
func (s *Selection) Regions() []Region {
	out := make([]Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// Primary returns the first region, or a zero region if empty.
func (s *Selection) Primary() Region {
	if len(s.regions) == 0 {
		return Region{}
	}
	return s.regions[0]
}

// AddRegion inserts a region, preserving the sorted, non-overlapping
// invariant. A region that overlaps or touches existing regions is fused
// with them into a single forward span; a merge invalidates the cached
// column and resets affinity, since neither survives a change of extent.
func (s *Selection) AddRegion(r Region) {
	s.regions = append(s.regions, r)
	if len(s.regions) == 1 {
		return
	}

	sort.SliceStable(s.regions, func(i, j int) bool {
		ri, rj := s.regions[i], s.regions[j]
		if ri.Min() != rj.Min() {
			return ri.Min() < rj.Min()
		}
		// Same start: wider region first so merging absorbs the narrower.
		return ri.Max() > rj.Max()
	})

	merged := s.regions[:1]
	for _, next := range s.regions[1:] {
		last := &merged[len(merged)-1]
		if next.Min() <= last.Max() {
			*last = mergeRegions(*last, next)
		} else {
			merged = append(merged, next)
		}
	}
	s.regions = merged
}

// mergeRegions fuses two touching regions into one forward span.
// Two identical carets fuse into that caret, keeping its column cache.
func mergeRegions(a, b Region) Region {
	if a == b {
		return a
	}
	lo := a.Min()
	if b.Min() < lo {
		lo = b.Min()
	}
	hi := a.Max()
	if b.Max() > hi {
		hi = b.Max()
	}
	return Region{Start: lo, End: hi}
}

// Clone returns a deep copy of the selection.
func (s *Selection) Clone() *Selection {
	return &Selection{regions: s.Regions()}
}

// Equals returns true if both selections hold the same regions in the
// same order, ignoring cached columns.
func (s *Selection) Equals(other *Selection) bool {
	if other == nil || len(s.regions) != len(other.regions) {
		return false
	}
	for i, r := range s.regions {
		o := other.regions[i]
		if r.Start != o.Start || r.End != o.End {
			return false
		}
	}
	return true
}

// String returns a string representation of the selection.
func (s *Selection) String() string {
	parts := make([]string, len(s.regions))
	for i, r := range s.regions {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Package selection provides the multi-cursor selection model.
//
// A Region is one selection span with an anchor (Start) and an active
// point (End); a caret is a region where both are equal. A Region also
// carries an optional sticky column (Horiz) used by vertical motion and a
// line-wrap Affinity.
//
// A Selection is an ordered set of regions kept sorted by position and
// non-overlapping. AddRegion owns the merge policy: regions that overlap
// or touch are fused into a single forward span.
//
// Region is an immutable value type. Selection is not thread-safe.
package selection

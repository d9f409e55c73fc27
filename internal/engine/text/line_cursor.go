package text

// LineCursor steps between line-break boundaries in a document.
// A boundary is the position immediately after a '\n'; the document start
// is not a boundary. The cursor moves to each boundary it reports.
type LineCursor struct {
	doc *Document
	pos ByteOffset
}

// NewLineCursor creates a line cursor positioned at the given offset.
func NewLineCursor(d *Document, off ByteOffset) *LineCursor {
	return &LineCursor{doc: d, pos: d.clamp(off)}
}

// Pos returns the cursor's current offset.
func (c *LineCursor) Pos() ByteOffset {
	return c.pos
}

// PrevBoundary moves to the greatest line-break boundary strictly before
// the current position. Returns false, leaving the cursor in place, when
// no boundary precedes it.
func (c *LineCursor) PrevBoundary() (ByteOffset, bool) {
	// The boundary after newlines[i] is newlines[i]+1; find the greatest
	// one strictly before pos.
	lo, hi := 0, len(c.doc.newlines)
	for lo < hi {
		mid := (lo + hi) / 2
		if c.doc.newlines[mid]+1 < c.pos {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return 0, false
	}
	c.pos = c.doc.newlines[lo-1] + 1
	return c.pos, true
}

// NextBoundary moves to the least line-break boundary strictly after the
// current position. Returns false, leaving the cursor in place, when no
// boundary follows it.
func (c *LineCursor) NextBoundary() (ByteOffset, bool) {
	lo, hi := 0, len(c.doc.newlines)
	for lo < hi {
		mid := (lo + hi) / 2
		if c.doc.newlines[mid]+1 <= c.pos {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(c.doc.newlines) {
		return 0, false
	}
	c.pos = c.doc.newlines[lo] + 1
	return c.pos, true
}

// OnBoundary reports whether the given offset sits exactly on a line-break
// boundary.
func (c *LineCursor) OnBoundary(off ByteOffset) bool {
	if off <= 0 || off > c.doc.Len() {
		return false
	}
	return c.doc.text[off-1] == '\n'
}

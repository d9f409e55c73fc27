package view

import "github.com/rfinnegan/skein/internal/engine/text"

// Layout maps between byte offsets and (line, column) positions for one
// document revision. Column 0 is the line start; columns count bytes
// within the line.
type Layout struct {
	heightLines int
}

// NewLayout creates a layout for a viewport of the given height in lines.
// Height is clamped to a minimum of 1.
func NewLayout(heightLines int) *Layout {
	if heightLines < 1 {
		heightLines = 1
	}
	return &Layout{heightLines: heightLines}
}

// HeightLines returns the viewport height in lines.
func (l *Layout) HeightLines() int {
	return l.heightLines
}

// SetHeightLines updates the viewport height, clamped to a minimum of 1.
func (l *Layout) SetHeightLines(n int) {
	if n < 1 {
		n = 1
	}
	l.heightLines = n
}

// LineOfOffset returns the line containing the given offset.
func (l *Layout) LineOfOffset(doc *text.Document, off text.ByteOffset) int {
	return doc.LineOfOffset(off)
}

// OffsetOfLine returns the offset of the first position on the given
// line, clamped to the document end for out-of-range lines.
func (l *Layout) OffsetOfLine(doc *text.Document, line int) text.ByteOffset {
	return doc.LineStart(line)
}

// OffsetToLineCol returns the (line, column) pair containing the offset.
func (l *Layout) OffsetToLineCol(doc *text.Document, off text.ByteOffset) (int, int) {
	line := doc.LineOfOffset(off)
	return line, int(off - doc.LineStart(line))
}

// LineColToOffset maps a (line, column) pair back to an offset. The
// column is clamped to the line's content, so the result never lands past
// the line terminator, and is snapped backward to a grapheme cluster
// boundary rather than splitting a cluster.
func (l *Layout) LineColToOffset(doc *text.Document, line, col int) text.ByteOffset {
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	start := doc.LineStart(line)
	end := doc.LineContentEnd(line)
	off := start + text.ByteOffset(col)
	if off > end {
		off = end
	}
	return doc.FloorGraphemeBoundary(off)
}

package movement

import (
	"github.com/rfinnegan/skein/internal/engine/selection"
	"github.com/rfinnegan/skein/internal/engine/text"
	"github.com/rfinnegan/skein/internal/view"
)

// resolveHoriz resolves the column at an offset through the layout,
// returning the offset unchanged with a present column. Called whenever
// a new absolute offset is computed so a later vertical move can reuse
// the column.
func resolveHoriz(layout *view.Layout, doc *text.Document, off text.ByteOffset) (text.ByteOffset, selection.Horiz) {
	_, col := layout.OffsetToLineCol(doc, off)
	return off, selection.HorizAt(col)
}

// verticalMotion computes the result of moving lineDelta lines from the
// region's active point, preserving the sticky column.
//
// The line arithmetic is careful to clamp rather than wrap: moving up
// past the first line lands on offset 0 and moving down past the last
// line lands on the document end, both keeping the column cache.
func verticalMotion(r selection.Region, layout *view.Layout, doc *text.Document, lineDelta int, modify bool) (text.ByteOffset, selection.Horiz) {
	// Non-extending motion starts from the selection's leading edge in
	// the direction of travel.
	var active text.ByteOffset
	switch {
	case modify:
		active = r.End
	case lineDelta < 0:
		active = r.Min()
	default:
		active = r.Max()
	}

	col, ok := r.Horiz.Col()
	if !ok {
		_, col = layout.OffsetToLineCol(doc, active)
	}

	line := layout.LineOfOffset(doc, active)
	if lineDelta < 0 && -lineDelta > line {
		return 0, selection.HorizAt(col)
	}
	target := line + lineDelta
	if lineDelta > 0 && target < line {
		// Saturate instead of wrapping.
		target = int(^uint(0) >> 1)
	}

	lastLine := layout.LineOfOffset(doc, doc.Len())
	if target > lastLine {
		return doc.Len(), selection.HorizAt(col)
	}

	newOff := layout.LineColToOffset(doc, target, col)
	if newOff == active {
		// Nothing moved: the cached column may be one this line cannot
		// represent, so recompute it fresh.
		return resolveHoriz(layout, doc, newOff)
	}
	return newOff, selection.HorizAt(col)
}

// scrollHeight returns the number of lines a page movement covers:
// slightly less than the viewport so two lines of context overlap,
// and at least one line.
func scrollHeight(layout *view.Layout) int {
	h := layout.HeightLines() - 2
	if h < 1 {
		h = 1
	}
	return h
}

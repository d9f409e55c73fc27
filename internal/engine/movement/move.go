package movement

import (
	"github.com/rfinnegan/skein/internal/engine/selection"
	"github.com/rfinnegan/skein/internal/engine/text"
	"github.com/rfinnegan/skein/internal/engine/word"
	"github.com/rfinnegan/skein/internal/view"
)

// regionMovement computes the result of one movement on one region,
// returning the new active offset and the column to cache with it.
func regionMovement(m Movement, r selection.Region, layout *view.Layout, doc *text.Document, modify bool) (text.ByteOffset, selection.Horiz) {
	switch m {
	case Left:
		if r.IsCaret() || modify {
			if off, ok := doc.PrevGraphemeBoundary(r.End); ok {
				return resolveHoriz(layout, doc, off)
			}
			return 0, r.Horiz
		}
		// A plain Left on a range collapses to its left edge, without
		// an extra grapheme step.
		return resolveHoriz(layout, doc, r.Min())

	case Right:
		if r.IsCaret() || modify {
			if off, ok := doc.NextGraphemeBoundary(r.End); ok {
				return resolveHoriz(layout, doc, off)
			}
			return r.End, r.Horiz
		}
		return resolveHoriz(layout, doc, r.Max())

	case LeftWord:
		wc := word.NewCursor(doc, r.End)
		off, ok := wc.PrevBoundary()
		if !ok {
			off = 0
		}
		return resolveHoriz(layout, doc, off)

	case RightWord:
		wc := word.NewCursor(doc, r.End)
		off, ok := wc.NextBoundary()
		if !ok {
			off = doc.Len()
		}
		return resolveHoriz(layout, doc, off)

	case LeftOfLine:
		line := layout.LineOfOffset(doc, r.End)
		return resolveHoriz(layout, doc, layout.OffsetOfLine(doc, line))

	case RightOfLine:
		line := layout.LineOfOffset(doc, r.End)
		off := doc.Len()
		// On any line but the last, land one grapheme before the next
		// line's start so the terminator stays excluded.
		if line < layout.LineOfOffset(doc, doc.Len()) {
			nextLine := layout.OffsetOfLine(doc, line+1)
			if prev, ok := doc.PrevGraphemeBoundary(nextLine); ok {
				off = prev
			}
		}
		return resolveHoriz(layout, doc, off)

	case Up:
		return verticalMotion(r, layout, doc, -1, modify)

	case Down:
		return verticalMotion(r, layout, doc, 1, modify)

	case UpPage:
		return verticalMotion(r, layout, doc, -scrollHeight(layout), modify)

	case DownPage:
		return verticalMotion(r, layout, doc, scrollHeight(layout), modify)

	case StartOfParagraph:
		lc := text.NewLineCursor(doc, r.End)
		off, ok := lc.PrevBoundary()
		if !ok {
			off = 0
		}
		return resolveHoriz(layout, doc, off)

	case EndOfParagraph:
		off := r.End
		lc := text.NewLineCursor(doc, r.End)
		if next, ok := lc.NextBoundary(); ok && lc.OnBoundary(next) {
			if eol, ok := doc.PrevGraphemeBoundary(next); ok {
				off = eol
			}
		}
		return resolveHoriz(layout, doc, off)

	case StartOfDocument:
		return resolveHoriz(layout, doc, 0)

	case EndOfDocument:
		return resolveHoriz(layout, doc, doc.Len())

	default:
		return resolveHoriz(layout, doc, r.End)
	}
}

// Apply computes a new selection by applying a movement to an existing
// selection.
//
// The movement is applied to each region independently and the results
// are unioned; this is how multi-cursor movement is realized. If modify
// is true the regions extend, keeping their anchors; otherwise each
// result collapses to a caret at the new position. The input selection
// is never mutated. Overlapping results are fused by the selection
// container's own merge policy.
func Apply(m Movement, sel *selection.Selection, layout *view.Layout, doc *text.Document, modify bool) *selection.Selection {
	result := selection.New()
	for _, r := range sel.Regions() {
		off, horiz := regionMovement(m, r, layout, doc, modify)
		start := off
		if modify {
			start = r.Start
		}
		result.AddRegion(selection.Region{
			Start: start,
			End:   off,
			Horiz: horiz,
		})
	}
	return result
}

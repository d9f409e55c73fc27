package word

import (
	"unicode"
	"unicode/utf8"

	"github.com/rfinnegan/skein/internal/engine/text"
)

// Cursor walks word boundaries in a document snapshot.
// The cursor moves to each boundary it reports.
type Cursor struct {
	doc *text.Document
	pos text.ByteOffset
}

// NewCursor creates a word cursor at the given offset.
func NewCursor(d *text.Document, off text.ByteOffset) *Cursor {
	if off < 0 {
		off = 0
	}
	if off > d.Len() {
		off = d.Len()
	}
	return &Cursor{doc: d, pos: off}
}

// Pos returns the cursor's current offset.
func (c *Cursor) Pos() text.ByteOffset {
	return c.pos
}

// PrevBoundary moves to the greatest word start strictly before the
// current position. Returns false at the document start.
func (c *Cursor) PrevBoundary() (text.ByteOffset, bool) {
	if c.pos <= 0 {
		return 0, false
	}
	s := c.doc.String()
	off := c.pos

	// Step back over any non-word runes.
	for off > 0 {
		p := prevRuneStart(s, off)
		r, _ := utf8.DecodeRuneInString(s[p:])
		if isWordRune(r) {
			break
		}
		off = p
	}
	// Step back to the start of the word run.
	for off > 0 {
		p := prevRuneStart(s, off)
		r, _ := utf8.DecodeRuneInString(s[p:])
		if !isWordRune(r) {
			break
		}
		off = p
	}
	c.pos = off
	return off, true
}

// NextBoundary moves to the least word start strictly after the current
// position. Returns false when no word starts before the document end.
func (c *Cursor) NextBoundary() (text.ByteOffset, bool) {
	max := c.doc.Len()
	if c.pos >= max {
		return 0, false
	}
	s := c.doc.String()
	off := c.pos

	// Skip the rest of the current word, if inside one.
	for off < max {
		r, size := utf8.DecodeRuneInString(s[off:])
		if !isWordRune(r) {
			break
		}
		off += text.ByteOffset(size)
	}
	// Skip non-word runes to the next word start.
	for off < max {
		r, size := utf8.DecodeRuneInString(s[off:])
		if isWordRune(r) {
			c.pos = off
			return off, true
		}
		off += text.ByteOffset(size)
	}
	return 0, false
}

// isWordRune returns true if r belongs to a word: letters, digits, and
// underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// prevRuneStart returns the byte offset of the rune preceding off.
func prevRuneStart(s string, off text.ByteOffset) text.ByteOffset {
	if off <= 0 {
		return 0
	}
	off--
	for off > 0 && !utf8.RuneStart(s[off]) {
		off--
	}
	return off
}

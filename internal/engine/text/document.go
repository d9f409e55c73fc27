package text

import (
	"strings"

	"github.com/google/uuid"
)

// ByteOffset represents a byte position in a document.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int64

// Document is an immutable snapshot of buffer contents at one revision.
// Line positions are precomputed so line/offset queries are O(log n).
type Document struct {
	text     string
	newlines []ByteOffset // byte position of every '\n', ascending
	revision uuid.UUID
}

// NewDocument creates a document snapshot from the given text.
func NewDocument(s string) *Document {
	d := &Document{
		text:     s,
		revision: uuid.New(),
	}
	from := 0
	for {
		i := strings.IndexByte(s[from:], '\n')
		if i < 0 {
			break
		}
		d.newlines = append(d.newlines, ByteOffset(from+i))
		from += i + 1
	}
	return d
}

// Len returns the document length in bytes.
func (d *Document) Len() ByteOffset {
	return ByteOffset(len(d.text))
}

// String returns the full document text.
func (d *Document) String() string {
	return d.text
}

// Revision identifies the snapshot. Selections and layouts built against
// one revision must not be applied to another.
func (d *Document) Revision() uuid.UUID {
	return d.revision
}

// Slice returns the text in [start, end), clamped to the document.
func (d *Document) Slice(start, end ByteOffset) string {
	start = d.clamp(start)
	end = d.clamp(end)
	if start >= end {
		return ""
	}
	return d.text[start:end]
}

// ByteAt returns the byte at the given offset.
func (d *Document) ByteAt(off ByteOffset) (byte, bool) {
	if off < 0 || off >= d.Len() {
		return 0, false
	}
	return d.text[off], true
}

// LineCount returns the number of lines. A document always has at least
// one line; a trailing newline starts a final empty line.
func (d *Document) LineCount() int {
	return len(d.newlines) + 1
}

// LastLine returns the index of the last line.
func (d *Document) LastLine() int {
	return len(d.newlines)
}

// LineStart returns the byte offset of the start of the given line.
// Out-of-range lines clamp to the document: negative lines to 0, lines
// past the last to the document length.
func (d *Document) LineStart(line int) ByteOffset {
	if line <= 0 {
		return 0
	}
	if line > d.LastLine() {
		return d.Len()
	}
	return d.newlines[line-1] + 1
}

// LineContentEnd returns the offset just past the last content byte of
// the line, excluding its terminator. For the last line this is the
// document length.
func (d *Document) LineContentEnd(line int) ByteOffset {
	if line < 0 {
		line = 0
	}
	if line >= d.LastLine() {
		return d.Len()
	}
	return d.newlines[line]
}

// LineOfOffset returns the line containing the given offset. The offset
// is clamped into [0, Len]; the document end belongs to the last line.
func (d *Document) LineOfOffset(off ByteOffset) int {
	off = d.clamp(off)
	// Count newlines strictly before off.
	lo, hi := 0, len(d.newlines)
	for lo < hi {
		mid := (lo + hi) / 2
		if d.newlines[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// LineText returns the content of the given line without its terminator.
func (d *Document) LineText(line int) string {
	return d.Slice(d.LineStart(line), d.LineContentEnd(line))
}

func (d *Document) clamp(off ByteOffset) ByteOffset {
	if off < 0 {
		return 0
	}
	if off > d.Len() {
		return d.Len()
	}
	return off
}

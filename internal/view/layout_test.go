package view

import (
	"testing"

	"github.com/rfinnegan/skein/internal/engine/text"
)

func TestLayoutHeightClamps(t *testing.T) {
	if got := NewLayout(0).HeightLines(); got != 1 {
		t.Errorf("NewLayout(0).HeightLines() = %d, want 1", got)
	}
	l := NewLayout(10)
	l.SetHeightLines(-4)
	if got := l.HeightLines(); got != 1 {
		t.Errorf("SetHeightLines(-4): HeightLines() = %d, want 1", got)
	}
}

func TestOffsetToLineCol(t *testing.T) {
	doc := text.NewDocument("hello\nworld")
	l := NewLayout(10)

	tests := []struct {
		off      text.ByteOffset
		line, col int
	}{
		{0, 0, 0},
		{4, 0, 4},
		{5, 0, 5},
		{6, 1, 0},
		{11, 1, 5},
	}
	for _, tt := range tests {
		line, col := l.OffsetToLineCol(doc, tt.off)
		if line != tt.line || col != tt.col {
			t.Errorf("OffsetToLineCol(%d) = (%d,%d), want (%d,%d)",
				tt.off, line, col, tt.line, tt.col)
		}
	}
}

func TestLineColToOffsetRoundTrip(t *testing.T) {
	doc := text.NewDocument("hello\nworld\n\nx")
	l := NewLayout(10)

	for off := text.ByteOffset(0); off <= doc.Len(); off++ {
		line, col := l.OffsetToLineCol(doc, off)
		if got := l.LineColToOffset(doc, line, col); got != off {
			t.Errorf("round trip %d: got %d (line %d col %d)", off, got, line, col)
		}
	}
}

func TestLineColToOffsetClampsColumn(t *testing.T) {
	doc := text.NewDocument("hello\nhi\nworld")
	l := NewLayout(10)

	// Column past the content of "hi" clamps to its end, before the
	// terminator.
	if got := l.LineColToOffset(doc, 1, 5); got != 8 {
		t.Errorf("LineColToOffset(1,5) = %d, want 8", got)
	}
	// Last line clamps to the document end.
	if got := l.LineColToOffset(doc, 2, 99); got != doc.Len() {
		t.Errorf("LineColToOffset(2,99) = %d, want %d", got, doc.Len())
	}
	// Negative inputs clamp to the origin.
	if got := l.LineColToOffset(doc, -1, -1); got != 0 {
		t.Errorf("LineColToOffset(-1,-1) = %d, want 0", got)
	}
}

func TestLineColToOffsetSnapsToClusterBoundary(t *testing.T) {
	// Line is emoji (4 bytes) then x.
	doc := text.NewDocument("\U0001f642x")
	l := NewLayout(10)

	// A column inside the emoji snaps back to its start.
	if got := l.LineColToOffset(doc, 0, 2); got != 0 {
		t.Errorf("LineColToOffset(0,2) = %d, want 0", got)
	}
	if got := l.LineColToOffset(doc, 0, 4); got != 4 {
		t.Errorf("LineColToOffset(0,4) = %d, want 4", got)
	}
}

func TestLineColToOffsetPastLastLine(t *testing.T) {
	doc := text.NewDocument("hello\nworld")
	l := NewLayout(10)

	if got := l.LineColToOffset(doc, 99, 3); got != doc.Len() {
		t.Errorf("LineColToOffset(99,3) = %d, want %d", got, doc.Len())
	}
}

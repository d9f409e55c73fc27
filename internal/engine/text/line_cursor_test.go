package text

import "testing"

func TestLineCursorPrevBoundary(t *testing.T) {
	d := NewDocument("one\ntwo\nthree")
	// Boundaries sit at 4 and 8.

	tests := []struct {
		from  ByteOffset
		want  ByteOffset
		found bool
	}{
		{10, 8, true},
		{8, 4, true}, // strictly before: a cursor on a boundary steps past it
		{5, 4, true},
		{4, 0, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		c := NewLineCursor(d, tt.from)
		got, ok := c.PrevBoundary()
		if ok != tt.found || (ok && got != tt.want) {
			t.Errorf("PrevBoundary from %d: got (%d,%v), want (%d,%v)",
				tt.from, got, ok, tt.want, tt.found)
		}
	}
}

func TestLineCursorNextBoundary(t *testing.T) {
	d := NewDocument("one\ntwo\nthree")

	tests := []struct {
		from  ByteOffset
		want  ByteOffset
		found bool
	}{
		{0, 4, true},
		{4, 8, true},
		{7, 8, true},
		{8, 0, false},
		{13, 0, false},
	}
	for _, tt := range tests {
		c := NewLineCursor(d, tt.from)
		got, ok := c.NextBoundary()
		if ok != tt.found || (ok && got != tt.want) {
			t.Errorf("NextBoundary from %d: got (%d,%v), want (%d,%v)",
				tt.from, got, ok, tt.want, tt.found)
		}
	}
}

func TestLineCursorWalksBoundaries(t *testing.T) {
	d := NewDocument("a\nb\nc\n")
	c := NewLineCursor(d, 0)

	var got []ByteOffset
	for {
		b, ok := c.NextBoundary()
		if !ok {
			break
		}
		got = append(got, b)
	}
	want := []ByteOffset{2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("boundaries %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("boundaries %v, want %v", got, want)
		}
	}
	if c.Pos() != 6 {
		t.Errorf("final Pos() = %d, want 6", c.Pos())
	}
}

func TestLineCursorFailedMoveKeepsPosition(t *testing.T) {
	d := NewDocument("one\ntwo")
	c := NewLineCursor(d, 2)

	if _, ok := c.PrevBoundary(); ok {
		t.Fatal("PrevBoundary from 2: no boundary expected")
	}
	if c.Pos() != 2 {
		t.Errorf("Pos() after failed move = %d, want 2", c.Pos())
	}
}

func TestLineCursorOnBoundary(t *testing.T) {
	d := NewDocument("one\ntwo\n")
	c := NewLineCursor(d, 0)

	tests := []struct {
		off  ByteOffset
		want bool
	}{
		{0, false}, // document start is not a break boundary
		{3, false},
		{4, true},
		{8, true},
		{9, false}, // past the end
	}
	for _, tt := range tests {
		if got := c.OnBoundary(tt.off); got != tt.want {
			t.Errorf("OnBoundary(%d) = %v, want %v", tt.off, got, tt.want)
		}
	}
}

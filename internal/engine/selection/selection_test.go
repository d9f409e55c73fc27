package selection

import "testing"

func TestRegionPredicates(t *testing.T) {
	caret := NewCaret(5)
	if !caret.IsCaret() {
		t.Error("NewCaret(5).IsCaret() = false")
	}

	backward := NewRegion(7, 2)
	if backward.IsCaret() {
		t.Error("NewRegion(7,2).IsCaret() = true")
	}
	if backward.Min() != 2 || backward.Max() != 7 {
		t.Errorf("backward Min/Max = %d/%d, want 2/7", backward.Min(), backward.Max())
	}
}

func TestRegionTouches(t *testing.T) {
	tests := []struct {
		a, b Region
		want bool
	}{
		{NewRegion(0, 5), NewRegion(3, 8), true},
		{NewRegion(0, 5), NewRegion(5, 8), true}, // adjacency counts
		{NewRegion(0, 5), NewRegion(6, 8), false},
		{NewCaret(3), NewRegion(0, 5), true},
		{NewCaret(3), NewCaret(3), true},
		{NewCaret(3), NewCaret(4), false},
		{NewRegion(8, 3), NewRegion(5, 10), true}, // direction is irrelevant
	}
	for _, tt := range tests {
		if got := tt.a.Touches(tt.b); got != tt.want {
			t.Errorf("%s.Touches(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Touches(tt.a); got != tt.want {
			t.Errorf("%s.Touches(%s) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestHorizZeroValueIsAbsent(t *testing.T) {
	var h Horiz
	if h.IsSet() {
		t.Error("zero Horiz reports a cached column")
	}
	if col, ok := HorizAt(9).Col(); !ok || col != 9 {
		t.Errorf("HorizAt(9).Col() = (%d,%v), want (9,true)", col, ok)
	}
}

func TestAddRegionKeepsSorted(t *testing.T) {
	s := New()
	s.AddRegion(NewCaret(10))
	s.AddRegion(NewCaret(2))
	s.AddRegion(NewCaret(6))

	regions := s.Regions()
	want := []ByteOffset{2, 6, 10}
	if len(regions) != len(want) {
		t.Fatalf("got %d regions, want %d", len(regions), len(want))
	}
	for i, r := range regions {
		if r.End != want[i] {
			t.Errorf("region %d at %d, want %d", i, r.End, want[i])
		}
	}
}

func TestAddRegionMergesOverlap(t *testing.T) {
	s := New()
	s.AddRegion(NewRegion(0, 5))
	s.AddRegion(NewRegion(3, 9))

	if s.Len() != 1 {
		t.Fatalf("got %d regions, want 1", s.Len())
	}
	r := s.Primary()
	if r.Start != 0 || r.End != 9 {
		t.Errorf("merged region %s, want Region(0..9)", r)
	}
}

func TestAddRegionMergesTouch(t *testing.T) {
	s := New()
	s.AddRegion(NewRegion(0, 5))
	s.AddRegion(NewRegion(5, 9))

	if s.Len() != 1 {
		t.Fatalf("got %d regions, want 1", s.Len())
	}
	r := s.Primary()
	if r.Start != 0 || r.End != 9 {
		t.Errorf("merged region %s, want Region(0..9)", r)
	}
}

func TestAddRegionAbsorbsCaretIntoRange(t *testing.T) {
	s := New()
	s.AddRegion(NewRegion(2, 8))
	s.AddRegion(NewCaret(5))

	if s.Len() != 1 {
		t.Fatalf("got %d regions, want 1", s.Len())
	}
	r := s.Primary()
	if r.Min() != 2 || r.Max() != 8 {
		t.Errorf("got %s, want span 2..8", r)
	}
}

func TestAddRegionKeepsSeparateCarets(t *testing.T) {
	s := New()
	s.AddRegion(NewCaret(3))
	s.AddRegion(NewCaret(4))

	if s.Len() != 2 {
		t.Fatalf("adjacent carets merged: got %d regions, want 2", s.Len())
	}
}

func TestIdenticalCaretsFuseKeepingColumn(t *testing.T) {
	s := New()
	r := NewCaret(4)
	r.Horiz = HorizAt(12)
	s.AddRegion(r)
	s.AddRegion(r)

	if s.Len() != 1 {
		t.Fatalf("got %d regions, want 1", s.Len())
	}
	if col, ok := s.Primary().Horiz.Col(); !ok || col != 12 {
		t.Errorf("fused caret column (%d,%v), want (12,true)", col, ok)
	}
}

func TestMergeDropsColumnCache(t *testing.T) {
	a := NewRegion(0, 5)
	a.Horiz = HorizAt(5)
	b := NewRegion(4, 9)
	b.Horiz = HorizAt(9)

	s := New()
	s.AddRegion(a)
	s.AddRegion(b)

	if s.Len() != 1 {
		t.Fatalf("got %d regions, want 1", s.Len())
	}
	if s.Primary().Horiz.IsSet() {
		t.Error("merged region kept a stale column cache")
	}
}

func TestMergeProducesForwardSpan(t *testing.T) {
	s := New()
	s.AddRegion(NewRegion(9, 4)) // backward
	s.AddRegion(NewRegion(2, 5))

	if s.Len() != 1 {
		t.Fatalf("got %d regions, want 1", s.Len())
	}
	r := s.Primary()
	if r.Start != 2 || r.End != 9 {
		t.Errorf("got %s, want Region(2..9)", r)
	}
}

func TestRegionsReturnsCopy(t *testing.T) {
	s := CaretAt(3)
	regions := s.Regions()
	regions[0] = NewCaret(99)

	if s.Primary().End != 3 {
		t.Error("mutating the returned slice changed the selection")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := CaretAt(3)
	c := s.Clone()
	c.AddRegion(NewCaret(7))

	if s.Len() != 1 {
		t.Errorf("clone mutation leaked: original has %d regions", s.Len())
	}
	if c.Len() != 2 {
		t.Errorf("clone has %d regions, want 2", c.Len())
	}
}

func TestEqualsIgnoresColumnCache(t *testing.T) {
	a := FromRegions([]Region{{Start: 1, End: 4, Horiz: HorizAt(3)}})
	b := FromRegions([]Region{{Start: 1, End: 4}})

	if !a.Equals(b) {
		t.Error("selections differing only in column cache compare unequal")
	}
	if a.Equals(CaretAt(1)) {
		t.Error("different selections compare equal")
	}
	if a.Equals(nil) {
		t.Error("Equals(nil) = true")
	}
}

func TestPrimaryOnEmptySelection(t *testing.T) {
	s := New()
	if !s.IsEmpty() {
		t.Error("New() is not empty")
	}
	if got := s.Primary(); got != (Region{}) {
		t.Errorf("Primary() on empty = %s, want zero region", got)
	}
}

func TestString(t *testing.T) {
	s := FromRegions([]Region{NewCaret(2), NewRegion(5, 9)})
	if got := s.String(); got != "[Caret(2) Region(5..9)]" {
		t.Errorf("String() = %q", got)
	}
}

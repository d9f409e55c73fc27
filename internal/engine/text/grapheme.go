package text

import "github.com/rivo/uniseg"

// Grapheme cluster boundaries. Segmentation restarts at the start of the
// containing line: a hard '\n' always terminates a cluster, so a line
// start is a safe anchor and cluster state never crosses it.

// PrevGraphemeBoundary returns the nearest grapheme cluster boundary
// strictly before the given offset. Returns false at the document start.
func (d *Document) PrevGraphemeBoundary(off ByteOffset) (ByteOffset, bool) {
	if off <= 0 {
		return 0, false
	}
	off = d.clamp(off)
	anchor := d.LineStart(d.LineOfOffset(off - 1))
	last := anchor
	cur := anchor
	rest := d.text[anchor:]
	state := -1
	for cur < off && len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cur+ByteOffset(len(cluster)) >= off {
			break
		}
		cur += ByteOffset(len(cluster))
		last = cur
	}
	return last, true
}

// NextGraphemeBoundary returns the nearest grapheme cluster boundary
// strictly after the given offset. Returns false at the document end.
func (d *Document) NextGraphemeBoundary(off ByteOffset) (ByteOffset, bool) {
	if off >= d.Len() {
		return d.Len(), false
	}
	if off < 0 {
		off = 0
	}
	anchor := d.LineStart(d.LineOfOffset(off))
	cur := anchor
	rest := d.text[anchor:]
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cur += ByteOffset(len(cluster))
		if cur > off {
			return cur, true
		}
	}
	return d.Len(), false
}

// FloorGraphemeBoundary returns the greatest grapheme cluster boundary at
// or before the given offset. An offset already on a boundary is returned
// unchanged.
func (d *Document) FloorGraphemeBoundary(off ByteOffset) ByteOffset {
	off = d.clamp(off)
	if off == 0 || off == d.Len() {
		return off
	}
	anchor := d.LineStart(d.LineOfOffset(off))
	cur := anchor
	rest := d.text[anchor:]
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		next := cur + ByteOffset(len(cluster))
		if next > off {
			return cur
		}
		cur = next
		if cur == off {
			return cur
		}
	}
	return cur
}

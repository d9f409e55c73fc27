// Package movement computes cursor and selection movement.
//
// Given a navigation command, the current multi-region selection, and
// read-only views of the document and its line layout, Apply computes the
// new selection. The engine never mutates its inputs and performs no I/O;
// it is a pure function of the snapshot it reads.
//
// Movement reconciles several coordinate spaces at once: byte offsets,
// grapheme cluster boundaries, byte columns, line numbers, and viewport
// height. Vertical motion preserves a sticky column across lines of
// ragged length, and every edge condition (document start/end, absent
// boundaries, out-of-range lines) resolves by clamping to a valid offset.
// There is no failure channel.
//
// Callers must guarantee that every offset in the input selection is a
// valid position in the document the layout was built against; behavior
// is unspecified otherwise.
package movement

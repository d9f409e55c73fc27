// Package text provides immutable document snapshots for the editing engine.
//
// A Document is a read-only view of the buffer contents at one revision.
// It answers the position queries the rest of the engine needs:
//
//   - Byte-offset access and slicing
//   - A line metric (newline index) mapping offsets to line numbers
//   - Grapheme cluster boundaries (Unicode segmentation via rivo/uniseg)
//   - A LineCursor stepping between line-break boundaries
//
// All offsets are byte offsets into the UTF-8 text. Movement and layout
// code steps by grapheme clusters, never by raw bytes or runes, so a
// cursor can never land inside a user-perceived character.
//
// Thread Safety:
//
// Document is immutable after construction and safe for concurrent reads.
// LineCursor carries mutable position state and is not safe for sharing.
package text

// Package view provides the line layout and viewport for the engine.
//
// Layout maps between byte offsets and (line, column) pairs. Columns are
// byte columns within a line; there is no soft wrap, so one document line
// is one visual line. Offsets produced by Layout are always clamped to
// valid positions and snapped to grapheme cluster boundaries.
//
// Viewport tracks the visible window over the document for a terminal
// front end. The movement engine only consults the layout's height in
// lines; scrolling itself is the front end's concern.
//
// Layout is not safe for concurrent mutation. Viewport is internally
// locked: margin updates from a config reload may land while another
// goroutine scrolls.
package view

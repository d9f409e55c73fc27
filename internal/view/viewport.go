package view

import "sync"

// Viewport tracks the visible window over the document for a terminal
// front end: the first visible line and column plus the window size in
// cells. All operations guard against underflow and clamp against the
// document's last line.
//
// Viewport is safe for concurrent use: a config reload may adjust the
// scroll margins from the watcher goroutine while the event loop
// scrolls.
type Viewport struct {
	mu sync.Mutex

	topLine    int
	leftColumn int
	width      int
	height     int

	// Scroll margins keep the cursor this far from the window edges.
	marginV int
	marginH int

	maxLine int // last valid line, inclusive
}

// NewViewport creates a viewport with the given size in cells.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{marginV: 2, marginH: 6}
	v.Resize(width, height)
	return v
}

// Resize updates the viewport size, clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width = width
	v.height = height
	v.clampTop()
}

// Width returns the viewport width in cells.
func (v *Viewport) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

// Height returns the viewport height in lines.
func (v *Viewport) Height() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.height
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.topLine
}

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.leftColumn
}

// SetMargins sets the vertical and horizontal scroll margins.
func (v *Viewport) SetMargins(vertical, horizontal int) {
	if vertical < 0 {
		vertical = 0
	}
	if horizontal < 0 {
		horizontal = 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.marginV = vertical
	v.marginH = horizontal
}

// SetMaxLine sets the last valid line, clamping the top line if needed.
func (v *Viewport) SetMaxLine(maxLine int) {
	if maxLine < 0 {
		maxLine = 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.maxLine = maxLine
	v.clampTop()
}

// VisibleLineRange returns the inclusive range of visible lines.
func (v *Viewport) VisibleLineRange() (start, end int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	bottom := v.topLine + v.height - 1
	if bottom > v.maxLine {
		bottom = v.maxLine
	}
	return v.topLine, bottom
}

// ScrollToReveal scrolls minimally so that (line, col) is visible inside
// the scroll margins. Returns true if the viewport moved.
func (v *Viewport) ScrollToReveal(line, col int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	targetTop := v.topLine
	targetLeft := v.leftColumn

	marginV := v.marginV
	if marginV*2 >= v.height {
		marginV = 0
	}
	if line < v.topLine+marginV {
		targetTop = line - marginV
	} else if line > v.topLine+v.height-1-marginV {
		targetTop = line - v.height + 1 + marginV
	}

	marginH := v.marginH
	if marginH*2 >= v.width {
		marginH = 0
	}
	if col < v.leftColumn+marginH {
		targetLeft = col - marginH
	} else if col > v.leftColumn+v.width-1-marginH {
		targetLeft = col - v.width + 1 + marginH
	}

	if targetTop < 0 {
		targetTop = 0
	}
	if targetTop > v.maxLine {
		targetTop = v.maxLine
	}
	if targetLeft < 0 {
		targetLeft = 0
	}

	moved := targetTop != v.topLine || targetLeft != v.leftColumn
	v.topLine = targetTop
	v.leftColumn = targetLeft
	return moved
}

// clampTop is called with the lock held.
func (v *Viewport) clampTop() {
	if v.topLine > v.maxLine {
		v.topLine = v.maxLine
	}
	if v.topLine < 0 {
		v.topLine = 0
	}
}

package app

import (
	"fmt"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/rfinnegan/skein/internal/config"
	"github.com/rfinnegan/skein/internal/engine/movement"
	"github.com/rfinnegan/skein/internal/engine/selection"
	"github.com/rfinnegan/skein/internal/engine/text"
	"github.com/rfinnegan/skein/internal/view"
)

// Options configures application startup.
type Options struct {
	// ConfigPath is the TOML configuration file; empty uses defaults.
	ConfigPath string
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string
	// File is the document to open; empty opens an empty document.
	File string
}

// App wires a document snapshot, selection, layout, and viewport to a
// tcell screen and drives the movement engine from key events.
type App struct {
	log *Logger

	mu  sync.Mutex
	cfg config.Config

	doc    *text.Document
	sel    *selection.Selection
	layout *view.Layout
	vp     *view.Viewport

	screen  tcell.Screen
	watcher *config.Watcher

	shutdownOnce sync.Once
}

// New creates the application: loads configuration, reads the document,
// and places a single caret at the start.
func New(opts Options) (*App, error) {
	logger := NewLogger(ParseLogLevel(opts.LogLevel), os.Stderr)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(ParseLogLevel(cfg.Logging.Level))

	var content string
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", opts.File, err)
		}
		content = string(data)
	}

	doc := text.NewDocument(content)
	a := &App{
		log:    logger,
		cfg:    cfg,
		doc:    doc,
		sel:    selection.CaretAt(0),
		layout: view.NewLayout(1),
		vp:     view.NewViewport(80, 24),
	}
	a.vp.SetMargins(cfg.Editor.ScrollMarginVertical, cfg.Editor.ScrollMarginHorizontal)
	a.vp.SetMaxLine(doc.LastLine())
	logger.WithComponent("app").Debug("opened document rev=%s len=%d lines=%d",
		doc.Revision(), doc.Len(), doc.LineCount())

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, a.onConfigReload, func(err error) {
			logger.WithComponent("config").Warn("%v", err)
		})
		if err != nil {
			logger.WithComponent("config").Warn("config watch disabled: %v", err)
		} else {
			a.watcher = w
		}
	}
	return a, nil
}

// onConfigReload applies a freshly loaded configuration.
func (a *App) onConfigReload(cfg config.Config) {
	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()
	a.log.SetLevel(ParseLogLevel(cfg.Logging.Level))
	a.vp.SetMargins(cfg.Editor.ScrollMarginVertical, cfg.Editor.ScrollMarginHorizontal)
	a.log.WithComponent("config").Info("configuration reloaded")
}

// Run enters the event loop. Returns ErrQuit on a user-requested exit.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	a.screen = screen

	w, h := screen.Size()
	a.resize(w, h)
	a.render()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			a.resize(w, h)
			screen.Sync()
			a.render()

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyCtrlQ, ev.Key() == tcell.KeyEscape:
				return ErrQuit
			case ev.Key() == tcell.KeyCtrlD:
				a.addCaretBelow()
				a.render()
			default:
				if m, modify, ok := keyToMovement(ev); ok {
					a.move(m, modify)
					a.render()
				}
			}

		case nil:
			// Screen finalized.
			return nil
		}
	}
}

// Shutdown releases the screen and stops the config watcher. Safe to
// call on all exit paths.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
		if a.screen != nil {
			a.screen.Fini()
		}
	})
}

// move applies a movement to the whole selection and scrolls the primary
// cursor into view.
func (a *App) move(m movement.Movement, modify bool) {
	a.sel = movement.Apply(m, a.sel, a.layout, a.doc, modify)
	line, col := a.layout.OffsetToLineCol(a.doc, a.sel.Primary().End)
	a.vp.ScrollToReveal(line, col)
	a.log.WithComponent("movement").Debug("%s modify=%v -> %s", m, modify, a.sel)
}

// addCaretBelow adds a caret one line below the last region, at the same
// column.
func (a *App) addCaretBelow() {
	regions := a.sel.Regions()
	if len(regions) == 0 {
		a.sel = selection.CaretAt(0)
		return
	}
	last := regions[len(regions)-1]
	below := movement.Apply(movement.Down, selection.FromRegions([]selection.Region{last}), a.layout, a.doc, false)
	next := a.sel.Clone()
	next.AddRegion(below.Primary())
	a.sel = next
}

// resize adjusts viewport and layout to the screen, reserving the bottom
// row for the status line.
func (a *App) resize(w, h int) {
	if h > 1 {
		h--
	}
	a.vp.Resize(w, h)
	a.layout.SetHeightLines(h)
}

// render draws the visible document slice, selection highlights, extra
// carets, and the status line.
func (a *App) render() {
	if a.screen == nil {
		return
	}
	a.mu.Lock()
	tabWidth := a.cfg.Editor.TabWidth
	a.mu.Unlock()

	a.screen.Clear()
	base := tcell.StyleDefault
	hl := base.Reverse(true)
	caretStyle := base.Underline(true)

	top, bottom := a.vp.VisibleLineRange()
	left := a.vp.LeftColumn()

	for line := top; line <= bottom; line++ {
		row := line - top
		lineStart := a.doc.LineStart(line)
		lineText := a.doc.LineText(line)

		x := 0
		for i := 0; i < len(lineText); {
			r, size := utf8.DecodeRuneInString(lineText[i:])
			off := lineStart + text.ByteOffset(i)

			style := base
			if a.offsetSelected(off) {
				style = hl
			} else if a.isSecondaryCaret(off) {
				style = caretStyle
			}

			if r == '\t' {
				next := (x/tabWidth + 1) * tabWidth
				for ; x < next; x++ {
					a.setCell(x-left, row, ' ', style)
				}
			} else {
				a.setCell(x-left, row, r, style)
				x++
			}
			i += size
		}
		// A caret can sit just past the last content byte.
		endOff := lineStart + text.ByteOffset(len(lineText))
		if a.isSecondaryCaret(endOff) {
			a.setCell(x-left, row, ' ', caretStyle)
		}
	}

	a.renderStatus()
	a.showPrimaryCursor(top, left)
	a.screen.Show()
}

func (a *App) setCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= a.vp.Width() || y < 0 || y >= a.vp.Height() {
		return
	}
	a.screen.SetContent(x, y, r, nil, style)
}

// offsetSelected reports whether the offset lies inside any non-caret
// region.
func (a *App) offsetSelected(off text.ByteOffset) bool {
	for _, r := range a.sel.Regions() {
		if !r.IsCaret() && off >= r.Min() && off < r.Max() {
			return true
		}
	}
	return false
}

// isSecondaryCaret reports whether a non-primary caret sits at the
// offset.
func (a *App) isSecondaryCaret(off text.ByteOffset) bool {
	regions := a.sel.Regions()
	for i, r := range regions {
		if i == 0 {
			continue
		}
		if r.End == off {
			return true
		}
	}
	return false
}

func (a *App) showPrimaryCursor(top, left int) {
	line, col := a.layout.OffsetToLineCol(a.doc, a.sel.Primary().End)
	if line < top || line > top+a.vp.Height()-1 {
		a.screen.HideCursor()
		return
	}
	x := screenCol(a.doc.LineText(line), col, a.tabWidth()) - left
	y := line - top
	if x < 0 || x >= a.vp.Width() {
		a.screen.HideCursor()
		return
	}
	a.screen.ShowCursor(x, y)
}

func (a *App) renderStatus() {
	line, col := a.layout.OffsetToLineCol(a.doc, a.sel.Primary().End)
	status := fmt.Sprintf(" Ln %d, Col %d  %d region(s)  ^Q quit  ^D add caret", line+1, col+1, a.sel.Len())
	style := tcell.StyleDefault.Reverse(true)
	w, h := a.screen.Size()
	y := h - 1
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		a.screen.SetContent(x, y, r, nil, style)
	}
}

func (a *App) tabWidth() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.Editor.TabWidth
}

// screenCol converts a byte column within a line to a screen column,
// accounting for tab stops.
func screenCol(lineText string, byteCol, tabWidth int) int {
	x := 0
	for i := 0; i < len(lineText) && i < byteCol; {
		r, size := utf8.DecodeRuneInString(lineText[i:])
		if r == '\t' {
			x = (x/tabWidth + 1) * tabWidth
		} else {
			x++
		}
		i += size
	}
	return x
}

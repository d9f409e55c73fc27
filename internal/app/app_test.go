package app

import (
	"sync"
	"testing"

	"github.com/rfinnegan/skein/internal/config"
	"github.com/rfinnegan/skein/internal/engine/movement"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(Options{LogLevel: "error"})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	a.log = NopLogger
	return a
}

func TestConfigReloadConcurrentWithMovement(t *testing.T) {
	// The watcher delivers reloads on its own goroutine while the event
	// loop moves the selection and scrolls. Run under the race detector.
	a := newTestApp(t)

	cfg := config.Default()
	cfg.Editor.ScrollMarginVertical = 1
	cfg.Editor.ScrollMarginHorizontal = 3

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			a.onConfigReload(cfg)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			a.move(movement.Down, false)
			a.move(movement.Up, false)
			a.render()
		}
	}()
	wg.Wait()

	if got := a.tabWidth(); got != cfg.Editor.TabWidth {
		t.Errorf("tab width after reload = %d, want %d", got, cfg.Editor.TabWidth)
	}
}

func TestMoveScrollsPrimaryIntoView(t *testing.T) {
	a := newTestApp(t)

	a.move(movement.EndOfDocument, false)
	if end := a.sel.Primary().End; end != a.doc.Len() {
		t.Errorf("primary end = %d, want %d", end, a.doc.Len())
	}
}

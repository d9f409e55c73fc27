package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc is called with the freshly loaded configuration after the
// watched file changes.
type ReloadFunc func(Config)

// Watcher monitors a configuration file and reloads it on change.
// Rapid successive writes are debounced; a reload that fails validation
// is dropped and the previous configuration stays in effect.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload ReloadFunc
	onError  func(error)

	fw   *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher creates a watcher for the given config file.
// The parent directory is watched so editors that replace the file
// (write-then-rename) are still observed.
func NewWatcher(path string, onReload ReloadFunc, onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: 200 * time.Millisecond,
		onReload: onReload,
		onError:  onError,
		fw:       fw,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.reportError(fmt.Errorf("watch config: %w", err))

		case <-timerC:
			cfg, err := Load(w.path)
			if err != nil {
				w.reportError(fmt.Errorf("reload config: %w", err))
				continue
			}
			if w.onReload != nil {
				w.onReload(cfg)
			}
		}
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

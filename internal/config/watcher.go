package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/litescript/ls-sofa/internal/logging"
)

// DefaultDebounce coalesces the burst of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads the config file when it changes and hands the result
// to a callback. The callback is not called for loads that fail; the
// error is logged and the previous config stays in effect.
type Watcher struct {
	path     string
	base     Config
	changed  map[string]bool
	onChange func(Config)
	log      *logging.Logger
	delay    time.Duration

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher watches path. base and changed are passed to Load on each
// reload so flag values keep their precedence.
func NewWatcher(path string, base Config, changed map[string]bool, onChange func(Config), log *logging.Logger) *Watcher {
	if log == nil {
		log = logging.Discard()
	}
	return &Watcher{
		path:     path,
		base:     base,
		changed:  changed,
		onChange: onChange,
		log:      log,
		delay:    DefaultDebounce,
	}
}

// Run blocks until ctx is done. It watches the file's directory, since
// editors often replace the file rather than write it in place.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	w.log.Debug("config watcher: watching %s", w.path)

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			w.stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounceReload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("config watcher: %v", err)
		}
	}
}

func (w *Watcher) debounceReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, w.reload)
}

func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

func (w *Watcher) reload() {
	if !FileExists(w.path) {
		return
	}
	cfg, err := Load(w.base, w.path, w.changed)
	if err != nil {
		w.log.Warn("config watcher: reload %s: %v", w.path, err)
		return
	}
	w.log.Info("config watcher: reloaded %s", w.path)
	w.onChange(cfg)
}

package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Logger is the subset of the app logger the watcher reports to.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Watcher reloads a config file when it changes on disk and hands the result to Poll.
type Watcher struct {
	path    string
	w       *fsnotify.Watcher
	updates chan Config
	done    chan struct{}
	log     Logger
	// Overrides are re-applied to every reloaded config.
	overrides Overrides
	debounce  time.Duration
}

// Watch starts watching path. The directory is watched rather than the file so editors that
// replace the file on save are still seen.
func Watch(path string, o Overrides, log Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	w := &Watcher{
		path:      filepath.Clean(path),
		w:         fw,
		updates:   make(chan Config, 1),
		done:      make(chan struct{}),
		log:       log,
		overrides: o,
		debounce:  100 * time.Millisecond,
	}
	go w.loop()
	return w, nil
}

// Poll returns the newest reloaded config without blocking. Only the newest pending config is
// kept.
func (w *Watcher) Poll() (Config, bool) {
	select {
	case c := <-w.updates:
		return c, true
	default:
		return Config{}, false
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.w.Close()
}

func (w *Watcher) loop() {
	var timer <-chan time.Time
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			timer = time.After(w.debounce)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.errorf("Config watch error: %v", err)
		case <-timer:
			timer = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.errorf("Config reload failed: %v", err)
		return
	}
	if err := cfg.Apply(w.overrides); err != nil {
		w.errorf("Config overrides failed: %v", err)
		return
	}
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	if w.log != nil {
		w.log.Infof("Config reloaded from %s", w.path)
	}
}

func (w *Watcher) errorf(format string, args ...any) {
	if w.log != nil {
		w.log.Errorf(format, args...)
	}
}

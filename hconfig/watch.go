package hconfig

import (
	"fmt"
	"io"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file at path whenever it is rewritten and
// invokes onChange with the freshly decoded and validated Config.
//
// onChange must only act on the fields that are safe to change between
// collections (AgeCycles, GCDelay): region capacities are fixed for an
// arena's lifetime and Watch never causes them to be re-applied to a
// live heap. A failed reload (bad JSON, failed validation) is dropped
// silently from onChange's perspective; callers that need to observe
// reload failures should call Load themselves on a timer instead.
//
// The returned io.Closer stops the watch goroutine and releases the
// underlying fsnotify watcher.
func Watch(path string, onChange func(*Config)) (io.Closer, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("hconfig: create watcher: %w", err)
	}

	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("hconfig: watch %s: %w", path, err)
	}

	done := make(chan struct{})

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}

				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				if cfg, err := Load(path); err == nil {
					onChange(cfg)
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	return &watchCloser{w: w, done: done}, nil
}

type watchCloser struct {
	w    *fsnotify.Watcher
	done chan struct{}
}

func (c *watchCloser) Close() error {
	close(c.done)
	return c.w.Close()
}

package conf

import (
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vectype/vectype/errors"
	"github.com/vectype/vectype/logger"
)

// SourceWatcher watches the analyzed source directory and triggers a
// regeneration callback when any .js module changes. Rapid editor write
// bursts are debounced.
type SourceWatcher struct {
	dir            string
	watcher        *fsnotify.Watcher
	callback       func()
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// NewSourceWatcher creates a watcher over dir. The callback runs on the
// watcher's goroutine after Start.
func NewSourceWatcher(dir string, callback func()) (*SourceWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch source directory %s", dir)
	}
	return &SourceWatcher{
		dir:            dir,
		watcher:        watcher,
		callback:       callback,
		debouncePeriod: 500 * time.Millisecond,
	}, nil
}

// Start blocks, dispatching debounced callbacks until Close is called.
func (sw *SourceWatcher) Start() {
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".js") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debugw("Source change detected", "file", event.Name, "op", event.Op.String())
			sw.scheduleCallback()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Source watcher error", "error", err)
		}
	}
}

// scheduleCallback resets the debounce timer so a burst of writes produces
// a single regeneration.
func (sw *SourceWatcher) scheduleCallback() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.debounceTimer != nil {
		sw.debounceTimer.Stop()
	}
	sw.debounceTimer = time.AfterFunc(sw.debouncePeriod, sw.callback)
}

// Close stops the watcher.
func (sw *SourceWatcher) Close() error {
	sw.mu.Lock()
	if sw.debounceTimer != nil {
		sw.debounceTimer.Stop()
	}
	sw.mu.Unlock()
	return sw.watcher.Close()
}

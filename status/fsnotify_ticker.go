package status

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
)

// FsNotifyTicker ticks whenever one of the watched paths changes.
// Ticks are not queued: a burst of events delivers a single tick.
type FsNotifyTicker struct {
	C <-chan time.Time

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Stop the FsNotifyTicker and release its watcher. Stop may be called
// more than once.
func (t *FsNotifyTicker) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
	<-t.done
}

// NewFsNotifyTicker creates ticker which ticks for each fsnotify on
// one of the provided paths.
func NewFsNotifyTicker(paths []string, logger *log.Logger) (*FsNotifyTicker, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// File watcher.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}

	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "watch %s", p)
		}
	}

	c := make(chan time.Time, 1)
	ticker := &FsNotifyTicker{
		C:    c,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(ticker.done)
		defer watcher.Close()
		for {
			select {
			case <-ticker.stop:
				logger.Debug("Stopping FsNotifyTicker", "paths", paths)
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				logger.Debug("FsNotifyTicker event", "event", event)
				select {
				case c <- time.Now():
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("FsNotifyTicker error", "err", err)
			}
		}
	}()
	return ticker, nil
}

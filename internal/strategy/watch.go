package strategy

import (
	"context"
	"os"
	"time"
)

// BookWatcher polls one strategy book and reports edits to it.
type BookWatcher struct {
	path     string
	interval time.Duration
	modTime  time.Time
}

// NewBookWatcher records the book's current modification time, so only
// later edits are reported.
func NewBookWatcher(path string, interval time.Duration) *BookWatcher {
	w := &BookWatcher{path: path, interval: interval}
	w.modTime, _ = w.stat()
	return w
}

// Changes polls until ctx is done, then closes the returned channel.
// Edits between two receives collapse into one notification.
func (w *BookWatcher) Changes(ctx context.Context) <-chan struct{} {
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !w.changed() {
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out
}

func (w *BookWatcher) changed() bool {
	mt, err := w.stat()
	if err != nil {
		// editors often replace the file; look again next tick
		return false
	}
	if mt.Equal(w.modTime) {
		return false
	}
	w.modTime = mt
	return true
}

func (w *BookWatcher) stat() (time.Time, error) {
	fi, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jacksmith/mb/internal/model"
)

// debounceWindow coalesces the burst of fsnotify events an editor or
// atomic rename produces for a single logical write.
const debounceWindow = 100 * time.Millisecond

// Watcher observes a slot's backing file for writes made by other
// processes and notifies subscribers with the newly persisted value.
// Writes made through the watched Slot itself are suppressed.
type Watcher struct {
	slot *Slot
	fsw  *fsnotify.Watcher

	mu   sync.Mutex
	subs []func(*model.Moodboard)
}

// NewWatcher creates a watcher for the given slot. The slot's parent
// directory is watched rather than the file itself so that atomic
// replace (write temp + rename) is still observed.
func NewWatcher(slot *Slot) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(slot.path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(slot.path), err)
	}
	return &Watcher{slot: slot, fsw: fsw}, nil
}

// Subscribe registers a callback invoked with each externally written
// value. Callbacks run on the watcher goroutine and should return
// promptly.
func (w *Watcher) Subscribe(fn func(*model.Moodboard)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subs = append(w.subs, fn)
}

// Run processes file events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.slot.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Debounce: editors and atomic renames emit event bursts.
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.dispatch()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.slot.Warnf("file watcher error: %v", err)
		}
	}
}

// dispatch reads the slot file and notifies subscribers unless the
// contents match this process's own last write.
func (w *Watcher) dispatch() {
	data, err := os.ReadFile(w.slot.path)
	if err != nil {
		// Deleted or mid-rename. Skip; a follow-up event will land.
		return
	}
	if w.slot.isOwnWrite(data) {
		return
	}

	m := w.slot.Read()
	if m == nil {
		return
	}

	w.mu.Lock()
	subs := make([]func(*model.Moodboard), len(w.subs))
	copy(subs, w.subs)
	w.mu.Unlock()

	for _, fn := range subs {
		fn(m)
	}
}

package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksmith/mb/internal/model"
)

// startWatcher runs w until the test ends.
func startWatcher(t *testing.T, w *Watcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestWatcherObservesExternalWrite(t *testing.T) {
	dir := t.TempDir()
	slot := NewSlot(filepath.Join(dir, "board.json"))

	w, err := NewWatcher(slot)
	require.NoError(t, err)

	updates := make(chan *model.Moodboard, 4)
	w.Subscribe(func(m *model.Moodboard) { updates <- m })
	startWatcher(t, w)

	// Simulate another process rewriting the slot.
	external := testBoard()
	external.Title = "written elsewhere"
	data, err := json.Marshal(external)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(slot.Path(), data, 0644))

	select {
	case got := <-updates:
		assert.Equal(t, "written elsewhere", got.Title)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for external-change notification")
	}
}

func TestWatcherSuppressesOwnWrites(t *testing.T) {
	dir := t.TempDir()
	slot := NewSlot(filepath.Join(dir, "board.json"))

	w, err := NewWatcher(slot)
	require.NoError(t, err)

	updates := make(chan *model.Moodboard, 4)
	w.Subscribe(func(m *model.Moodboard) { updates <- m })
	startWatcher(t, w)

	require.NoError(t, slot.Write(testBoard()))

	select {
	case <-updates:
		t.Fatal("watcher must not echo this process's own writes")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	slot := NewSlot(filepath.Join(dir, "board.json"))

	w, err := NewWatcher(slot)
	require.NoError(t, err)

	updates := make(chan *model.Moodboard, 4)
	w.Subscribe(func(m *model.Moodboard) { updates <- m })
	startWatcher(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))

	select {
	case <-updates:
		t.Fatal("unrelated files must not trigger notifications")
	case <-time.After(500 * time.Millisecond):
	}
}

package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/jacksmith/mb/internal/model"
)

// Slot is a durable key-value slot holding one JSON-serialized moodboard.
//
// Reads fail soft: a missing or corrupt file yields nil (no board) and a
// warning, never an error. Writes return errors, but callers treat them
// as recoverable: the in-memory snapshot stays authoritative and only
// durability is lost for that write.
type Slot struct {
	path string

	mu        sync.Mutex
	lastWrite []byte // serialized form of the last write, for self-change detection

	// Warnf receives soft-failure reports (corrupt slot contents).
	// Defaults to stderr.
	Warnf func(format string, args ...any)
}

// NewSlot returns a Slot backed by the given file path.
func NewSlot(path string) *Slot {
	return &Slot{
		path: path,
		Warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}
}

// Path returns the file path backing the slot.
func (sl *Slot) Path() string {
	return sl.path
}

// Read returns the persisted moodboard, or nil if the slot is empty or
// its contents cannot be parsed. Parse failures are reported through
// Warnf and never returned as errors.
func (sl *Slot) Read() *model.Moodboard {
	data, err := os.ReadFile(sl.path)
	if err != nil {
		if !os.IsNotExist(err) {
			sl.Warnf("failed to read %s: %v", sl.path, err)
		}
		return nil
	}

	var m model.Moodboard
	if err := json.Unmarshal(data, &m); err != nil {
		sl.Warnf("failed to parse %s: %v", sl.path, err)
		return nil
	}
	return &m
}

// Write serializes and persists the moodboard. The returned error is
// recoverable: the caller's in-memory state remains valid, only this
// write's durability is in doubt.
func (sl *Slot) Write(m *model.Moodboard) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize moodboard: %w", err)
	}
	data = append(data, '\n')

	sl.mu.Lock()
	sl.lastWrite = data
	sl.mu.Unlock()

	if err := os.WriteFile(sl.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", sl.path, err)
	}
	return nil
}

// Clear removes the persisted value. A subsequent Read returns nil.
func (sl *Slot) Clear() error {
	sl.mu.Lock()
	sl.lastWrite = nil
	sl.mu.Unlock()

	err := os.Remove(sl.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear %s: %w", sl.path, err)
	}
	return nil
}

// isOwnWrite reports whether data matches the last value written through
// this slot. The watcher uses it to suppress self-notification.
func (sl *Slot) isOwnWrite(data []byte) bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.lastWrite != nil && bytes.Equal(sl.lastWrite, data)
}

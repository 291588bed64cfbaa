package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Init(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Root())
	assert.DirExists(t, s.MbPath())
	assert.FileExists(t, filepath.Join(s.MbPath(), "config.yaml"))

	// Second init fails
	_, err = Init(dir)
	assert.Error(t, err)

	// Open succeeds once initialized
	s2, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, s.MbPath(), s2.MbPath())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".mb/ directory not found")
}

func TestOpenNotADirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mb"), []byte("x"), 0644))

	_, err := Open(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestSlotPaths(t *testing.T) {
	dir := t.TempDir()
	s, err := Init(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".mb", "board.json"), s.BoardSlot().Path())
	assert.Equal(t, filepath.Join(dir, ".mb", "backup.json"), s.BackupSlot().Path())

	// The two slots are independent files
	require.NoError(t, s.BoardSlot().Write(testBoard()))
	assert.Nil(t, s.BackupSlot().Read())
}

// Package storage provides file system operations for .mb/ directories.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// mbDir is the name of the mb directory.
	mbDir = ".mb"
	// configFile is the name of the config file within .mb/.
	configFile = "config.yaml"
	// boardFile is the primary persisted slot for the moodboard.
	boardFile = "board.json"
	// backupFile is the secondary slot written on explicit save.
	backupFile = "backup.json"
)

// StorageConfig contains settings stored in .mb/config.yaml.
type StorageConfig struct {
	Version int `yaml:"version"`
}

// Storage provides access to a .mb/ directory.
type Storage struct {
	root string // path to directory containing .mb/
}

// Open returns a Storage for the given directory.
// Returns error if .mb/ does not exist.
func Open(dir string) (*Storage, error) {
	mbPath := filepath.Join(dir, mbDir)
	info, err := os.Stat(mbPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(".mb/ directory not found in %s (run `mb init` first)", dir)
		}
		return nil, fmt.Errorf("failed to access .mb/: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".mb is not a directory")
	}

	return &Storage{root: dir}, nil
}

// Init creates the .mb/ directory structure.
// Returns error if .mb/ already exists.
func Init(dir string) (*Storage, error) {
	mbPath := filepath.Join(dir, mbDir)

	if _, err := os.Stat(mbPath); err == nil {
		return nil, fmt.Errorf(".mb/ directory already exists in %s", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for .mb/: %w", err)
	}

	if err := os.MkdirAll(mbPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .mb/: %w", err)
	}

	cfg := StorageConfig{Version: 1}
	cfgData, err := yaml.Marshal(&cfg)
	if err != nil {
		os.RemoveAll(mbPath)
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	cfgPath := filepath.Join(mbPath, configFile)
	if err := os.WriteFile(cfgPath, cfgData, 0644); err != nil {
		os.RemoveAll(mbPath)
		return nil, fmt.Errorf("failed to write config.yaml: %w", err)
	}

	return &Storage{root: dir}, nil
}

// Root returns the root directory containing .mb/.
func (s *Storage) Root() string {
	return s.root
}

// MbPath returns the path to the .mb/ directory.
func (s *Storage) MbPath() string {
	return filepath.Join(s.root, mbDir)
}

// BoardSlot returns the primary persisted slot for the moodboard.
func (s *Storage) BoardSlot() *Slot {
	return NewSlot(filepath.Join(s.MbPath(), boardFile))
}

// BackupSlot returns the secondary slot written on explicit save.
// It is independent of the primary slot and restored only manually.
func (s *Storage) BackupSlot() *Slot {
	return NewSlot(filepath.Join(s.MbPath(), backupFile))
}

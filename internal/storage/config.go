package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to .mb/).
	userConfigFile = ".mbconfig.yaml"

	// pexelsKeyEnv overrides the config file's API key when set.
	pexelsKeyEnv = "PEXELS_API_KEY"

	// Default configuration values
	DefaultPhotoSource = "mock"
	DefaultPostCount   = 10
)

// Config represents user configuration from .mbconfig.yaml.
// This file is user-managed and never written by mb.
type Config struct {
	// PhotoSource selects where generated posts come from: "mock" for the
	// offline generator or "pexels" for the real API.
	PhotoSource string `yaml:"photo_source"`

	// PexelsAPIKey authorizes Pexels API requests. The PEXELS_API_KEY
	// environment variable (or a .env entry) takes precedence.
	PexelsAPIKey string `yaml:"pexels_api_key"`

	// DefaultPostCount is the number of posts `mb generate` fetches when
	// --count is not specified.
	DefaultPostCount int `yaml:"default_post_count"`

	// LookupAuthors enables the remote author profile lookup for
	// generated posts. When false, the deterministic placeholder author
	// is always used.
	LookupAuthors bool `yaml:"lookup_authors"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		PhotoSource:      DefaultPhotoSource,
		DefaultPostCount: DefaultPostCount,
		LookupAuthors:    true,
	}
}

// LoadConfig loads .mbconfig.yaml if it exists, otherwise returns defaults.
// The config file is a sibling to .mb/ (in the same directory).
// Partial config files are merged with defaults. A .env file in the same
// directory is loaded first, and PEXELS_API_KEY from the environment
// overrides the file's key.
func (s *Storage) LoadConfig() (*Config, error) {
	// Best effort: missing .env is the normal case.
	godotenv.Load(filepath.Join(s.root, ".env"))

	cfg := DefaultConfig()

	configPath := filepath.Join(s.root, userConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	}

	if key := os.Getenv(pexelsKeyEnv); key != "" {
		cfg.PexelsAPIKey = key
	}

	if cfg.PhotoSource != "mock" && cfg.PhotoSource != "pexels" {
		return nil, fmt.Errorf("invalid photo_source %q: must be \"mock\" or \"pexels\"", cfg.PhotoSource)
	}
	if cfg.DefaultPostCount < 1 {
		return nil, fmt.Errorf("invalid default_post_count %d: must be at least 1", cfg.DefaultPostCount)
	}

	return cfg, nil
}

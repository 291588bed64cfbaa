package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/jacksmith/mb/internal/board"
	"github.com/jacksmith/mb/internal/photos"
	"github.com/jacksmith/mb/internal/profile"
	"github.com/jacksmith/mb/internal/storage"
)

// openStore opens the .mb/ directory in the current directory and
// builds the board store with the photo and author sources selected by
// the user config.
func openStore() (*storage.Storage, *board.Store, *storage.Config, error) {
	s, err := storage.Open(".")
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	return s, newStore(s, cfg), cfg, nil
}

// newStore wires a board store from storage and config.
func newStore(s *storage.Storage, cfg *storage.Config) *board.Store {
	var photoSrc photos.Source
	if cfg.PhotoSource == "pexels" {
		photoSrc = photos.NewBreaker(photos.NewPexelsClient(cfg.PexelsAPIKey))
	} else {
		photoSrc = photos.NewMockSource(time.Now().UnixNano())
	}

	var authorSrc profile.Source
	if cfg.LookupAuthors {
		authorSrc = profile.NewRandomUserClient()
	} else {
		authorSrc = profile.Disabled{}
	}

	return board.NewStore(s.BoardSlot(), s.BackupSlot(), photoSrc, authorSrc)
}

// cmdContext returns the command's context, or a background context
// when invoked without one (direct calls in tests).
func cmdContext(cmd *cobra.Command) context.Context {
	if cmd == nil {
		return context.Background()
	}
	return cmd.Context()
}

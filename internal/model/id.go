package model

import "github.com/google/uuid"

// NewID returns a new opaque unique identifier.
// IDs are UUIDs; they carry no meaning beyond uniqueness.
func NewID() string {
	return uuid.New().String()
}

// IsValidID reports whether s looks like an id produced by NewID.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

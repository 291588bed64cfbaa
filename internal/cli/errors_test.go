package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Type: "cluster", ID: "3f1a"}
	assert.Equal(t, "cluster 3f1a not found", err.Error())

	// The board itself has no id worth echoing
	err = &NotFoundError{Type: "moodboard"}
	assert.Equal(t, "no moodboard found", err.Error())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "count", Message: "must be at least 1"}
	assert.Equal(t, "invalid count: must be at least 1", err.Error())

	err = &ValidationError{Message: "nothing to change"}
	assert.Equal(t, "nothing to change", err.Error())
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "error: boom", FormatError(errors.New("boom")))
}

package quiz

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when no quiz exists for a given id.
	ErrNotFound = errors.New("quiz not found")

	// ErrMissingParam is returned when a command requires an id argument
	// and none was supplied.
	ErrMissingParam = errors.New("missing parameter: id")

	// ErrInvalidParam is returned when an id argument has no leading integer.
	ErrInvalidParam = errors.New("invalid parameter: id must be a number")
)

// ValidationError carries one message per field that failed storage-layer
// validation. Handlers print each message on its own line.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

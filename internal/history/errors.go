package history

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the history file does not exist
	ErrNotFound = errors.New("history file not found")

	// ErrUndecodable indicates no encoding in the fallback list could decode the file
	ErrUndecodable = errors.New("history file could not be decoded")

	// ErrMalformed indicates the file decoded as text but is not valid JSON
	ErrMalformed = errors.New("history file is not valid JSON")

	// ErrUnexpectedShape indicates valid JSON that is neither an array nor an object with entries
	ErrUnexpectedShape = errors.New("unexpected history format")
)

// LoadError describes why a history file yielded no records
type LoadError struct {
	Path     string // File being loaded
	Encoding string // Encoding in use when the error occurred, if any
	Err      error  // Underlying error
}

func (e *LoadError) Error() string {
	if e.Encoding == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Path, e.Encoding, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedContent indicates a content record failed structural validation.
	ErrMalformedContent = errors.New("malformed content")
	// ErrNoQuestions indicates a session was built over empty content.
	ErrNoQuestions = errors.New("no questions loaded")
)

// MalformedContentf wraps ErrMalformedContent with record-level detail so
// callers can both match the sentinel and report what was wrong.
func MalformedContentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedContent, fmt.Sprintf(format, args...))
}

package notes

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by *NotFoundError.
var ErrNotFound = errors.New("note not found")

// ErrInvalidNote is matched by *ValidationError.
var ErrInvalidNote = errors.New("invalid note")

// ErrCorruptData is returned by Decode when the persisted collection cannot
// be parsed.
var ErrCorruptData = errors.New("corrupt note data")

// NotFoundError reports a mutation that referenced an unknown id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("note not found: %s", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError reports a draft rejected before reaching the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid note: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidNote
}

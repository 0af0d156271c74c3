package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	// The operation was not attempted.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a record is absent or owned by a
	// different owner. The two cases are deliberately indistinguishable so
	// that ids cannot be probed across owners.
	ErrNotFound = errors.New("not found")
)

// invalidInput wraps ErrInvalidInput with a field-level message.
func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

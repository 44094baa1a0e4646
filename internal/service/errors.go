package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation reports a task candidate without title or description.
	ErrValidation = errors.New("title and description are required")
	// ErrNotFound reports an update against an unknown task identifier.
	ErrNotFound = errors.New("task not found")
	// ErrEmpty signals an empty result set. It is a designed answer, not a failure.
	ErrEmpty = errors.New("empty result set")
	// ErrUnhandled wraps any persistence failure. Callers must not expose the cause.
	ErrUnhandled = errors.New("unhandled failure")
)

func unhandled(err error) error {
	return fmt.Errorf("%w: %w", ErrUnhandled, err)
}

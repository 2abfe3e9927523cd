package ochre

import "fmt"

// UnrecoverableError marks a failure raised by code that must never fail. It
// is delivered by panic from Must and MustDo and is not meant to be caught.
type UnrecoverableError struct {
	Message string
	cause   error
}

// Unrecoverable builds an UnrecoverableError from a message and an optional
// cause.
func Unrecoverable(message string, cause error) *UnrecoverableError {
	return &UnrecoverableError{Message: message, cause: cause}
}

func (e *UnrecoverableError) Error() string {
	switch {
	case e.Message != "" && e.cause != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	case e.cause != nil:
		return e.cause.Error()
	default:
		return e.Message
	}
}

func (e *UnrecoverableError) Unwrap() error { return e.cause }

// Must returns value, panicking with an *UnrecoverableError when err is
// non-nil. Use it at trust boundaries where a failure indicates a bug.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(&UnrecoverableError{cause: err})
	}
	return value
}

// MustDo runs work, panicking with an *UnrecoverableError if it fails.
func MustDo(work func() error) {
	if err := work(); err != nil {
		panic(&UnrecoverableError{cause: err})
	}
}

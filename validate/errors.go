package validate

import "fmt"

// Error is the failure kind raised when a validation step itself fails, as
// opposed to a value merely being rejected. It records the scope context that
// was active when the underlying failure occurred.
type Error struct {
	Context  Context
	Extended string
	cause    error
}

// NewError builds a validation error for context with an optional extended
// message and cause.
func NewError(context Context, extended string, cause error) *Error {
	return &Error{Context: context, Extended: extended, cause: cause}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("validation step '%s' failed", e.Context.Step)
	switch {
	case e.Extended != "":
		return fmt.Sprintf("%s: %s", msg, e.Extended)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", msg, e.cause)
	default:
		return msg
	}
}

func (e *Error) Unwrap() error { return e.cause }

// WrapError tags err with context unless it is already an *Error carrying an
// equal context, in which case it passes through unchanged.
func WrapError(context Context, err error) error {
	if ve, ok := err.(*Error); ok && ve.Context == context {
		return err
	}
	return &Error{Context: context, cause: err}
}

// InvalidValueError reports a value rejected by Validate. It carries the
// validator's expected and received descriptions and no cause chain; a
// rejected input is a normal outcome, not an exceptional failure.
type InvalidValueError struct {
	Expected string
	Received string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("value failed validation; expected '%s', received '%s'", e.Expected, e.Received)
}

package convert

import "fmt"

// Error is the failure kind raised by converter operations. It records the
// scope context that was active when the underlying failure occurred.
type Error struct {
	Context  Context
	Extended string
	cause    error
}

// NewError builds a conversion error for context with an optional extended
// message and cause.
func NewError(context Context, extended string, cause error) *Error {
	return &Error{Context: context, Extended: extended, cause: cause}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("failed to invoke '%s'", e.Context.Method)
	if e.Context.Action != "" {
		msg = fmt.Sprintf("failed to invoke '%s' (%s)", e.Context.Method, e.Context.Action)
	}
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
// equal context, in which case it passes through unchanged. This keeps an
// error that bubbles through nested scopes tagged once per distinct context.
func WrapError(context Context, err error) error {
	if ce, ok := err.(*Error); ok && ce.Context == context {
		return err
	}
	return &Error{Context: context, cause: err}
}

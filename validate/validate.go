// Package validate implements a composable predicate algebra built on the
// ochre scope discipline. Validators report expected-vs-received text and
// combine via All, Any, and Chain.
package validate

import (
	"fmt"

	"github.com/jaxydog/ochre"
)

// Context tags a validator scope with the internal step underway. Contexts
// are immutable values compared structurally.
type Context struct {
	Step string
}

func (c Context) String() string {
	return fmt.Sprintf("step '%s'", c.Step)
}

// Validator is a named predicate over values of type T. Expected and
// Received are descriptive, side-effect-free, and safe to call whether or
// not Test has failed.
//
// Each validator owns a single active-scope slot; concurrent calls on one
// instance contend for it and the loser fails fast with ochre.ErrScopeActive.
type Validator[T any] interface {
	Expected() string
	Received(value T) string
	Test(value T) (bool, error)
}

// Validate runs v.Test and turns a false result into an *InvalidValueError
// carrying the expected and received descriptions. This is the only place a
// rejected input becomes a failure; errors from Test itself pass through.
func Validate[T any](v Validator[T], value T) error {
	ok, err := v.Test(value)
	if err != nil {
		return err
	}
	if !ok {
		return &InvalidValueError{Expected: v.Expected(), Received: v.Received(value)}
	}
	return nil
}

// NewOwner returns a scope owner wired to the validator error family.
func NewOwner() *ochre.Owner[Context] {
	return ochre.NewOwner[Context](WrapError)
}

// InScope opens a scope for context on owner, runs work through it once, and
// closes the scope again, wrapping any failure as a validation error.
func InScope[T any](owner *ochre.Owner[Context], context Context, work func() (T, error)) (T, error) {
	return ochre.Do(owner, context, func(s *ochre.Scope[Context]) (T, error) {
		return ochre.Run(s, work)
	})
}

// Package convert implements a bidirectional converter algebra built on the
// ochre scope discipline. Every converter operation runs inside a scope
// tagged with the executing method and sub-action, so a failure deep in a
// composition surfaces with the innermost attribution.
package convert

import (
	"fmt"

	"github.com/jaxydog/ochre"
)

// Method identifies which converter operation is executing.
type Method string

const (
	MethodInto Method = "into"
	MethodFrom Method = "from"
)

// Context tags a converter scope with the executing method and, optionally,
// the internal action underway. Contexts are immutable values compared
// structurally.
type Context struct {
	Method Method
	Action string
}

func (c Context) String() string {
	if c.Action == "" {
		return fmt.Sprintf("method '%s'", c.Method)
	}
	return fmt.Sprintf("method '%s' while '%s'", c.Method, c.Action)
}

// Converter maps values of type T to and from type U. Implementations intend
// round-trip fidelity: From(Into(t)) reconstructs a value equivalent to t,
// and Into(From(u)) one equivalent to u, for all valid inputs.
//
// Each converter owns a single active-scope slot; concurrent calls on one
// instance contend for it and the loser fails fast with ochre.ErrScopeActive.
type Converter[T, U any] interface {
	Into(value T) (U, error)
	From(value U) (T, error)
}

// NewOwner returns a scope owner wired to the converter error family. Leaf
// implementations outside this package use it to join the scope discipline.
func NewOwner() *ochre.Owner[Context] {
	return ochre.NewOwner[Context](WrapError)
}

// InScope opens a scope for context on owner, runs work through it once, and
// closes the scope again, wrapping any failure as a conversion error.
func InScope[T any](owner *ochre.Owner[Context], context Context, work func() (T, error)) (T, error) {
	return ochre.Do(owner, context, func(s *ochre.Scope[Context]) (T, error) {
		return ochre.Run(s, work)
	})
}

package convert

import "github.com/jaxydog/ochre"

type customConverter[T, U any] struct {
	owner *ochre.Owner[Context]
	into  func(T) (U, error)
	from  func(U) (T, error)
}

// Custom builds a converter from a pair of conversion functions. Both run
// inside a scope tagged with the action "custom implementation".
func Custom[T, U any](into func(T) (U, error), from func(U) (T, error)) Converter[T, U] {
	return &customConverter[T, U]{owner: NewOwner(), into: into, from: from}
}

func (c *customConverter[T, U]) Into(value T) (U, error) {
	return InScope(c.owner, Context{Method: MethodInto, Action: "custom implementation"}, func() (U, error) {
		return c.into(value)
	})
}

func (c *customConverter[T, U]) From(value U) (T, error) {
	return InScope(c.owner, Context{Method: MethodFrom, Action: "custom implementation"}, func() (T, error) {
		return c.from(value)
	})
}

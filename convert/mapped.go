package convert

import "github.com/jaxydog/ochre"

type inputMapped[V, T, U any] struct {
	owner    *ochre.Owner[Context]
	delegate Converter[T, U]
	into     func(T) (V, error)
	from     func(V) (T, error)
}

// MapInput composes c with a mapping on its input side, producing a converter
// between V and U. Mapping and delegate conversion each run in their own
// scope, so a failure is attributed to whichever half actually failed. The
// delegate is never mutated, only wrapped by reference.
func MapInput[V, T, U any](c Converter[T, U], into func(T) (V, error), from func(V) (T, error)) Converter[V, U] {
	return &inputMapped[V, T, U]{owner: NewOwner(), delegate: c, into: into, from: from}
}

func (m *inputMapped[V, T, U]) Into(value V) (U, error) {
	mapped, err := InScope(m.owner, Context{Method: MethodInto, Action: "mapping"}, func() (T, error) {
		return m.from(value)
	})
	if err != nil {
		var zero U
		return zero, err
	}
	return InScope(m.owner, Context{Method: MethodInto, Action: "conversion"}, func() (U, error) {
		return m.delegate.Into(mapped)
	})
}

func (m *inputMapped[V, T, U]) From(value U) (V, error) {
	converted, err := InScope(m.owner, Context{Method: MethodFrom, Action: "conversion"}, func() (T, error) {
		return m.delegate.From(value)
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return InScope(m.owner, Context{Method: MethodFrom, Action: "mapping"}, func() (V, error) {
		return m.into(converted)
	})
}

type outputMapped[V, T, U any] struct {
	owner    *ochre.Owner[Context]
	delegate Converter[T, U]
	into     func(U) (V, error)
	from     func(V) (U, error)
}

// MapOutput composes c with a mapping on its output side, producing a
// converter between T and V. Symmetric to MapInput.
func MapOutput[V, T, U any](c Converter[T, U], into func(U) (V, error), from func(V) (U, error)) Converter[T, V] {
	return &outputMapped[V, T, U]{owner: NewOwner(), delegate: c, into: into, from: from}
}

func (m *outputMapped[V, T, U]) Into(value T) (V, error) {
	converted, err := InScope(m.owner, Context{Method: MethodInto, Action: "conversion"}, func() (U, error) {
		return m.delegate.Into(value)
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return InScope(m.owner, Context{Method: MethodInto, Action: "mapping"}, func() (V, error) {
		return m.into(converted)
	})
}

func (m *outputMapped[V, T, U]) From(value V) (T, error) {
	mapped, err := InScope(m.owner, Context{Method: MethodFrom, Action: "mapping"}, func() (U, error) {
		return m.from(value)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return InScope(m.owner, Context{Method: MethodFrom, Action: "conversion"}, func() (T, error) {
		return m.delegate.From(mapped)
	})
}

// Package jsonconv provides converters between Go values and jsonval
// document nodes: primitive leaves, a numeric ladder mapped over Number, and
// collection adapters for whole arrays and objects.
//
// The exported converters are shared singletons. They are effectively
// immutable, but each owns a single active-scope slot, so concurrent use of
// one converter requires external serialization; concurrent call paths
// should otherwise hold their own instances built with the constructors.
package jsonconv

import (
	"encoding/json"

	"github.com/jaxydog/ochre"
	"github.com/jaxydog/ochre/convert"
	"github.com/jaxydog/ochre/jsonval"
)

// Converter is a bidirectional transform between a Go value and a JSON
// document node.
type Converter[T any] = convert.Converter[T, *jsonval.Value]

type leaf[T any] struct {
	owner *ochre.Owner[convert.Context]
	into  func(T) (*jsonval.Value, error)
	from  func(*jsonval.Value) (T, error)
}

func newLeaf[T any](into func(T) (*jsonval.Value, error), from func(*jsonval.Value) (T, error)) Converter[T] {
	return &leaf[T]{owner: convert.NewOwner(), into: into, from: from}
}

func (l *leaf[T]) Into(value T) (*jsonval.Value, error) {
	return convert.InScope(l.owner, convert.Context{Method: convert.MethodInto}, func() (*jsonval.Value, error) {
		return l.into(value)
	})
}

func (l *leaf[T]) From(value *jsonval.Value) (T, error) {
	return convert.InScope(l.owner, convert.Context{Method: convert.MethodFrom}, func() (T, error) {
		return l.from(value)
	})
}

// NewBool returns a fresh converter between Go booleans and JSON booleans.
func NewBool() Converter[bool] {
	return newLeaf(
		func(v bool) (*jsonval.Value, error) { return jsonval.Bool(v), nil },
		func(v *jsonval.Value) (bool, error) { return v.AsBool() },
	)
}

// NewNumber returns a fresh converter between json.Number literals and JSON
// numbers.
func NewNumber() Converter[json.Number] {
	return newLeaf(
		func(n json.Number) (*jsonval.Value, error) { return jsonval.Number(n), nil },
		func(v *jsonval.Value) (json.Number, error) { return v.AsNumber() },
	)
}

// NewString returns a fresh converter between Go strings and JSON strings.
func NewString() Converter[string] {
	return newLeaf(
		func(s string) (*jsonval.Value, error) { return jsonval.String(s), nil },
		func(v *jsonval.Value) (string, error) { return v.AsString() },
	)
}

// Shared primitive converters.
var (
	Bool   = NewBool()
	Number = NewNumber()
	String = NewString()
)

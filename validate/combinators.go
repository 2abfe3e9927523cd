package validate

import (
	"fmt"
	"strings"

	"github.com/jaxydog/ochre"
)

type customValidator[T any] struct {
	owner     *ochre.Owner[Context]
	expected  string
	received  func(T) string
	predicate func(T) bool
}

// Custom builds a leaf validator from an expectation description, a
// received-value description function, and a plain predicate.
func Custom[T any](expected string, received func(T) string, predicate func(T) bool) Validator[T] {
	return &customValidator[T]{owner: NewOwner(), expected: expected, received: received, predicate: predicate}
}

func (v *customValidator[T]) Expected() string        { return v.expected }
func (v *customValidator[T]) Received(value T) string { return v.received(value) }

func (v *customValidator[T]) Test(value T) (bool, error) {
	return InScope(v.owner, Context{Step: "custom implementation"}, func() (bool, error) {
		return v.predicate(value), nil
	})
}

type allValidator[T any] struct {
	owner      *ochre.Owner[Context]
	validators []Validator[T]
}

// All is the conjunction of validators. Test opens one shared scope and
// short-circuits on the first false child; a child failure is wrapped by
// that shared scope.
func All[T any](validators ...Validator[T]) Validator[T] {
	return &allValidator[T]{owner: NewOwner(), validators: validators}
}

func (v *allValidator[T]) Expected() string {
	return "all of: " + joinExpected(v.validators)
}

// Received joins children as "any of" because when All rejects a value, at
// least one child's report is the relevant one.
func (v *allValidator[T]) Received(value T) string {
	return "any of: " + joinReceived(v.validators, value)
}

func (v *allValidator[T]) Test(value T) (bool, error) {
	return ochre.Do(v.owner, Context{Step: "iterative testing"}, func(s *ochre.Scope[Context]) (bool, error) {
		for _, child := range v.validators {
			ok, err := ochre.Run(s, func() (bool, error) { return child.Test(value) })
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	})
}

type anyValidator[T any] struct {
	owner      *ochre.Owner[Context]
	validators []Validator[T]
}

// Any is the disjunction of validators. Test opens one shared scope and
// short-circuits on the first true child.
func Any[T any](validators ...Validator[T]) Validator[T] {
	return &anyValidator[T]{owner: NewOwner(), validators: validators}
}

func (v *anyValidator[T]) Expected() string {
	return "any of: " + joinExpected(v.validators)
}

// Received joins children as "all of" because when Any rejects a value,
// every child rejected it, so every report is relevant.
func (v *anyValidator[T]) Received(value T) string {
	return "all of: " + joinReceived(v.validators, value)
}

func (v *anyValidator[T]) Test(value T) (bool, error) {
	return ochre.Do(v.owner, Context{Step: "iterative testing"}, func(s *ochre.Scope[Context]) (bool, error) {
		for _, child := range v.validators {
			ok, err := ochre.Run(s, func() (bool, error) { return child.Test(value) })
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	})
}

type chainValidator[T any] struct {
	owner   *ochre.Owner[Context]
	first   Validator[T]
	second  Validator[T]
	combine func(bool, bool) bool
}

// Chain pairs two validators with an explicit combining function. Both
// children are always evaluated. The expected and received descriptions use
// fixed "and"/"or" joins regardless of combine's semantics, so combiners
// with AND-like behavior read most naturally.
func Chain[T any](first, second Validator[T], combine func(bool, bool) bool) Validator[T] {
	return &chainValidator[T]{owner: NewOwner(), first: first, second: second, combine: combine}
}

func (v *chainValidator[T]) Expected() string {
	return fmt.Sprintf("%s and %s", v.first.Expected(), v.second.Expected())
}

func (v *chainValidator[T]) Received(value T) string {
	return fmt.Sprintf("%s or %s", v.first.Received(value), v.second.Received(value))
}

func (v *chainValidator[T]) Test(value T) (bool, error) {
	return ochre.Do(v.owner, Context{Step: "chaining"}, func(s *ochre.Scope[Context]) (bool, error) {
		first, err := ochre.Run(s, func() (bool, error) { return v.first.Test(value) })
		if err != nil {
			return false, err
		}
		second, err := ochre.Run(s, func() (bool, error) { return v.second.Test(value) })
		if err != nil {
			return false, err
		}
		return v.combine(first, second), nil
	})
}

func joinExpected[T any](validators []Validator[T]) string {
	parts := make([]string, 0, len(validators))
	for _, v := range validators {
		parts = append(parts, v.Expected())
	}
	return strings.Join(parts, ", ")
}

func joinReceived[T any](validators []Validator[T], value T) string {
	parts := make([]string, 0, len(validators))
	for _, v := range validators {
		parts = append(parts, v.Received(value))
	}
	return strings.Join(parts, ", ")
}

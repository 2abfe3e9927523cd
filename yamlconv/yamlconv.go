// Package yamlconv provides converters between Go values and YAML nodes,
// mirroring jsonconv over gopkg.in/yaml.v3 documents. Scalar leaves build
// tagged scalar nodes on the way in and decode through yaml on the way out,
// so a tag/type mismatch surfaces as the wrapped underlying cause.
package yamlconv

import (
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jaxydog/ochre"
	"github.com/jaxydog/ochre/convert"
)

// Converter is a bidirectional transform between a Go value and a YAML node.
type Converter[T any] = convert.Converter[T, *yaml.Node]

type leaf[T any] struct {
	owner *ochre.Owner[convert.Context]
	into  func(T) (*yaml.Node, error)
	from  func(*yaml.Node) (T, error)
}

func newLeaf[T any](into func(T) (*yaml.Node, error), from func(*yaml.Node) (T, error)) Converter[T] {
	return &leaf[T]{owner: convert.NewOwner(), into: into, from: from}
}

func (l *leaf[T]) Into(value T) (*yaml.Node, error) {
	return convert.InScope(l.owner, convert.Context{Method: convert.MethodInto}, func() (*yaml.Node, error) {
		return l.into(value)
	})
}

func (l *leaf[T]) From(value *yaml.Node) (T, error) {
	return convert.InScope(l.owner, convert.Context{Method: convert.MethodFrom}, func() (T, error) {
		return l.from(value)
	})
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func decodeScalar[T any](node *yaml.Node, tag string) (T, error) {
	var out T
	if node.Kind != yaml.ScalarNode {
		return out, fmt.Errorf("expected a scalar node, got kind %d", node.Kind)
	}
	if node.Tag != "" && node.Tag != tag {
		return out, fmt.Errorf("expected a %s scalar, got %s", tag, node.Tag)
	}
	if err := node.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

// NewBool returns a fresh converter between Go booleans and !!bool scalars.
func NewBool() Converter[bool] {
	return newLeaf(
		func(v bool) (*yaml.Node, error) { return scalar("!!bool", strconv.FormatBool(v)), nil },
		func(n *yaml.Node) (bool, error) { return decodeScalar[bool](n, "!!bool") },
	)
}

// NewInt64 returns a fresh converter between int64 and !!int scalars.
func NewInt64() Converter[int64] {
	return newLeaf(
		func(v int64) (*yaml.Node, error) { return scalar("!!int", strconv.FormatInt(v, 10)), nil },
		func(n *yaml.Node) (int64, error) { return decodeScalar[int64](n, "!!int") },
	)
}

// NewFloat64 returns a fresh converter between float64 and !!float scalars.
func NewFloat64() Converter[float64] {
	return newLeaf(
		func(v float64) (*yaml.Node, error) {
			return scalar("!!float", strconv.FormatFloat(v, 'g', -1, 64)), nil
		},
		func(n *yaml.Node) (float64, error) { return decodeScalar[float64](n, "!!float") },
	)
}

// NewString returns a fresh converter between Go strings and !!str scalars.
func NewString() Converter[string] {
	return newLeaf(
		func(s string) (*yaml.Node, error) { return scalar("!!str", s), nil },
		func(n *yaml.Node) (string, error) { return decodeScalar[string](n, "!!str") },
	)
}

// Shared scalar converters.
var (
	Bool    = NewBool()
	Int64   = NewInt64()
	Float64 = NewFloat64()
	String  = NewString()
)

type listConverter[T any] struct {
	owner    *ochre.Owner[convert.Context]
	delegate Converter[T]
}

// List lifts an element converter to whole YAML sequences with the same
// shared-scope, fail-fast behavior as jsonconv.List.
func List[T any](c Converter[T]) Converter[[]T] {
	return &listConverter[T]{owner: convert.NewOwner(), delegate: c}
}

func (l *listConverter[T]) Into(value []T) (*yaml.Node, error) {
	return ochre.Do(l.owner, convert.Context{Method: convert.MethodInto, Action: "sequence construction"},
		func(s *ochre.Scope[convert.Context]) (*yaml.Node, error) {
			content := make([]*yaml.Node, 0, len(value))
			for _, entry := range value {
				node, err := ochre.Run(s, func() (*yaml.Node, error) { return l.delegate.Into(entry) })
				if err != nil {
					return nil, err
				}
				content = append(content, node)
			}
			return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: content}, nil
		})
}

func (l *listConverter[T]) From(value *yaml.Node) ([]T, error) {
	content, err := convert.InScope(l.owner, convert.Context{Method: convert.MethodFrom, Action: "sequence resolution"},
		func() ([]*yaml.Node, error) {
			if value.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("expected a sequence node, got kind %d", value.Kind)
			}
			return value.Content, nil
		})
	if err != nil {
		return nil, err
	}
	return ochre.Do(l.owner, convert.Context{Method: convert.MethodFrom, Action: "list construction"},
		func(s *ochre.Scope[convert.Context]) ([]T, error) {
			list := make([]T, 0, len(content))
			for _, element := range content {
				entry, err := ochre.Run(s, func() (T, error) { return l.delegate.From(element) })
				if err != nil {
					return nil, err
				}
				list = append(list, entry)
			}
			return list, nil
		})
}

type mapConverter[T any] struct {
	owner    *ochre.Owner[convert.Context]
	delegate Converter[T]
}

// Map lifts an element converter to whole YAML mappings keyed by string.
// Into writes keys in sorted order; From rejects duplicate keys.
func Map[T any](c Converter[T]) Converter[map[string]T] {
	return &mapConverter[T]{owner: convert.NewOwner(), delegate: c}
}

func (m *mapConverter[T]) Into(value map[string]T) (*yaml.Node, error) {
	return ochre.Do(m.owner, convert.Context{Method: convert.MethodInto, Action: "mapping construction"},
		func(s *ochre.Scope[convert.Context]) (*yaml.Node, error) {
			keys := make([]string, 0, len(value))
			for key := range value {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			content := make([]*yaml.Node, 0, len(keys)*2)
			for _, key := range keys {
				node, err := ochre.Run(s, func() (*yaml.Node, error) { return m.delegate.Into(value[key]) })
				if err != nil {
					return nil, err
				}
				content = append(content, scalar("!!str", key), node)
			}
			return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}, nil
		})
}

func (m *mapConverter[T]) From(value *yaml.Node) (map[string]T, error) {
	content, err := convert.InScope(m.owner, convert.Context{Method: convert.MethodFrom, Action: "mapping resolution"},
		func() ([]*yaml.Node, error) {
			if value.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("expected a mapping node, got kind %d", value.Kind)
			}
			return value.Content, nil
		})
	if err != nil {
		return nil, err
	}
	return ochre.Do(m.owner, convert.Context{Method: convert.MethodFrom, Action: "map construction"},
		func(s *ochre.Scope[convert.Context]) (map[string]T, error) {
			out := make(map[string]T, len(content)/2)
			for i := 0; i+1 < len(content); i += 2 {
				keyNode, valueNode := content[i], content[i+1]
				key, err := ochre.Run(s, func() (string, error) {
					var k string
					if err := keyNode.Decode(&k); err != nil {
						return "", err
					}
					return k, nil
				})
				if err != nil {
					return nil, err
				}
				if _, dup := out[key]; dup {
					return nil, convert.NewError(
						convert.Context{Method: convert.MethodFrom, Action: "map construction"},
						fmt.Sprintf("duplicate mapping key %q", key), nil)
				}
				entry, err := ochre.Run(s, func() (T, error) { return m.delegate.From(valueNode) })
				if err != nil {
					return nil, err
				}
				out[key] = entry
			}
			return out, nil
		})
}

package jsonconv

import (
	"sort"

	"github.com/jaxydog/ochre"
	"github.com/jaxydog/ochre/convert"
	"github.com/jaxydog/ochre/jsonval"
)

type listConverter[T any] struct {
	owner    *ochre.Owner[convert.Context]
	delegate Converter[T]
}

// List lifts an element converter to whole JSON arrays. One scope spans the
// element pass in each direction, and a failing element aborts the pass: no
// partially built array or slice is ever returned.
func List[T any](c Converter[T]) Converter[[]T] {
	return &listConverter[T]{owner: convert.NewOwner(), delegate: c}
}

func (l *listConverter[T]) Into(value []T) (*jsonval.Value, error) {
	return ochre.Do(l.owner, convert.Context{Method: convert.MethodInto, Action: "array construction"},
		func(s *ochre.Scope[convert.Context]) (*jsonval.Value, error) {
			items := make([]*jsonval.Value, 0, len(value))
			for _, entry := range value {
				item, err := ochre.Run(s, func() (*jsonval.Value, error) { return l.delegate.Into(entry) })
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			return jsonval.Array(items...), nil
		})
}

func (l *listConverter[T]) From(value *jsonval.Value) ([]T, error) {
	array, err := convert.InScope(l.owner, convert.Context{Method: convert.MethodFrom, Action: "array resolution"},
		func() ([]*jsonval.Value, error) { return value.AsArray() })
	if err != nil {
		return nil, err
	}
	return ochre.Do(l.owner, convert.Context{Method: convert.MethodFrom, Action: "list construction"},
		func(s *ochre.Scope[convert.Context]) ([]T, error) {
			list := make([]T, 0, len(array))
			for _, element := range array {
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

// Map lifts an element converter to whole JSON objects keyed by string. Into
// writes members in sorted key order so the document is deterministic. The
// fail-fast policy matches List.
func Map[T any](c Converter[T]) Converter[map[string]T] {
	return &mapConverter[T]{owner: convert.NewOwner(), delegate: c}
}

func (m *mapConverter[T]) Into(value map[string]T) (*jsonval.Value, error) {
	return ochre.Do(m.owner, convert.Context{Method: convert.MethodInto, Action: "object construction"},
		func(s *ochre.Scope[convert.Context]) (*jsonval.Value, error) {
			keys := make([]string, 0, len(value))
			for key := range value {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			members := make([]jsonval.Member, 0, len(keys))
			for _, key := range keys {
				item, err := ochre.Run(s, func() (*jsonval.Value, error) { return m.delegate.Into(value[key]) })
				if err != nil {
					return nil, err
				}
				members = append(members, jsonval.Member{Key: key, Value: item})
			}
			return jsonval.Object(members...), nil
		})
}

func (m *mapConverter[T]) From(value *jsonval.Value) (map[string]T, error) {
	members, err := convert.InScope(m.owner, convert.Context{Method: convert.MethodFrom, Action: "object resolution"},
		func() ([]jsonval.Member, error) { return value.AsObject() })
	if err != nil {
		return nil, err
	}
	return ochre.Do(m.owner, convert.Context{Method: convert.MethodFrom, Action: "map construction"},
		func(s *ochre.Scope[convert.Context]) (map[string]T, error) {
			out := make(map[string]T, len(members))
			for _, member := range members {
				entry, err := ochre.Run(s, func() (T, error) { return m.delegate.From(member.Value) })
				if err != nil {
					return nil, err
				}
				out[member.Key] = entry
			}
			return out, nil
		})
}

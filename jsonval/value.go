// Package jsonval provides an ordered JSON document object model with
// fallible accessors. It is the value space targeted by the jsonconv
// converter family; accessor failures (kind mismatches) are the typical
// underlying causes wrapped by converter scopes.
package jsonval

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies which JSON shape a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindError reports a fallible accessor applied to the wrong kind of value.
type KindError struct {
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("expected a %s value, got %s", e.Want, e.Got)
}

// Member is one key/value pair of a JSON object.
type Member struct {
	Key   string
	Value *Value
}

// Value is a JSON document node. Numbers are held verbatim as json.Number
// and objects preserve member insertion order. Values are constructed once
// and should not be mutated afterwards.
type Value struct {
	kind    Kind
	boolean bool
	number  json.Number
	str     string
	items   []*Value
	members []Member
	index   map[string]int
}

// Null returns the JSON null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a JSON boolean node.
func Bool(v bool) *Value { return &Value{kind: KindBool, boolean: v} }

// Number returns a JSON number node holding the literal n.
func Number(n json.Number) *Value { return &Value{kind: KindNumber, number: n} }

// Int returns a JSON number node for an integer.
func Int(v int64) *Value { return Number(json.Number(strconv.FormatInt(v, 10))) }

// Float returns a JSON number node for a float, using the shortest literal
// that round-trips.
func Float(v float64) *Value {
	return Number(json.Number(strconv.FormatFloat(v, 'g', -1, 64)))
}

// String returns a JSON string node.
func String(s string) *Value { return &Value{kind: KindString, str: s} }

// Array returns a JSON array node over items.
func Array(items ...*Value) *Value { return &Value{kind: KindArray, items: items} }

// Object returns a JSON object node over members, preserving their order.
// A repeated key overwrites the earlier value in place.
func Object(members ...Member) *Value {
	v := &Value{kind: KindObject, index: make(map[string]int, len(members))}
	for _, m := range members {
		if at, ok := v.index[m.Key]; ok {
			v.members[at].Value = m.Value
			continue
		}
		v.index[m.Key] = len(v.members)
		v.members = append(v.members, m)
	}
	return v
}

// Kind returns the node's kind.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether the node is JSON null.
func (v *Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload, failing with a *KindError on any other
// kind of node.
func (v *Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, &KindError{Want: KindBool, Got: v.kind}
	}
	return v.boolean, nil
}

// AsNumber returns the number literal, failing with a *KindError on any
// other kind of node.
func (v *Value) AsNumber() (json.Number, error) {
	if v.kind != KindNumber {
		return "", &KindError{Want: KindNumber, Got: v.kind}
	}
	return v.number, nil
}

// AsString returns the string payload, failing with a *KindError on any
// other kind of node.
func (v *Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", &KindError{Want: KindString, Got: v.kind}
	}
	return v.str, nil
}

// AsArray returns the array items, failing with a *KindError on any other
// kind of node. The returned slice is shared; callers must not mutate it.
func (v *Value) AsArray() ([]*Value, error) {
	if v.kind != KindArray {
		return nil, &KindError{Want: KindArray, Got: v.kind}
	}
	return v.items, nil
}

// AsObject returns the object members in insertion order, failing with a
// *KindError on any other kind of node. The returned slice is shared;
// callers must not mutate it.
func (v *Value) AsObject() ([]Member, error) {
	if v.kind != KindObject {
		return nil, &KindError{Want: KindObject, Got: v.kind}
	}
	return v.members, nil
}

// Get looks up an object member by key. It reports false for a missing key
// or a non-object node.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	at, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.members[at].Value, true
}

// Len returns the element count of an array or object node and zero for
// everything else.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Equal reports structural equality of two documents. Numbers compare by
// literal, and object members compare independently of order.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber:
		return a.number == b.number
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.members) != len(b.members) {
			return false
		}
		for _, m := range a.members {
			other, ok := b.Get(m.Key)
			if !ok || !Equal(m.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

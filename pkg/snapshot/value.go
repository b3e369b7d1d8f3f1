// Package snapshot provides the canonical tree value produced by parsers and its
// deterministic JSON form.
//
// Objects keep their fields in insertion order, so serializing the same Value twice
// always yields the same bytes regardless of how the producer built it.
package snapshot

import (
	"encoding/json"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind int

// Available Kind values.
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
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable JSON-like tree node. The zero Value is null.
type Value struct {
	kind   Kind
	flag   bool
	text   string
	items  []Value
	fields []Member
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Int wraps an integer.
func Int(i int64) Value {
	return Value{kind: KindNumber, text: strconv.FormatInt(i, 10)}
}

// Float wraps a float using the shortest representation that round-trips.
func Float(f float64) Value {
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Number wraps decimal number text as-is. Malformed text is rejected by Marshal.
func Number(n json.Number) Value {
	return Value{kind: KindNumber, text: string(n)}
}

// String wraps a string.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Array builds an array from items. A nil slice yields an empty array.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: append([]Value{}, items...)}
}

// Object builds an object whose fields serialize in the given order.
func Object(fields ...Member) Value {
	return Value{kind: KindObject, fields: append([]Member{}, fields...)}
}

// Field is shorthand for a Member literal.
func Field(key string, value Value) Member {
	return Member{Key: key, Value: value}
}

// Kind reports the variant of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload.
func (v Value) Bool() bool {
	return v.flag
}

// Text returns the string payload, or the number text for numbers.
func (v Value) Text() string {
	return v.text
}

// Len returns the number of array items or object fields.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Index returns the i-th array item, or null when out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return Null()
	}

	return v.items[i]
}

// Get returns the first field named key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Null(), false
	}

	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}

	return Null(), false
}

// Fields returns a copy of the object's fields in order.
func (v Value) Fields() []Member {
	if v.kind != KindObject {
		return nil
	}

	return append([]Member{}, v.fields...)
}

// Items returns a copy of the array's items.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}

	return append([]Value{}, v.items...)
}

// Equal reports structural equality. Numbers compare by their text, objects by their
// ordered fields.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.flag == b.flag
	case KindNumber, KindString:
		return a.text == b.text
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
		if len(a.fields) != len(b.fields) {
			return false
		}

		for i := range a.fields {
			if a.fields[i].Key != b.fields[i].Key || !Equal(a.fields[i].Value, b.fields[i].Value) {
				return false
			}
		}

		return true
	}

	return false
}

package tree

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/jacoelho/pick/internal/number"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Field is one key/value entry of a Map.
type Field struct {
	Key   string
	Value Value
}

// Value is a node of decoded tree data.
type Value struct {
	kind   Kind
	scalar any
	items  []Value
	keys   []string
	fields map[string]Value
}

// Null returns the absent value.
func Null() Value {
	return Value{}
}

// String returns a string scalar.
func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// Bool returns a boolean scalar.
func Bool(b bool) Value {
	return Value{kind: KindScalar, scalar: b}
}

// Number returns a numeric scalar from its literal text.
func Number(text string) Value {
	return Value{kind: KindScalar, scalar: json.Number(text)}
}

// Int returns an integer scalar.
func Int(i int64) Value {
	return Value{kind: KindScalar, scalar: i}
}

// Float returns a floating point scalar.
func Float(f float64) Value {
	return Value{kind: KindScalar, scalar: f}
}

// List returns a list holding items in order.
func List(items ...Value) Value {
	return Value{kind: KindList, items: slices.Clone(items)}
}

// Map returns a map built from fields in order. A repeated key replaces the
// earlier value but keeps the position of its first occurrence.
func Map(fields ...Field) Value {
	v := Value{
		kind:   KindMap,
		keys:   make([]string, 0, len(fields)),
		fields: make(map[string]Value, len(fields)),
	}
	for _, f := range fields {
		if _, exists := v.fields[f.Key]; !exists {
			v.keys = append(v.keys, f.Key)
		}
		v.fields[f.Key] = f.Value
	}
	return v
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) IsList() bool {
	return v.kind == KindList
}

func (v Value) IsMap() bool {
	return v.kind == KindMap
}

// Len returns the number of list items or map entries, and zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.items)
	case KindMap:
		return len(v.keys)
	default:
		return 0
	}
}

// Items returns a copy of the list items. Non-list values have no items.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return slices.Clone(v.items)
}

// Keys returns a copy of the map keys in insertion order.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	return slices.Clone(v.keys)
}

// Fields returns the map entries in insertion order.
func (v Value) Fields() []Field {
	if v.kind != KindMap {
		return nil
	}
	out := make([]Field, 0, len(v.keys))
	for _, k := range v.keys {
		out = append(out, Field{Key: k, Value: v.fields[k]})
	}
	return out
}

// Lookup returns the attribute named key of a map.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	attr, ok := v.fields[key]
	return attr, ok
}

// Interface returns the raw scalar, or nil for any other kind.
func (v Value) Interface() any {
	if v.kind != KindScalar {
		return nil
	}
	return v.scalar
}

// Text returns the string held by a string scalar.
func (v Value) Text() (string, bool) {
	s, ok := v.scalar.(string)
	return s, ok && v.kind == KindScalar
}

// ToAny converts v into plain Go values: nil, scalars, []any and
// map[string]any.
func (v Value) ToAny() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindList:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.ToAny()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			out[k] = v.fields[k].ToAny()
		}
		return out
	default:
		return nil
	}
}

// String renders v in a compact JSON-like form for diagnostics.
func (v Value) String() string {
	var b strings.Builder
	v.writeTo(&b)
	return b.String()
}

func (v Value) writeTo(b *strings.Builder) {
	switch v.kind {
	case KindScalar:
		switch s := v.scalar.(type) {
		case string:
			b.WriteString(strconv.Quote(s))
		case bool:
			b.WriteString(strconv.FormatBool(s))
		default:
			text, ok := number.Canonical(s)
			if !ok {
				text = "?"
			}
			b.WriteString(text)
		}
	case KindList:
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			item.writeTo(b)
		}
		b.WriteByte(']')
	case KindMap:
		b.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			v.fields[k].writeTo(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString("null")
	}
}

// Equal reports whether a and b hold the same data. Numbers compare by
// magnitude regardless of their Go type; map key order is not significant.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindScalar:
		if number.IsNumber(a.scalar) && number.IsNumber(b.scalar) {
			return number.Equal(a.scalar, b.scalar)
		}
		return a.scalar == b.scalar
	case KindList:
		return slices.EqualFunc(a.items, b.items, Equal)
	case KindMap:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for k, av := range a.fields {
			bv, ok := b.fields[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

package tree

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/jacoelho/pick/internal/number"
)

// FromAny converts decoded Go data into a Value.
//
// Maps with string-like keys and structs become Maps; slices and arrays become
// Lists; strings, booleans and numbers become scalars. Go maps carry no order,
// so their keys are sorted. Struct fields keep declaration order and use their
// json tag names. Values implementing encoding.TextMarshaler become strings.
// Anything that cannot be represented (functions, channels) becomes Null.
func FromAny(data any) Value {
	switch current := data.(type) {
	case nil:
		return Null()
	case Value:
		return current
	case string:
		return String(current)
	case bool:
		return Bool(current)
	case map[string]any:
		keys := make([]string, 0, len(current))
		for k := range current {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, Field{Key: k, Value: FromAny(current[k])})
		}
		return Map(fields...)
	case []any:
		items := make([]Value, len(current))
		for i, item := range current {
			items[i] = FromAny(item)
		}
		return Value{kind: KindList, items: items}
	}

	if number.IsNumber(data) {
		return Value{kind: KindScalar, scalar: data}
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Null()
	}

	if marshaler, ok := data.(encoding.TextMarshaler); ok {
		text, err := marshaler.MarshalText()
		if err != nil {
			return Null()
		}
		return String(string(text))
	}

	return fromReflect(rv)
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return FromAny(rv.Elem().Interface())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{kind: KindScalar, scalar: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Slice:
		if rv.IsNil() {
			return Null()
		}
		return listFromReflect(rv)
	case reflect.Array:
		return listFromReflect(rv)
	case reflect.Map:
		if rv.IsNil() {
			return Null()
		}
		return mapFromReflect(rv)
	case reflect.Struct:
		return Map(structFields(rv)...)
	default:
		return Null()
	}
}

func listFromReflect(rv reflect.Value) Value {
	items := make([]Value, rv.Len())
	for i := range items {
		items[i] = FromAny(rv.Index(i).Interface())
	}
	return Value{kind: KindList, items: items}
}

func mapFromReflect(rv reflect.Value) Value {
	byKey := make(map[string]Value, rv.Len())
	keys := make([]string, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		key := fmt.Sprint(iter.Key().Interface())
		if _, seen := byKey[key]; !seen {
			keys = append(keys, key)
		}
		byKey[key] = FromAny(iter.Value().Interface())
	}
	slices.Sort(keys)

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Key: k, Value: byKey[k]})
	}
	return Map(fields...)
}

func structFields(rv reflect.Value) []Field {
	rt := rv.Type()
	fields := make([]Field, 0, rt.NumField())

	for i := range rt.NumField() {
		sf := rt.Field(i)
		name, skip := fieldName(sf)
		if skip {
			continue
		}

		if !sf.IsExported() {
			continue
		}

		fv := rv.Field(i)
		if sf.Anonymous && name == "" {
			embedded := fv
			if embedded.Kind() == reflect.Pointer {
				if embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				fields = append(fields, structFields(embedded)...)
				continue
			}
		}
		if name == "" {
			name = sf.Name
		}

		fields = append(fields, Field{Key: name, Value: FromAny(fv.Interface())})
	}

	return fields
}

// fieldName returns the json tag name of a struct field, and whether the
// field is excluded with "-".
func fieldName(sf reflect.StructField) (string, bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

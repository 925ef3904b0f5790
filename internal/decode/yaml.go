package decode

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/pick/internal/tree"
)

// YAML decodes the first document of a YAML stream. Mapping keys that are
// not strings are rendered with fmt.
func YAML(data []byte) (tree.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return tree.Value{}, fmt.Errorf("%w: input is empty", ErrDecode)
	}

	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return tree.Value{}, fmt.Errorf("%w: failed to parse YAML data: %v", ErrDecode, err)
	}

	return fromYAML(doc), nil
}

func fromYAML(node any) tree.Value {
	switch current := node.(type) {
	case yaml.MapSlice:
		fields := make([]tree.Field, 0, len(current))
		for _, item := range current {
			fields = append(fields, tree.Field{
				Key:   keyString(item.Key),
				Value: fromYAML(item.Value),
			})
		}
		return tree.Map(fields...)
	case []any:
		items := make([]tree.Value, len(current))
		for i, item := range current {
			items[i] = fromYAML(item)
		}
		return tree.List(items...)
	default:
		return tree.FromAny(current)
	}
}

func keyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}

package output

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/pick/internal/tree"
)

// EncodeYAML renders v as a YAML document, keeping map key order.
func EncodeYAML(v tree.Value) ([]byte, error) {
	payload, err := yaml.Marshal(yamlNode(v))
	if err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	return payload, nil
}

func yamlNode(v tree.Value) any {
	switch v.Kind() {
	case tree.KindScalar:
		if n, ok := v.Interface().(json.Number); ok {
			return yamlNumber(n)
		}
		return v.Interface()
	case tree.KindList:
		items := v.Items()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = yamlNode(item)
		}
		return out
	case tree.KindMap:
		out := make(yaml.MapSlice, 0, v.Len())
		for _, f := range v.Fields() {
			out = append(out, yaml.MapItem{Key: f.Key, Value: yamlNode(f.Value)})
		}
		return out
	default:
		return nil
	}
}

func yamlNumber(n json.Number) any {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(string(n), 64); err == nil {
		return f
	}
	return string(n)
}

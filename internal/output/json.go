package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	gojson "github.com/goccy/go-json"

	"github.com/jacoelho/pick/internal/number"
	"github.com/jacoelho/pick/internal/tree"
)

// EncodeJSON renders v as JSON, keeping map key order. Numbers decoded from
// text keep their literal form.
func EncodeJSON(v tree.Value, compact bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}
	if compact {
		return buf.Bytes(), nil
	}

	var indented bytes.Buffer
	if err := gojson.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}
	return indented.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v tree.Value) error {
	switch v.Kind() {
	case tree.KindScalar:
		return writeScalarJSON(buf, v.Interface())
	case tree.KindList:
		buf.WriteByte('[')
		for i, item := range v.Items() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case tree.KindMap:
		buf.WriteByte('{')
		for i, f := range v.Fields() {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := gojson.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, f.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}

func writeScalarJSON(buf *bytes.Buffer, raw any) error {
	switch s := raw.(type) {
	case json.Number:
		buf.WriteString(string(s))
		return nil
	case string, bool:
		encoded, err := gojson.Marshal(s)
		if err != nil {
			return err
		}
		buf.Write(encoded)
		return nil
	}

	if f, ok := number.ToFloat64(raw); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		buf.WriteString("null")
		return nil
	}

	text, ok := number.Canonical(raw)
	if !ok {
		return fmt.Errorf("unsupported scalar %T", raw)
	}
	buf.WriteString(text)
	return nil
}

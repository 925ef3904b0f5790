package output

import (
	"bytes"
	"strconv"

	"github.com/jacoelho/pick/internal/number"
	"github.com/jacoelho/pick/internal/tree"
)

// EncodeText renders v for shell pipelines: scalars as bare text, list items
// one per line, map entries as "key<TAB>value" lines. Nested containers are
// written as compact JSON.
func EncodeText(v tree.Value) []byte {
	var buf bytes.Buffer

	switch v.Kind() {
	case tree.KindList:
		for _, item := range v.Items() {
			buf.WriteString(textItem(item))
			buf.WriteByte('\n')
		}
	case tree.KindMap:
		for _, f := range v.Fields() {
			buf.WriteString(f.Key)
			buf.WriteByte('\t')
			buf.WriteString(textItem(f.Value))
			buf.WriteByte('\n')
		}
	default:
		buf.WriteString(textItem(v))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

func textItem(v tree.Value) string {
	switch v.Kind() {
	case tree.KindNull:
		return ""
	case tree.KindScalar:
		switch s := v.Interface().(type) {
		case string:
			return s
		case bool:
			return strconv.FormatBool(s)
		default:
			if text, ok := number.Canonical(s); ok {
				return text
			}
		}
	}

	payload, err := EncodeJSON(v, true)
	if err != nil {
		return v.String()
	}
	return string(payload)
}

package selector

import (
	"strconv"

	"github.com/jacoelho/pick/internal/number"
	"github.com/jacoelho/pick/internal/path"
	"github.com/jacoelho/pick/internal/tree"
)

func (e *Engine) dictionary(keysPath, valuesPath path.Alternation) tree.Value {
	keys := evaluateAlternatives(e.root, keysPath)
	if len(keys) == 0 {
		return tree.Map()
	}

	values := fitLength(evaluateAlternatives(e.root, valuesPath), len(keys))

	fields := make([]tree.Field, 0, len(keys))
	for i, key := range keys {
		name, ok := keyName(key)
		if !ok {
			e.logger.Debug("dictionary key skipped", "key", key.String(), "kind", key.Kind().String())
			continue
		}
		fields = append(fields, tree.Field{Key: name, Value: values[i]})
	}

	return tree.Map(fields...)
}

// fitLength pads values with nulls or truncates them to exactly n items.
func fitLength(values []tree.Value, n int) []tree.Value {
	if len(values) >= n {
		return values[:n]
	}

	padded := make([]tree.Value, n)
	copy(padded, values)
	return padded
}

// keyName renders a scalar as a dictionary key. Lists and maps cannot name
// an entry.
func keyName(key tree.Value) (string, bool) {
	switch key.Kind() {
	case tree.KindNull:
		return "", true
	case tree.KindScalar:
		switch raw := key.Interface().(type) {
		case string:
			return raw, true
		case bool:
			return strconv.FormatBool(raw), true
		default:
			return number.Canonical(raw)
		}
	default:
		return "", false
	}
}

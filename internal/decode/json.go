package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/jacoelho/pick/internal/tree"
)

// JSON decodes a single JSON document. Numbers keep their literal text.
//
// Number literals outside the float64 range (such as 1e400) are rejected by
// the validity check even though the grammar allows them.
func JSON(data []byte) (tree.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return tree.Value{}, fmt.Errorf("%w: input is empty", ErrDecode)
	}
	if !json.Valid(data) {
		return tree.Value{}, fmt.Errorf("%w: input is not valid JSON", ErrDecode)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := readValue(dec)
	if err != nil {
		return tree.Value{}, fmt.Errorf("%w: failed to parse JSON data: %v", ErrDecode, err)
	}

	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		return tree.Value{}, fmt.Errorf("%w: unexpected data after document: %v", ErrDecode, describe(tok, err))
	}

	return root, nil
}

func readValue(dec *json.Decoder) (tree.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return tree.Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		default:
			return tree.Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
		}
	case string:
		return tree.String(t), nil
	case bool:
		return tree.Bool(t), nil
	case json.Number:
		return tree.Number(string(t)), nil
	case float64:
		return tree.Float(t), nil
	case nil:
		return tree.Null(), nil
	default:
		return tree.Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func readObject(dec *json.Decoder) (tree.Value, error) {
	var fields []tree.Field

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return tree.Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return tree.Value{}, fmt.Errorf("object key must be string, got %v", tok)
		}

		value, err := readValue(dec)
		if err != nil {
			return tree.Value{}, fmt.Errorf("key %q: %w", key, err)
		}
		fields = append(fields, tree.Field{Key: key, Value: value})
	}

	if err := closing(dec, '}'); err != nil {
		return tree.Value{}, err
	}
	return tree.Map(fields...), nil
}

func readArray(dec *json.Decoder) (tree.Value, error) {
	var items []tree.Value

	for dec.More() {
		item, err := readValue(dec)
		if err != nil {
			return tree.Value{}, fmt.Errorf("index %d: %w", len(items), err)
		}
		items = append(items, item)
	}

	if err := closing(dec, ']'); err != nil {
		return tree.Value{}, err
	}
	return tree.List(items...), nil
}

func closing(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", rune(want), tok)
	}
	return nil
}

func describe(tok json.Token, err error) string {
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("%v", tok)
}

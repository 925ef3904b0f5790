// Package locate selects a starting node of a document with an RFC 9535
// JSONPath expression.
package locate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/pick/internal/number"
	"github.com/jacoelho/pick/internal/tree"
)

var (
	// ErrInvalidPath indicates a JSONPath expression that does not compile.
	ErrInvalidPath = errors.New("invalid JSONPath")

	// ErrNoMatch indicates a JSONPath expression that selected nothing.
	ErrNoMatch = errors.New("JSONPath selected nothing")
)

// Select returns the first node selected by expr (e.g. "$.store.book[0]",
// "$..items[?@.id == 3]").
//
// Selected maps come back with their keys sorted.
func Select(root tree.Value, expr string) (tree.Value, error) {
	nodes, err := selectNodes(root, expr)
	if err != nil {
		return tree.Value{}, err
	}
	return tree.FromAny(nodes[0]), nil
}

// SelectAll returns every node selected by expr as a list.
func SelectAll(root tree.Value, expr string) (tree.Value, error) {
	nodes, err := selectNodes(root, expr)
	if err != nil {
		return tree.Value{}, err
	}

	items := make([]tree.Value, len(nodes))
	for i, node := range nodes {
		items[i] = tree.FromAny(node)
	}
	return tree.List(items...), nil
}

func selectNodes(root tree.Value, expr string) ([]any, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%w: expression is empty", ErrInvalidPath)
	}

	p, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, expr, err)
	}

	nodes := p.Select(plain(root))
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, expr)
	}
	return nodes, nil
}

// plain converts v into the shapes encoding/json produces, with every number
// as float64, which is what JSONPath filters compare against.
func plain(v tree.Value) any {
	switch v.Kind() {
	case tree.KindScalar:
		raw := v.Interface()
		if f, ok := number.ToFloat64(raw); ok {
			return f
		}
		return raw
	case tree.KindList:
		items := v.Items()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = plain(item)
		}
		return out
	case tree.KindMap:
		out := make(map[string]any, v.Len())
		for _, f := range v.Fields() {
			out[f.Key] = plain(f.Value)
		}
		return out
	default:
		return nil
	}
}

package plan

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml/ast"

	"github.com/jacoelho/pick/internal/tree"
)

// Literal is a YAML value carried into a query, such as a default or a
// match value.
type Literal struct {
	Value tree.Value
	Set   bool
}

// UnmarshalYAML decodes any YAML value, keeping mapping key order.
func (l *Literal) UnmarshalYAML(node ast.Node) error {
	value, err := nodeToValue(node)
	if err != nil {
		return err
	}
	l.Value = value
	l.Set = true
	return nil
}

// nodeToValue converts AST nodes into tree values.
// integer nodes keep their signedness, floats are always float64
func nodeToValue(node ast.Node) (tree.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		switch v := n.Value.(type) {
		case int64:
			return tree.Int(v), nil
		case uint64:
			return tree.FromAny(v), nil
		default:
			return tree.Value{}, fmt.Errorf("unexpected integer node value type: %T", n.Value)
		}
	case *ast.FloatNode:
		return tree.Float(n.Value), nil
	case *ast.StringNode:
		return tree.String(n.Value), nil
	case *ast.LiteralNode:
		if n.Value == nil {
			return tree.String(""), nil
		}
		return tree.String(n.Value.Value), nil
	case *ast.BoolNode:
		return tree.Bool(n.Value), nil
	case *ast.NullNode:
		return tree.Null(), nil
	case *ast.SequenceNode:
		items := make([]tree.Value, 0, len(n.Values))
		for i, item := range n.Values {
			value, err := nodeToValue(item)
			if err != nil {
				return tree.Value{}, fmt.Errorf("invalid value at index %d: %w", i, err)
			}
			items = append(items, value)
		}
		return tree.List(items...), nil
	case *ast.MappingNode:
		return mappingToValue(n.Values)
	case *ast.MappingValueNode:
		return mappingToValue([]*ast.MappingValueNode{n})
	default:
		return tree.Value{}, fmt.Errorf("unsupported node type: %T", node)
	}
}

func mappingToValue(pairs []*ast.MappingValueNode) (tree.Value, error) {
	fields := make([]tree.Field, 0, len(pairs))
	for _, pair := range pairs {
		if pair == nil || pair.Key == nil {
			return tree.Value{}, errors.New("mapping entry without key")
		}

		key := pair.Key.String()
		if s, ok := pair.Key.(*ast.StringNode); ok {
			key = s.Value
		}

		value, err := nodeToValue(pair.Value)
		if err != nil {
			return tree.Value{}, fmt.Errorf("invalid value for key %q: %w", key, err)
		}
		fields = append(fields, tree.Field{Key: key, Value: value})
	}
	return tree.Map(fields...), nil
}

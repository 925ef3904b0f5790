package selector

import (
	"slices"

	"github.com/jacoelho/pick/internal/path"
	"github.com/jacoelho/pick/internal/tree"
)

// FindAll returns the items reached by contextPath whose fieldPath values
// contain value, in traversal order. Items where fieldPath does not resolve
// never match.
func (e *Engine) FindAll(contextPath, fieldPath string, value tree.Value) []tree.Value {
	return findMatching(
		evaluateAlternatives(e.root, e.alternation(contextPath)),
		e.alternation(fieldPath),
		value,
	)
}

// FindOne returns the first item FindAll would return, or Null.
func (e *Engine) FindOne(contextPath, fieldPath string, value tree.Value) tree.Value {
	found := e.FindAll(contextPath, fieldPath, value)
	if len(found) == 0 {
		return tree.Null()
	}
	return found[0]
}

func findMatching(candidates []tree.Value, field path.Alternation, value tree.Value) []tree.Value {
	found := make([]tree.Value, 0, len(candidates))
	for _, candidate := range candidates {
		if hasValue(evaluateAlternatives(candidate, field), value) {
			found = append(found, candidate)
		}
	}
	return found
}

func hasValue(values []tree.Value, target tree.Value) bool {
	return slices.ContainsFunc(values, func(v tree.Value) bool {
		return tree.Equal(v, target)
	})
}

package selector

import (
	"strings"

	"github.com/jacoelho/pick/internal/tree"
)

// Condition keeps context items whose Field path reaches Value.
type Condition struct {
	Field string
	Value tree.Value
}

// Request describes a query assembled piece by piece: a path, optional
// fallback paths, an optional filter, a result limit and a default.
type Request struct {
	// Find is the value path, or the context path when Where is set.
	Find string
	// Or lists fallback paths tried after Find.
	Or []string
	// Where keeps only context items matching the condition.
	Where *Condition
	// Limit greater than one selects a list result of at most Limit items.
	Limit int
	// Default is returned when nothing matches. Nil means "" for single
	// results and [] for list results.
	Default *tree.Value
}

// Paths returns Find and Or joined as one alternation.
func (r Request) Paths() string {
	return strings.Join(append([]string{r.Find}, r.Or...), "|")
}

func (r Request) many() bool {
	return r.Limit > 1
}

func (r Request) fallback() tree.Value {
	switch {
	case r.Default != nil:
		return *r.Default
	case r.many():
		return tree.List()
	default:
		return tree.String("")
	}
}

// Fetch evaluates req.
func (e *Engine) Fetch(req Request) tree.Value {
	alternatives := e.alternation(req.Paths())

	var results []tree.Value
	if req.Where != nil {
		results = findMatching(
			evaluateAlternatives(e.root, alternatives),
			e.alternation(req.Where.Field),
			req.Where.Value,
		)
	} else {
		results = evaluateAlternatives(e.root, alternatives)
	}

	if len(results) == 0 {
		return req.fallback()
	}
	if !req.many() {
		return results[0]
	}
	if len(results) > req.Limit {
		results = results[:req.Limit]
	}
	return tree.List(results...)
}

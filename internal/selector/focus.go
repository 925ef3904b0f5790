package selector

import (
	"github.com/jacoelho/pick/internal/path"
	"github.com/jacoelho/pick/internal/tree"
)

// Focus returns a new Engine rooted at the value reached by the dotted chain
// raw. Each segment must name a non-null attribute of a map; otherwise the
// new Engine is rooted at Null and every query on it yields its default.
// Lists are not traversed.
func (e *Engine) Focus(raw string) *Engine {
	chain := path.SplitChain(raw)

	current := e.root
	for _, segment := range chain {
		next, ok := attributeOf(current, segment)
		if !ok {
			e.logger.Debug("focus did not resolve", "path", raw, "segment", segment)
			current = tree.Null()
			break
		}
		current = next
	}

	return &Engine{root: current, logger: e.logger}
}

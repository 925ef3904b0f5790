package selector

import (
	"github.com/jacoelho/pick/internal/path"
	"github.com/jacoelho/pick/internal/tree"
)

// evaluateAlternatives returns the values of the first alternative that
// resolves to at least one value.
func evaluateAlternatives(root tree.Value, alternatives path.Alternation) []tree.Value {
	for _, chain := range alternatives {
		if results := evaluateChain(root, chain); len(results) > 0 {
			return results
		}
	}
	return nil
}

// evaluateChain walks chain from root and returns every value reached.
// An empty result means the chain did not resolve.
func evaluateChain(root tree.Value, chain path.Chain) []tree.Value {
	if len(chain) == 0 {
		return nil
	}

	current := []tree.Value{root}
	for _, segment := range chain {
		if len(current) == 0 {
			return nil
		}
		current = step(current, segment)
	}

	return current
}

// step probes every item of current for attribute.
//
// Order: a list-valued attribute is placed before everything accumulated so
// far at this depth, any other value is placed after it. For
//
//	[{children: [a]}, {children: [b, c]}]
//
// the step "children" yields [b, c, a].
func step(current []tree.Value, attribute string) []tree.Value {
	var next []tree.Value

	for _, v := range current {
		for _, item := range probeItems(v) {
			attr, ok := attributeOf(item, attribute)
			if !ok {
				continue
			}

			if attr.IsList() {
				next = append(attr.Items(), next...)
				continue
			}
			next = append(next, attr)
		}
	}

	return next
}

// probeItems returns the values probed for an attribute: the elements of a
// list, or v itself.
func probeItems(v tree.Value) []tree.Value {
	if v.IsList() {
		return v.Items()
	}
	return []tree.Value{v}
}

// attributeOf looks up a non-null attribute of a map.
func attributeOf(item tree.Value, attribute string) (tree.Value, bool) {
	if attribute == "" {
		return tree.Value{}, false
	}

	attr, ok := item.Lookup(attribute)
	if !ok || attr.IsNull() {
		return tree.Value{}, false
	}
	return attr, true
}

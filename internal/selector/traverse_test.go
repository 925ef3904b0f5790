package selector

import (
	"sync"
	"testing"

	"github.com/jacoelho/pick/internal/path"
	"github.com/jacoelho/pick/internal/tree"
)

func TestEvaluateChainOrdering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		chain path.Chain
		want  tree.Value
	}{
		{
			name:  "scalars_keep_processing_order",
			input: `{"p": [{"n": 1}, {"n": 2}, {"n": 3}]}`,
			chain: path.Chain{"p", "n"},
			want:  tree.List(tree.Int(1), tree.Int(2), tree.Int(3)),
		},
		{
			name:  "lists_are_prepended",
			input: `{"p": [{"c": [1, 2]}, {"c": [3]}, {"c": [4, 5]}]}`,
			chain: path.Chain{"p", "c"},
			want:  tree.List(tree.Int(4), tree.Int(5), tree.Int(3), tree.Int(1), tree.Int(2)),
		},
		{
			name:  "mixed_scalar_and_list",
			input: `{"p": [{"c": "a"}, {"c": ["b", "c"]}, {"c": "d"}]}`,
			chain: path.Chain{"p", "c"},
			want:  tree.List(tree.String("b"), tree.String("c"), tree.String("a"), tree.String("d")),
		},
		{
			name:  "root_list",
			input: `[{"n": "x"}, {"n": "y"}]`,
			chain: path.Chain{"n"},
			want:  tree.List(tree.String("x"), tree.String("y")),
		},
		{
			name:  "nested_list_items_are_probed",
			input: `{"p": [[{"n": 1}], {"n": 2}]}`,
			chain: path.Chain{"p", "n"},
			want:  tree.List(tree.Int(1), tree.Int(2)),
		},
		{
			name:  "scalars_in_lists_are_skipped",
			input: `{"p": ["x", {"n": 1}, 7, null]}`,
			chain: path.Chain{"p", "n"},
			want:  tree.List(tree.Int(1)),
		},
		{
			name:  "map_attribute_is_kept_whole",
			input: `{"p": {"car": {"color": "red"}}}`,
			chain: path.Chain{"p", "car"},
			want:  tree.List(tree.FromAny(map[string]any{"color": "red"})),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := mustJSON(t, tt.input).Root()
			got := tree.List(evaluateChain(root, tt.chain)...)
			assertValue(t, "evaluateChain("+tt.chain.String()+")", got, tt.want)
		})
	}
}

func TestEvaluateChainUnresolved(t *testing.T) {
	t.Parallel()

	root := mustJSON(t, `{"a": {"b": [], "n": null, "": 1}}`).Root()

	for _, chain := range []path.Chain{
		nil,
		{"a", "b"},
		{"a", "b", "c"},
		{"a", "n"},
		{"a", ""},
		{"missing"},
	} {
		if got := evaluateChain(root, chain); len(got) != 0 {
			t.Fatalf("evaluateChain(%v) = %v, want unresolved", chain, got)
		}
	}
}

func TestEvaluateAlternativesFirstResolvedWins(t *testing.T) {
	t.Parallel()

	root := mustJSON(t, `{"a": [], "b": {"c": 1}, "d": 2}`).Root()
	alternatives := path.Alternation{{"a"}, {"b", "x"}, {"b", "c"}, {"d"}}

	got := evaluateAlternatives(root, alternatives)
	assertValue(t, "evaluateAlternatives", tree.List(got...), tree.List(tree.Int(1)))
}

func TestEngineConcurrentQueries(t *testing.T) {
	t.Parallel()

	e := mustJSON(t, schoolJSON)
	want := tree.List(tree.Int(1), tree.Int(3), tree.Int(2))

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := e.Query("[school.staff.teachers.id]"); !tree.Equal(got, want) {
				errs <- got.String()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Fatalf("concurrent Query() = %s, want %v", got, want)
	}
}

package selector

import (
	"testing"

	"github.com/jacoelho/pick/internal/tree"
)

func TestFocus(t *testing.T) {
	t.Parallel()

	e := mustJSON(t, `{
	  "record": {
	    "ydht": {
	      "fields": {
	        "name": {"value": "Danilo"},
	        "age": {"value": 25}
	      }
	    }
	  }
	}`)

	focused := e.Focus("record.ydht.fields")
	assertValue(t, "name", focused.Query("name.value"), tree.String("Danilo"))
	assertValue(t, "age", focused.Query("age.value"), tree.Int(25))

	if !e.Root().IsMap() {
		t.Fatal("Focus modified the parent engine")
	}
}

func TestFocusStaysQuietOnMissingPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		root tree.Value
		path string
	}{
		{name: "empty_root", root: tree.Null(), path: "record.ydht.fields"},
		{name: "missing_segment", root: tree.FromAny(map[string]any{"record": map[string]any{}}), path: "record.ydht"},
		{name: "through_scalar", root: tree.FromAny(map[string]any{"record": "x"}), path: "record.ydht"},
		{name: "through_list", root: tree.FromAny(map[string]any{"record": []any{map[string]any{"ydht": 1}}}), path: "record.ydht"},
		{name: "null_attribute", root: tree.FromAny(map[string]any{"record": nil}), path: "record"},
	}

	fallback := tree.String("Unnamed")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			focused := New(tt.root).Focus(tt.path)
			if !focused.Root().IsNull() {
				t.Fatalf("Focus(%s) root = %v, want null", tt.path, focused.Root())
			}
			assertValue(t, "GetOne", focused.GetOne("name.value", fallback), fallback)
			assertValue(t, "Query", focused.Query("name.value", WithDefault(fallback)), fallback)
			assertValue(t, "list", focused.Query("[name.value]"), tree.List())
		})
	}
}

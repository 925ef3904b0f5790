package decode

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jacoelho/pick/internal/tree"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	got, err := JSON([]byte(`{"key1":"foo", "key2":"bar", "n": 1.50, "list": [true, null, {"z": 1, "a": 2}]}`))
	if err != nil {
		t.Fatalf("JSON() unexpected error: %v", err)
	}

	want := tree.Map(
		tree.Field{Key: "key1", Value: tree.String("foo")},
		tree.Field{Key: "key2", Value: tree.String("bar")},
		tree.Field{Key: "n", Value: tree.Number("1.50")},
		tree.Field{Key: "list", Value: tree.List(
			tree.Bool(true),
			tree.Null(),
			tree.Map(
				tree.Field{Key: "z", Value: tree.Number("1")},
				tree.Field{Key: "a", Value: tree.Number("2")},
			),
		)},
	)

	if !tree.Equal(got, want) {
		t.Fatalf("JSON() = %v, want %v", got, want)
	}

	list, _ := got.Lookup("list")
	inner := list.Items()[2]
	if keys := inner.Keys(); !reflect.DeepEqual(keys, []string{"z", "a"}) {
		t.Fatalf("object keys = %v, want document order [z a]", keys)
	}

	n, _ := got.Lookup("n")
	if n.String() != "1.5" {
		t.Fatalf("n = %s, want 1.5", n)
	}
}

func TestJSONScalarRoot(t *testing.T) {
	t.Parallel()

	got, err := JSON([]byte(` "hello" `))
	if err != nil {
		t.Fatalf("JSON() unexpected error: %v", err)
	}
	if !tree.Equal(got, tree.String("hello")) {
		t.Fatalf("JSON() = %v, want \"hello\"", got)
	}
}

func TestJSONErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace", input: " \n\t"},
		{name: "truncated", input: `{"key1": "foo"`},
		{name: "bad_value", input: `{"key1": }`},
		{name: "trailing_document", input: `{"a":1} {"b":2}`},
		{name: "bare_word", input: `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := JSON([]byte(tt.input))
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("JSON(%q) error = %v, want ErrDecode", tt.input, err)
			}
		})
	}
}

func TestYAML(t *testing.T) {
	t.Parallel()

	input := `
school:
  name: Boston High School
  staff:
    teachers:
      - id: 1
        name: Luiz Honda
      - id: 3
        name: Willian Watanabe
        visibility: private
1: numeric key
`

	got, err := YAML([]byte(input))
	if err != nil {
		t.Fatalf("YAML() unexpected error: %v", err)
	}

	if keys := got.Keys(); !reflect.DeepEqual(keys, []string{"school", "1"}) {
		t.Fatalf("keys = %v, want [school 1]", keys)
	}

	school, _ := got.Lookup("school")
	staff, _ := school.Lookup("staff")
	teachers, _ := staff.Lookup("teachers")
	if teachers.Len() != 2 {
		t.Fatalf("teachers = %v, want 2 items", teachers)
	}

	second := teachers.Items()[1]
	if keys := second.Keys(); !reflect.DeepEqual(keys, []string{"id", "name", "visibility"}) {
		t.Fatalf("teacher keys = %v, want document order", keys)
	}
	id, _ := second.Lookup("id")
	if !tree.Equal(id, tree.Int(3)) {
		t.Fatalf("id = %v, want 3", id)
	}
}

func TestYAMLErrors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "  \n", "a: [1, 2"} {
		if _, err := YAML([]byte(input)); !errors.Is(err, ErrDecode) {
			t.Fatalf("YAML(%q) error = %v, want ErrDecode", input, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Format
	}{
		{input: "json", want: FormatJSON},
		{input: "YAML", want: FormatYAML},
		{input: " yml ", want: FormatYAML},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil {
			t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("ParseFormat(xml) error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"data.json":    FormatJSON,
		"data.YAML":    FormatYAML,
		"dir/data.yml": FormatYAML,
		"no-extension": FormatJSON,
	}

	for input, want := range tests {
		if got := FormatFromPath(input); got != want {
			t.Fatalf("FormatFromPath(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDecodeDispatch(t *testing.T) {
	t.Parallel()

	got, err := Decode(FormatYAML, []byte("key1: foo\n"))
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	v, _ := got.Lookup("key1")
	if !tree.Equal(v, tree.String("foo")) {
		t.Fatalf("key1 = %v, want foo", v)
	}

	if _, err := Decode(Format("toml"), nil); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Decode(toml) error = %v, want ErrUnknownFormat", err)
	}
}

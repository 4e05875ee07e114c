package openapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fixturegen/pkg/fixture"
	"github.com/goliatone/go-fixturegen/pkg/testsupport"
)

func loadTodoDocument(t *testing.T) Document {
	t.Helper()

	path := filepath.Join("testdata", "todo-api.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	return MustNewDocument(SourceFromFile(path), data)
}

func TestDefinitions_FromTodoAPI(t *testing.T) {
	doc := loadTodoDocument(t)

	defs, err := Definitions(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("definitions: %v", err)
	}

	want := []fixture.Definition{
		{
			Kind: "data",
			Name: "todo_item",
			Extra: map[string]string{
				"payload": `{"id": 1, "task": "temp task", "time_estimate": 1}`,
			},
		},
		{
			Kind: "data",
			Name: "todo_item_response",
			Extra: map[string]string{
				"payload": `{"completed": False, "id": 1, "task": "temp task", "time_estimate": 1}`,
			},
		},
	}
	if diff := cmp.Diff(want, defs); diff != "" {
		t.Fatalf("definitions mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitions_RequiresSchemas(t *testing.T) {
	doc := MustNewDocument(SourceFromFile("inline.json"), []byte(`{"openapi": "3.0.2", "info": {"title": "t", "version": "1"}, "paths": {}}`))

	if _, err := Definitions(testsupport.Context(), doc); err == nil {
		t.Fatal("expected an error for a document without component schemas")
	}
}

func TestDefinitions_InvalidPayload(t *testing.T) {
	doc := MustNewDocument(SourceFromFile("broken.json"), []byte(`{not json`))

	if _, err := Definitions(testsupport.Context(), doc); err == nil {
		t.Fatal("expected an error for an unparsable document")
	}
}

func TestSnakeCase(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "TodoItem", want: "todo_item"},
		{input: "TodoItemResponse", want: "todo_item_response"},
		{input: "user", want: "user"},
		{input: "HTTPError", want: "http_error"},
		{input: "APIKey", want: "api_key"},
		{input: "User-Profile", want: "user_profile"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			if got := snakeCase(tc.input); got != tc.want {
				t.Fatalf("snakeCase(%q): want %q, got %q", tc.input, tc.want, got)
			}
		})
	}
}

func TestPythonValue(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil", input: nil, want: "None"},
		{name: "true", input: true, want: "True"},
		{name: "false", input: false, want: "False"},
		{name: "string", input: "temp task", want: `"temp task"`},
		{name: "float", input: float64(2.5), want: "2.5"},
		{name: "integral float", input: float64(3), want: "3"},
		{name: "list", input: []any{"a", float64(1)}, want: `["a", 1]`},
		{name: "map sorted", input: map[string]any{"b": true, "a": nil}, want: `{"a": None, "b": True}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pythonValue(tc.input); got != tc.want {
				t.Fatalf("pythonValue(%v): want %q, got %q", tc.input, tc.want, got)
			}
		})
	}
}

func TestSampleString_Formats(t *testing.T) {
	cases := map[string]string{
		"":          "example",
		"date":      "2024-01-01",
		"date-time": "2024-01-01T00:00:00Z",
		"uuid":      "00000000-0000-0000-0000-000000000000",
		"email":     "user@example.com",
	}

	for format, want := range cases {
		if got := sampleString(format); got != want {
			t.Fatalf("sampleString(%q): want %q, got %q", format, want, got)
		}
	}
}

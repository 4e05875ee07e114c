package gotemplate

import (
	"bytes"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"greet.tpl": &fstest.MapFile{Data: []byte("hello {{ name }}\n")},
	}
}

func TestNew_RequiresTemplateSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected an error when no base dir or fs.FS is provided")
	}
}

func TestRenderString_Substitutes(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString("def {{ name }}():", map[string]string{"name": "cache"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "def cache():" {
		t.Fatalf("want %q, got %q", "def cache():", got)
	}
}

func TestRenderString_NoHTMLEscaping(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString("return {{ payload }}", map[string]string{"payload": `{"id": 1, "name": "a&b"}`})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	want := `return {"id": 1, "name": "a&b"}`
	if got != want {
		t.Fatalf("quotes must survive rendering verbatim:\nwant %q\ngot  %q", want, got)
	}
}

func TestRenderTemplate_ByName(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("greet", map[string]string{"name": "world"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if got != "hello world\n" {
		t.Fatalf("want %q, got %q", "hello world\n", got)
	}
}

func TestRender_DispatchesOnContent(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	inline, err := engine.Render("inline {{ name }}", map[string]string{"name": "text"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "inline text" {
		t.Fatalf("want %q, got %q", "inline text", inline)
	}

	named, err := engine.Render("greet", map[string]string{"name": "world"})
	if err != nil {
		t.Fatalf("render named: %v", err)
	}
	if named != "hello world\n" {
		t.Fatalf("want %q, got %q", "hello world\n", named)
	}
}

func TestRenderString_TeesToWriters(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var buf bytes.Buffer
	got, err := engine.RenderString("x = {{ value }}", map[string]string{"value": "1"}, &buf)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != buf.String() {
		t.Fatalf("writer received %q, return value was %q", buf.String(), got)
	}
}

func TestRenderTemplate_MissingTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatal("expected an error for a missing template")
	}
}

package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fixturegen/pkg/fixture"
)

func TestList_MatchesKindDeclarationOrder(t *testing.T) {
	reg := MustNew()

	if diff := cmp.Diff(fixture.Kinds(), reg.List()); diff != "" {
		t.Fatalf("registry order mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplate_EveryKindReferencesName(t *testing.T) {
	reg := MustNew()

	for _, kind := range reg.List() {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			tmpl, err := reg.Template(kind)
			if err != nil {
				t.Fatalf("template %q: %v", kind, err)
			}
			if tmpl == "" {
				t.Fatalf("template %q is empty", kind)
			}

			placeholders := Placeholders(tmpl)
			found := false
			for _, placeholder := range placeholders {
				if placeholder == "name" {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("template %q has no name placeholder (placeholders: %v)", kind, placeholders)
			}
		})
	}
}

func TestTemplate_UnknownKind(t *testing.T) {
	reg := MustNew()

	_, err := reg.Template(fixture.Kind("widget"))
	var unknown *fixture.UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownKindError, got %v", err)
	}
	for _, kind := range reg.List() {
		if !strings.Contains(err.Error(), string(kind)) {
			t.Fatalf("error should enumerate kind %q: %v", kind, err)
		}
	}
}

func TestDefaults(t *testing.T) {
	reg := MustNew()

	cases := []struct {
		kind fixture.Kind
		want map[string]string
	}{
		{kind: fixture.KindScoped, want: map[string]string{"scope": "function"}},
		{kind: fixture.KindParametrized, want: map[string]string{"params": "[1, 2]"}},
		{kind: fixture.KindData, want: map[string]string{"payload": `{"id": 1}`}},
		{kind: fixture.KindFactory, want: map[string]string{}},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			got, err := reg.Defaults(tc.kind)
			if err != nil {
				t.Fatalf("defaults %q: %v", tc.kind, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaults_ReturnsCopy(t *testing.T) {
	reg := MustNew()

	first, err := reg.Defaults(fixture.KindScoped)
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	first["scope"] = "session"

	second, err := reg.Defaults(fixture.KindScoped)
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if second["scope"] != "function" {
		t.Fatalf("mutating the returned map leaked into the registry: %q", second["scope"])
	}
}

func TestDefaults_UnknownKind(t *testing.T) {
	reg := MustNew()

	_, err := reg.Defaults(fixture.Kind("widget"))
	var unknown *fixture.UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownKindError, got %v", err)
	}
}

func TestPlaceholders(t *testing.T) {
	cases := []struct {
		name     string
		template string
		want     []string
	}{
		{
			name:     "single",
			template: "def {{ name }}():",
			want:     []string{"name"},
		},
		{
			name:     "duplicates collapse in first-appearance order",
			template: "{{ name }} {{ scope }} {{ name }}",
			want:     []string{"name", "scope"},
		},
		{
			name:     "whitespace variants",
			template: "{{name}} {{  params  }}",
			want:     []string{"name", "params"},
		},
		{
			name:     "no placeholders",
			template: "plain text",
			want:     nil,
		},
		{
			name:     "python braces are not placeholders",
			template: `data = {"id": 1}`,
			want:     nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Placeholders(tc.template)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

package registry

import (
	"fmt"
	"io/fs"
	"regexp"

	"github.com/goliatone/go-fixturegen/pkg/fixture"
)

// entry binds a fixture kind to its template file and per-kind parameter
// defaults. Declaration order here is the order List reports.
type entry struct {
	kind     fixture.Kind
	file     string
	defaults map[string]string
}

var entries = []entry{
	{kind: fixture.KindFactory, file: "templates/factory.tpl"},
	{kind: fixture.KindDatabase, file: "templates/database.tpl"},
	{kind: fixture.KindMock, file: "templates/mock.tpl"},
	{kind: fixture.KindData, file: "templates/data.tpl", defaults: map[string]string{"payload": `{"id": 1}`}},
	{kind: fixture.KindAsync, file: "templates/async.tpl"},
	{kind: fixture.KindAutouse, file: "templates/autouse.tpl"},
	{kind: fixture.KindParametrized, file: "templates/parametrized.tpl", defaults: map[string]string{"params": "[1, 2]"}},
	{kind: fixture.KindScoped, file: "templates/scoped.tpl", defaults: map[string]string{"scope": "function"}},
}

// Registry holds the fixed kind → template mapping. It is read-only after
// construction, so a single instance can serve any number of goroutines.
type Registry struct {
	order     []fixture.Kind
	templates map[fixture.Kind]string
	defaults  map[fixture.Kind]map[string]string
}

// New loads every registered template from the embedded bundle. The only
// failure mode is a mismatch between the entry table and the embedded files,
// which is a build defect rather than a runtime condition.
func New() (*Registry, error) {
	reg := &Registry{
		order:     make([]fixture.Kind, 0, len(entries)),
		templates: make(map[fixture.Kind]string, len(entries)),
		defaults:  make(map[fixture.Kind]map[string]string, len(entries)),
	}

	for _, ent := range entries {
		data, err := fs.ReadFile(embeddedTemplates, ent.file)
		if err != nil {
			return nil, fmt.Errorf("registry: read template %s: %w", ent.file, err)
		}
		reg.order = append(reg.order, ent.kind)
		reg.templates[ent.kind] = string(data)
		reg.defaults[ent.kind] = ent.defaults
	}

	return reg, nil
}

// MustNew panics when the embedded bundle cannot be loaded. Useful for
// init-time wiring where the registry is a hard precondition.
func MustNew() *Registry {
	reg, err := New()
	if err != nil {
		panic(err)
	}
	return reg
}

// List returns every registered kind in declaration order.
func (r *Registry) List() []fixture.Kind {
	return append([]fixture.Kind(nil), r.order...)
}

// Has reports whether a kind is registered.
func (r *Registry) Has(kind fixture.Kind) bool {
	_, ok := r.templates[kind]
	return ok
}

// Template returns the raw template text for a kind.
func (r *Registry) Template(kind fixture.Kind) (string, error) {
	tmpl, ok := r.templates[kind]
	if !ok {
		return "", &fixture.UnknownKindError{Kind: string(kind)}
	}
	return tmpl, nil
}

// Defaults returns a copy of the per-kind default parameters. Kinds without
// defaults yield an empty map.
func (r *Registry) Defaults(kind fixture.Kind) (map[string]string, error) {
	if _, ok := r.templates[kind]; !ok {
		return nil, &fixture.UnknownKindError{Kind: string(kind)}
	}

	src := r.defaults[kind]
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out, nil
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Placeholders extracts the unique placeholder identifiers referenced by a
// template, in first-appearance order.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

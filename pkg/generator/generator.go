package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-fixturegen/pkg/fixture"
	"github.com/goliatone/go-fixturegen/pkg/registry"
	"github.com/goliatone/go-fixturegen/pkg/render/template"
	"github.com/goliatone/go-fixturegen/pkg/render/template/gotemplate"
)

// DefaultHeader prefixes every batch document: a summary docstring plus the
// import the generated fixtures rely on.
const DefaultHeader = `"""Generated pytest fixtures."""
import pytest
`

// TemplateSource is the registry surface the generator consumes. The built-in
// *registry.Registry satisfies it.
type TemplateSource interface {
	List() []fixture.Kind
	Template(kind fixture.Kind) (string, error)
	Defaults(kind fixture.Kind) (map[string]string, error)
}

// Option customises the generator configuration.
type Option func(*Generator)

// WithRegistry injects a custom template source.
func WithRegistry(reg TemplateSource) Option {
	return func(g *Generator) {
		g.registry = reg
	}
}

// WithEngine injects a custom template rendering engine.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(g *Generator) {
		g.engine = engine
	}
}

// WithHeader overrides the batch document header.
func WithHeader(header string) Option {
	return func(g *Generator) {
		g.header = header
	}
}

// Generator renders fixture source text from the template registry. It holds
// no mutable state after construction, so one instance can serve concurrent
// callers.
type Generator struct {
	registry        TemplateSource
	engine          template.TemplateRenderer
	header          string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in registry and the
// pongo2-backed engine so callers can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{
		header: DefaultHeader,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Generate renders the fixture source for a single request. Substitutions are
// merged in order: per-kind defaults, then the fixture name, then caller
// params. A template placeholder with no merged value fails with
// *fixture.MissingParameterError; params the template never references are
// ignored. The output is the verbatim rendered template.
func (g *Generator) Generate(ctx context.Context, req fixture.Request) (string, error) {
	if ctx == nil {
		return "", errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := g.initialiseErr; err != nil {
		return "", err
	}

	tmpl, err := g.registry.Template(req.Kind)
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", errors.New("generator: fixture name is required")
	}

	merged, err := g.registry.Defaults(req.Kind)
	if err != nil {
		return "", err
	}
	if merged == nil {
		merged = make(map[string]string, len(req.Params)+1)
	}
	merged["name"] = name
	for key, value := range req.Params {
		merged[key] = value
	}

	for _, placeholder := range registry.Placeholders(tmpl) {
		if _, ok := merged[placeholder]; !ok {
			return "", &fixture.MissingParameterError{Kind: req.Kind, Parameter: placeholder}
		}
	}

	rendered, err := g.engine.RenderString(tmpl, merged)
	if err != nil {
		return "", fmt.Errorf("generator: render %q template: %w", req.Kind, err)
	}
	return rendered, nil
}

// GenerateBatch renders every definition in order and assembles one document:
// the header followed by each fixture separated by a blank line. Any failure
// aborts the whole batch with no partial output.
func (g *Generator) GenerateBatch(ctx context.Context, defs []fixture.Definition) (string, error) {
	if ctx == nil {
		return "", errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	parts := make([]string, 0, len(defs)+1)
	parts = append(parts, g.header)

	for idx, def := range defs {
		rendered, err := g.Generate(ctx, def.Request())
		if err != nil {
			return "", fmt.Errorf("generator: batch entry %d: %w", idx, err)
		}
		parts = append(parts, rendered)
	}

	return strings.Join(parts, "\n"), nil
}

// Registry exposes the configured template source so callers (CLI help,
// validation) can enumerate kinds without constructing their own.
func (g *Generator) Registry() TemplateSource {
	return g.registry
}

func (g *Generator) applyDefaults() {
	if g.defaultsApplied {
		return
	}

	if g.registry == nil {
		reg, err := registry.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: default registry: %w", err)
		} else {
			g.registry = reg
		}
	}
	if g.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(registry.TemplatesFS()))
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: default engine: %w", err)
		} else {
			g.engine = engine
		}
	}
	if g.header == "" {
		g.header = DefaultHeader
	}

	g.defaultsApplied = true
}

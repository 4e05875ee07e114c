// Package fixturegen generates pytest fixture boilerplate from a fixed
// registry of parameterized templates. The root package re-exports the
// pipeline's entry points; the pieces live under pkg.
package fixturegen

import (
	"context"

	"github.com/goliatone/go-fixturegen/pkg/fixture"
	"github.com/goliatone/go-fixturegen/pkg/generator"
	"github.com/goliatone/go-fixturegen/pkg/openapi"
)

// Kind enumerates the fixture categories; alias exported via the root package
// for convenience.
type Kind = fixture.Kind

// Request describes a single fixture generation call.
type Request = fixture.Request

// Definition is a batch-mode fixture entry.
type Definition = fixture.Definition

// UnknownKindError reports a fixture kind missing from the registry.
type UnknownKindError = fixture.UnknownKindError

// MissingParameterError reports a template placeholder with no value.
type MissingParameterError = fixture.MissingParameterError

// Kinds returns every registered fixture kind in declaration order.
func Kinds() []Kind {
	return fixture.Kinds()
}

// NewGenerator exposes the generator constructor from the top-level module so
// callers get a working pipeline from a single call.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// Generate renders a single fixture using a default generator. It is the
// simplest entry point for callers that just want the fixture text.
func Generate(ctx context.Context, kind Kind, name string, params map[string]string, options ...generator.Option) (string, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, fixture.Request{
		Kind:   kind,
		Name:   name,
		Params: params,
	})
}

// GenerateBatch assembles a full fixture document from the ordered
// definitions, delegating to a default generator.
func GenerateBatch(ctx context.Context, defs []Definition, options ...generator.Option) (string, error) {
	gen := generator.New(options...)
	return gen.GenerateBatch(ctx, defs)
}

// NewLoader constructs an OpenAPI document loader for schema-driven fixture
// seeding.
func NewLoader(options ...openapi.LoaderOption) *openapi.Loader {
	return openapi.NewLoader(options...)
}

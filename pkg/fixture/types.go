package fixture

import "strings"

// Kind enumerates the fixture categories the registry knows how to render.
// The set is closed: new kinds require a template plus a registry entry, so
// consumers can switch over Kind exhaustively.
type Kind string

const (
	KindFactory      Kind = "factory"
	KindDatabase     Kind = "database"
	KindMock         Kind = "mock"
	KindData         Kind = "data"
	KindAsync        Kind = "async"
	KindAutouse      Kind = "autouse"
	KindParametrized Kind = "parametrized"
	KindScoped       Kind = "scoped"
)

// kinds holds every registered Kind in declaration order. Order is part of
// the contract: help text and diagnostics enumerate kinds in this sequence.
var kinds = []Kind{
	KindFactory,
	KindDatabase,
	KindMock,
	KindData,
	KindAsync,
	KindAutouse,
	KindParametrized,
	KindScoped,
}

// Kinds returns the registered kinds in declaration order. The slice is a
// copy; callers may reorder or mutate it freely.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// ParseKind validates a raw string against the registered kinds. Unregistered
// values return an *UnknownKindError naming the input and the valid set.
func ParseKind(raw string) (Kind, error) {
	candidate := Kind(strings.TrimSpace(raw))
	for _, kind := range kinds {
		if kind == candidate {
			return kind, nil
		}
	}
	return "", &UnknownKindError{Kind: raw}
}

// Request describes a single fixture to generate. Callers construct one,
// hand it to the generator, and discard it; requests carry no state.
type Request struct {
	// Kind selects which template to render.
	Kind Kind

	// Name is the identifier-like fixture name substituted into the template.
	// The generator requires it to be non-empty but imposes no further shape.
	Name string

	// Params carries template-specific substitutions (scope, params, payload).
	// Keys the template does not reference are ignored.
	Params map[string]string
}

// Definition is the batch-mode counterpart of Request, shaped for YAML batch
// documents. Name falls back to the kind identifier when omitted.
type Definition struct {
	Kind   string            `yaml:"kind" json:"kind"`
	Name   string            `yaml:"name,omitempty" json:"name,omitempty"`
	Scope  string            `yaml:"scope,omitempty" json:"scope,omitempty"`
	Params string            `yaml:"params,omitempty" json:"params,omitempty"`
	Extra  map[string]string `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// Request converts a Definition into the Request consumed by the generator,
// applying the name fallback and folding the well-known keys into Params.
func (d Definition) Request() Request {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = strings.TrimSpace(d.Kind)
	}

	params := make(map[string]string, len(d.Extra)+2)
	for key, value := range d.Extra {
		params[key] = value
	}
	if d.Scope != "" {
		params["scope"] = d.Scope
	}
	if d.Params != "" {
		params["params"] = d.Params
	}

	return Request{
		Kind:   Kind(strings.TrimSpace(d.Kind)),
		Name:   name,
		Params: params,
	}
}

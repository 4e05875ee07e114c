package fixture

import (
	"fmt"
	"strings"
)

// UnknownKindError reports a fixture kind that is not in the registry. The
// message enumerates the valid kinds so CLI users can self-correct without
// consulting docs.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	return fmt.Sprintf("fixture: unknown kind %q (valid kinds: %s)", e.Kind, strings.Join(names, ", "))
}

// MissingParameterError reports a template placeholder with no substitution
// value after defaults, name, and caller params were merged.
type MissingParameterError struct {
	Kind      Kind
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("fixture: template %q requires parameter %q", e.Kind, e.Parameter)
}

package fixturegen

import (
	"io/fs"

	"github.com/goliatone/go-fixturegen/pkg/registry"
)

// EmbeddedTemplates exposes the built-in fixture templates so callers can
// inspect or reuse them without importing the registry package directly.
func EmbeddedTemplates() fs.FS {
	return registry.TemplatesFS()
}

package registry

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded fixture template bundle so callers can
// inspect the raw template files or feed them to their own rendering engine.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

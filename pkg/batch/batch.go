// Package batch loads fixture definition documents for multi-fixture
// generation. A document is a YAML file with a `fixtures` sequence; entry
// order is preserved all the way into the assembled output.
package batch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fixturegen/pkg/fixture"
)

// Document is the on-disk shape of a batch definition file.
type Document struct {
	Fixtures []fixture.Definition `yaml:"fixtures"`
}

// Parse decodes a batch document. Every entry must carry a kind; whether that
// kind is registered is the generator's call, so typos still fail fast but at
// generation time with the full valid-kind listing.
func Parse(data []byte) ([]fixture.Definition, error) {
	if len(data) == 0 {
		return nil, errors.New("batch: document is empty")
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("batch: decode document: %w", err)
	}
	if len(doc.Fixtures) == 0 {
		return nil, errors.New("batch: document declares no fixtures")
	}

	for idx, def := range doc.Fixtures {
		if strings.TrimSpace(def.Kind) == "" {
			return nil, fmt.Errorf("batch: fixture %d: kind is required", idx)
		}
	}

	return doc.Fixtures, nil
}

// Load reads and parses a batch document from disk.
func Load(path string) ([]fixture.Definition, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("batch: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read document: %w", err)
	}
	return Parse(data)
}

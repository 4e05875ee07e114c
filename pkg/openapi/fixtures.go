package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fixturegen/pkg/fixture"
)

// maxSampleDepth caps recursion when sampling nested schemas so reference
// cycles cannot hang generation.
const maxSampleDepth = 5

// Definitions derives one `data` fixture definition per component schema in
// the document. Each definition carries a `payload` parameter holding a
// Python dict literal sampled from the schema, so a batch run seeds a test
// suite with a payload fixture per model. Schema names are processed in
// sorted order to keep output deterministic.
func Definitions(ctx context.Context, doc Document) ([]fixture.Definition, error) {
	if ctx == nil {
		return nil, errors.New("openapi: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document declares no component schemas")
	}

	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]fixture.Definition, 0, len(names))
	for _, name := range names {
		ref := spec.Components.Schemas[name]
		defs = append(defs, fixture.Definition{
			Kind: string(fixture.KindData),
			Name: snakeCase(name),
			Extra: map[string]string{
				"payload": sampleLiteral(ref, 0),
			},
		})
	}

	return defs, nil
}

// sampleLiteral renders a Python literal exercising the schema: declared
// defaults win, then enums, then a type-appropriate example value.
func sampleLiteral(ref *openapi3.SchemaRef, depth int) string {
	if ref == nil || ref.Value == nil || depth > maxSampleDepth {
		return "None"
	}

	schema := ref.Value
	if schema.Default != nil {
		return pythonValue(schema.Default)
	}
	if len(schema.Enum) > 0 {
		return pythonValue(schema.Enum[0])
	}

	switch firstSchemaType(schema.Type) {
	case "string":
		return pythonValue(sampleString(schema.Format))
	case "integer":
		return "1"
	case "number":
		return "1.0"
	case "boolean":
		return "False"
	case "array":
		return "[" + sampleLiteral(schema.Items, depth+1) + "]"
	case "object", "":
		if len(schema.Properties) == 0 {
			return "{}"
		}
		keys := make([]string, 0, len(schema.Properties))
		for key := range schema.Properties {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%q: %s", key, sampleLiteral(schema.Properties[key], depth+1)))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "None"
	}
}

func sampleString(format string) string {
	switch format {
	case "date":
		return "2024-01-01"
	case "date-time":
		return "2024-01-01T00:00:00Z"
	case "uuid":
		return "00000000-0000-0000-0000-000000000000"
	case "email":
		return "user@example.com"
	default:
		return "example"
	}
}

// pythonValue renders a decoded JSON value as a Python literal.
func pythonValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, pythonValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%q: %s", key, pythonValue(v[key])))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil || len(*types) == 0 {
		return ""
	}
	return (*types)[0]
}

// snakeCase converts CamelCase schema names into snake_case fixture names
// (TodoItemResponse → todo_item_response).
func snakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	runes := []rune(name)
	for idx, r := range runes {
		if unicode.IsUpper(r) {
			prevSep := idx > 0 && (runes[idx-1] == '-' || runes[idx-1] == ' ' || runes[idx-1] == '_')
			prevLower := idx > 0 && (unicode.IsLower(runes[idx-1]) || unicode.IsDigit(runes[idx-1]))
			nextLower := idx+1 < len(runes) && unicode.IsLower(runes[idx+1])
			if idx > 0 && !prevSep && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '-' || r == ' ' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

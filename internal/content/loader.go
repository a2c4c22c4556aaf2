package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"howitworks/internal/steps"
)

// Format is the encoding of a content document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "content.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add content schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile content schema: %w", err)
	}
	return schema, nil
})

// document is the on-disk shape of a content file.
type document struct {
	Title    string         `json:"title,omitempty"`
	Subtitle string         `json:"subtitle,omitempty"`
	Steps    []steps.Record `json:"steps"`
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads, validates and converts a content file into a section.
func LoadFile(path string) (steps.Section, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return steps.Section{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return steps.Section{}, fmt.Errorf("read content file: %w", err)
	}
	sec, err := Parse(data, format)
	if err != nil {
		return steps.Section{}, fmt.Errorf("content file %s: %w", path, err)
	}
	return sec, nil
}

// Parse decodes data in the given format, validates it and converts it into a
// section. A missing title or subtitle falls back to the built-in header.
func Parse(data []byte, format Format) (steps.Section, error) {
	raw, err := decodeGeneric(data, format)
	if err != nil {
		return steps.Section{}, err
	}

	// Round trip through JSON so every decoder hands the validator the same
	// value types (float64, map[string]any, []any).
	normalized, err := json.Marshal(raw)
	if err != nil {
		return steps.Section{}, fmt.Errorf("normalize content: %w", err)
	}
	var instance any
	if err := json.Unmarshal(normalized, &instance); err != nil {
		return steps.Section{}, fmt.Errorf("normalize content: %w", err)
	}

	if err := validate(instance); err != nil {
		return steps.Section{}, err
	}

	var doc document
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return steps.Section{}, fmt.Errorf("decode content: %w", err)
	}
	return doc.section(), nil
}

func decodeGeneric(data []byte, format Format) (any, error) {
	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		raw = table
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if raw == nil {
		// An empty document still has to satisfy the schema.
		raw = map[string]any{}
	}
	return raw, nil
}

func validate(instance any) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(instance); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		var errs []error
		collectSchemaErrors(ve, &errs)
		return errors.Join(errs...)
	}
	return nil
}

func collectSchemaErrors(err *jsonschema.ValidationError, result *[]error) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		*result = append(*result, &ValidationError{
			Path:    jsonPointerToPath(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, result)
	}
}

// jsonPointerToPath turns "/steps/0/number" into "steps[0].number".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for i, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (d document) section() steps.Section {
	header := steps.DefaultHeader()
	if d.Title != "" {
		header.Title = d.Title
	}
	if d.Subtitle != "" {
		header.Subtitle = d.Subtitle
	}
	return steps.Section{
		Header: header,
		Steps:  steps.NewSequence(d.Steps...),
	}
}

package resume

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
)

// Format identifies the serialisation of a data file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "resume.schema.json"

// aliases maps lower-cased alternative keys to canonical property names.
var aliases = map[string]string{
	"developmententries": "developmentAndEducation",
}

var quotedName = regexp.MustCompile(`["']([^"']+)["']`)

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("resume: adding schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

var schemaTree = sync.OnceValue(func() map[string]any {
	var tree map[string]any
	if err := json.Unmarshal(schemaJSON, &tree); err != nil {
		panic(fmt.Sprintf("resume: embedded schema: %v", err))
	}
	return tree
})

// FormatOf guesses the format of a file from its extension. Anything that
// is not .yaml or .yml is treated as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and parses the data file at path from fsys.
func Load(fsys afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("resume: reading %s: %w", path, err)
	}
	doc, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("resume: loading %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes data, matches keys case-insensitively, validates the result
// against the embedded schema and returns the populated Document.
// Absent required fields yield errors wrapping ErrMissingField.
func Parse(data []byte, format Format) (*Document, error) {
	if format == FormatYAML {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("resume: parsing yaml: %w", err)
		}
		data = converted
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("resume: parsing json: %w", err)
	}
	if instance == nil {
		return nil, &InvalidError{Reason: "document is empty"}
	}
	instance, err := canonicalize(instance, schemaTree(), "")
	if err != nil {
		return nil, err
	}

	schema, err := compiled()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(instance); err != nil {
		return nil, translate(err)
	}

	normalized, err := json.Marshal(instance)
	if err != nil {
		return nil, fmt.Errorf("resume: re-encoding: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, fmt.Errorf("resume: decoding: %w", err)
	}
	return &doc, nil
}

// canonicalize renames object keys to the spelling used by the schema node
// that describes them, recursing into nested objects and array items. Two
// keys that name the same property, by case or by alias, are an
// InvalidError at path.
func canonicalize(v any, node map[string]any, path string) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		props, _ := node["properties"].(map[string]any)
		if len(props) == 0 {
			return val, nil
		}
		index := make(map[string]string, len(props))
		for name := range props {
			index[strings.ToLower(name)] = name
		}

		keys := make([]string, 0, len(val))
		for key := range val {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		out := make(map[string]any, len(val))
		given := make(map[string]string, len(val))
		for _, key := range keys {
			lower := strings.ToLower(key)
			name, ok := index[lower]
			if !ok {
				name, ok = aliases[lower]
			}
			if !ok {
				name = key
			}
			if prev, dup := given[name]; dup {
				return nil, &InvalidError{
					Path:   path + "/" + name,
					Reason: fmt.Sprintf("key given more than once (%q and %q)", prev, key),
				}
			}
			given[name] = key

			sub, _ := props[name].(map[string]any)
			child, err := canonicalize(val[key], sub, path+"/"+name)
			if err != nil {
				return nil, err
			}
			out[name] = child
		}
		return out, nil
	case []any:
		items, _ := node["items"].(map[string]any)
		if items == nil {
			return val, nil
		}
		for i := range val {
			item, err := canonicalize(val[i], items, fmt.Sprintf("%s/%d", path, i))
			if err != nil {
				return nil, err
			}
			val[i] = item
		}
		return val, nil
	default:
		return v, nil
	}
}

// translate converts a schema validation failure into MissingFieldError and
// InvalidError values joined together.
func translate(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("resume: validating: %w", err)
	}

	missing := map[string][]string{}
	var invalid []error
	for _, leaf := range leaves(ve) {
		if isRequired(leaf) {
			for _, m := range quotedName.FindAllStringSubmatch(leaf.Message, -1) {
				missing[leaf.InstanceLocation] = append(missing[leaf.InstanceLocation], m[1])
			}
			continue
		}
		invalid = append(invalid, &InvalidError{Path: leaf.InstanceLocation, Reason: leaf.Message})
	}

	paths := make([]string, 0, len(missing))
	for p := range missing {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	errs := make([]error, 0, len(paths)+len(invalid))
	for _, p := range paths {
		errs = append(errs, &MissingFieldError{Path: p, Fields: missing[p]})
	}
	errs = append(errs, invalid...)
	if len(errs) == 0 {
		return &InvalidError{Reason: ve.Message}
	}
	return errors.Join(errs...)
}

func leaves(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var out []*jsonschema.ValidationError
	for _, c := range ve.Causes {
		out = append(out, leaves(c)...)
	}
	return out
}

func isRequired(ve *jsonschema.ValidationError) bool {
	return strings.HasSuffix(ve.KeywordLocation, "/required") ||
		strings.HasPrefix(ve.Message, "missing properties")
}

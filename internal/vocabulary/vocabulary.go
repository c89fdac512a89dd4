// Package vocabulary loads custom priority and status vocabularies from JSON or TOML files.
package vocabulary

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"tasknotes-nlp/internal/language"
)

//go:embed vocabulary.schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("vocabulary.schema.json", schemaJSON)

var (
	ErrUnsupportedFormat = errors.New("unsupported vocabulary format")
	ErrInvalid           = errors.New("invalid vocabulary")
)

// Format is the encoding of a vocabulary document.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// File is a vocabulary document:
//
//	[[priorities]]
//	id = "p1"
//	label = "Top priority"
type File struct {
	Priorities []language.Term `json:"priorities,omitempty" toml:"priorities"`
	Statuses   []language.Term `json:"statuses,omitempty" toml:"statuses"`
}

// Options converts the file to pack construction options.
func (f File) Options() language.Options {
	return language.Options{Priorities: f.Priorities, Statuses: f.Statuses}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and validates the vocabulary file at path.
func Load(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads a vocabulary document, validates it against the embedded schema and decodes it.
func Decode(r io.Reader, format Format) (File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("read vocabulary: %w", err)
	}

	var raw any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	case FormatTOML:
		var doc map[string]any
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		// the schema validates JSON values, so normalize the TOML tree first
		if raw, err = toJSONValue(doc); err != nil {
			return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := schema.Validate(raw); err != nil {
		return File{}, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(schemaErrors(err), "; "))
	}

	var out File
	normalized, err := json.Marshal(raw)
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := json.Unmarshal(normalized, &out); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return out, nil
}

func toJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	err = json.Unmarshal(data, &out)
	return out, err
}

// schemaErrors flattens a validation error to "location: message" lines.
func schemaErrors(err error) []string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	var out []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			out = append(out, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return out
}

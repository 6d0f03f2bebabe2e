package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ParseFile reads and parses the catalog file at path.
//
// Errors:
//   - a missing file yields an error matching fs.ErrNotExist
//   - malformed JSON yields a *SyntaxError
//   - a schema violation yields a *SchemaError
//
// A well-formed file without an "examples" key parses to an empty File.
func ParseFile(path string) (*File, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		var syntaxErr *SyntaxError
		var schemaErr *SchemaError
		switch {
		case errors.As(err, &syntaxErr):
			syntaxErr.Path = path
		case errors.As(err, &schemaErr):
			schemaErr.Path = path
		}
		return nil, err
	}
	f.Path = path
	return f, nil
}

// Parse validates and decodes raw catalog JSON.
func Parse(data []byte) (*File, error) {
	res, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, &SchemaError{Issues: res.Issues}
	}

	var top struct {
		Merge    *bool           `json:"merge"`
		Examples json.RawMessage `json:"examples"`
	}
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, &SyntaxError{Err: err}
	}

	f := &File{Merge: top.Merge}
	if len(top.Examples) == 0 {
		return f, nil
	}

	f.Examples, err = decodeExamples(top.Examples)
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}
	return f, nil
}

// decodeExamples walks the examples object token by token so that
// declaration order survives decoding.
func decodeExamples(raw json.RawMessage) ([]NamedEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("examples: expected object, got %v", tok)
	}

	var entries []NamedEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("examples: expected key, got %v", keyTok)
		}

		var val any
		if err := dec.Decode(&val); err != nil {
			return nil, fmt.Errorf("examples.%s: %w", name, err)
		}

		entry, err := toEntry(val)
		if err != nil {
			return nil, fmt.Errorf("examples.%s: %w", name, err)
		}
		entries = append(entries, NamedEntry{Name: name, Entry: entry})
	}
	return entries, nil
}

func toEntry(val any) (Entry, error) {
	switch v := val.(type) {
	case string:
		return Shorthand(v), nil
	case map[string]any:
		if _, ok := v[FieldSource].(string); !ok {
			return Entry{}, fmt.Errorf("record is missing a string %q field", FieldSource)
		}
		return Record(v), nil
	default:
		return Entry{}, fmt.Errorf("unsupported entry type %T", val)
	}
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orcaflat/orcaflat/pkg/models"
)

// MalformedProfileError reports a profile file that cannot be used: the JSON
// does not parse, an object repeats a key, or the required name field is
// missing.
type MalformedProfileError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedProfileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed profile %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed profile %s: %s", e.Path, e.Reason)
}

func (e *MalformedProfileError) Unwrap() error { return e.Err }

// LoadProfileFile reads and parses a single profile JSON file. Duplicate
// keys are rejected: the host application silently keeps one of the two,
// which hides typos in hand-edited profiles.
func LoadProfileFile(path string) (*models.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return ParseProfile(data, path)
}

// ParseProfile parses profile JSON bytes. The path is recorded on the
// profile and used in error messages; it may be empty for in-memory input.
func ParseProfile(data []byte, path string) (*models.Profile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, &MalformedProfileError{Path: path, Reason: "invalid JSON", Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &MalformedProfileError{Path: path, Reason: "profile must be a JSON object"}
	}

	fields, err := decodeObject(dec)
	if err != nil {
		return nil, &MalformedProfileError{Path: path, Reason: "invalid JSON", Err: err}
	}

	name, _ := fields["name"].(string)
	if strings.TrimSpace(name) == "" {
		return nil, &MalformedProfileError{Path: path, Reason: "missing required 'name' field"}
	}

	p := &models.Profile{
		Name:     name,
		Inherits: stringOrEmpty(fields["inherits"]),
		Path:     path,
		Fields:   fields,
	}
	if typeStr := stringOrEmpty(fields["type"]); typeStr != "" {
		if pt, err := models.ParseProfileType(typeStr); err == nil {
			p.Type = pt
		}
	}
	return p, nil
}

func stringOrEmpty(v any) string {
	s, _ := v.(string)
	return s
}

// decodeObject consumes object members up to and including the closing
// brace. The opening brace must already be consumed.
func decodeObject(dec *json.Decoder) (map[string]any, error) {
	obj := make(map[string]any)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		if _, exists := obj[key]; exists {
			return nil, fmt.Errorf("duplicate key detected: %s", key)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj[key] = val
	}
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			arr := []any{}
			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, elem)
			}
			if _, err := dec.Token(); err != nil { // closing bracket
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	default:
		return tok, nil
	}
}

// TypeFromPath derives a profile type from the file's directory, the layout
// OrcaSlicer uses for both system vendors and user profiles. Vendors nest
// subdirectories under the type directory, so the walk goes upward until a
// type name is found.
func TypeFromPath(path string) models.ProfileType {
	dir := filepath.Dir(path)
	for dir != "" {
		if pt, err := models.ParseProfileType(filepath.Base(dir)); err == nil {
			return pt
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

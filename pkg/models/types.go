package models

import (
	"fmt"
	"strings"
)

// ProfileType identifies which template set a profile belongs to.
type ProfileType string

const (
	TypeFilament ProfileType = "filament"
	TypeMachine  ProfileType = "machine"
	TypeProcess  ProfileType = "process"
)

// ProfileTypes lists all known types in a stable order.
var ProfileTypes = []ProfileType{TypeFilament, TypeMachine, TypeProcess}

// ParseProfileType converts a string to a ProfileType.
func ParseProfileType(s string) (ProfileType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "filament":
		return TypeFilament, nil
	case "machine":
		return TypeMachine, nil
	case "process":
		return TypeProcess, nil
	default:
		return "", fmt.Errorf("unknown profile type: %s (must be: filament, machine, or process)", s)
	}
}

// Profile is a raw or flattened OrcaSlicer profile. Fields holds the full
// JSON body verbatim, including name/inherits/type; the struct fields are
// convenience views kept in sync by the loader.
type Profile struct {
	Name     string
	Inherits string
	Type     ProfileType
	Path     string
	Fields   map[string]any

	// InheritedFrom records the ancestor chain a flattened profile was
	// merged from, root last. Empty for raw profiles.
	InheritedFrom []string
}

// Clone returns a deep copy so merges never mutate loaded profiles.
func (p *Profile) Clone() *Profile {
	out := &Profile{
		Name:     p.Name,
		Inherits: p.Inherits,
		Type:     p.Type,
		Path:     p.Path,
		Fields:   make(map[string]any, len(p.Fields)),
	}
	for k, v := range p.Fields {
		out.Fields[k] = cloneValue(v)
	}
	if p.InheritedFrom != nil {
		out.InheritedFrom = append([]string(nil), p.InheritedFrom...)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case []any:
		c := make([]any, len(val))
		for i, e := range val {
			c[i] = cloneValue(e)
		}
		return c
	case []string:
		return append([]string(nil), val...)
	case map[string]any:
		c := make(map[string]any, len(val))
		for k, e := range val {
			c[k] = cloneValue(e)
		}
		return c
	default:
		return val
	}
}

// StringField returns a field as a string, or "" if absent or not a string.
func (p *Profile) StringField(key string) string {
	if s, ok := p.Fields[key].(string); ok {
		return s
	}
	return ""
}

// ListField returns a field as a string list. JSON arrays come back as
// []any from decoding; semicolon-joined strings are split the way the host
// application does for legacy list fields. Absent keys return nil.
func (p *Profile) ListField(key string) []string {
	switch val := p.Fields[key].(type) {
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, e := range val {
			out = append(out, fmt.Sprint(e))
		}
		return out
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		parts := strings.Split(val, ";")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return nil
	}
}

// Instantiated reports whether the profile is meant for direct end use
// rather than serving only as an inheritance base.
func (p *Profile) Instantiated() bool {
	return strings.EqualFold(p.StringField("instantiation"), "true")
}

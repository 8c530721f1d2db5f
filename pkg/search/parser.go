package search

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldType represents the type of field being searched
type FieldType string

const (
	FieldName     FieldType = "name"
	FieldTypeOf   FieldType = "type"
	FieldSource   FieldType = "source"
	FieldInherits FieldType = "inherits"
	FieldKey      FieldType = "key"
)

// Condition represents a single search condition
type Condition struct {
	Field  FieldType
	Value  string
	Negate bool
}

// Query represents a parsed search query
type Query struct {
	Conditions []Condition
	Raw        string
}

// Parser handles parsing of search queries
type Parser struct {
	fieldPattern  *regexp.Regexp
	quotedPattern *regexp.Regexp
}

// NewParser creates a new search query parser
func NewParser() *Parser {
	return &Parser{
		fieldPattern:  regexp.MustCompile(`^(\w+):(.+)$`),
		quotedPattern: regexp.MustCompile(`^"([^"]*)"$`),
	}
}

// Parse parses a query string like `type:filament source:BBL -inherits:base PLA`
// into a Query. Bare terms match against the profile name; a leading '-'
// negates a condition. Quoted values may contain spaces.
func (p *Parser) Parse(input string) (*Query, error) {
	query := &Query{Raw: input}

	for _, tok := range tokenize(input) {
		negate := false
		if strings.HasPrefix(tok, "-") && len(tok) > 1 {
			negate = true
			tok = tok[1:]
		}

		cond := Condition{Field: FieldName, Negate: negate}
		if m := p.fieldPattern.FindStringSubmatch(tok); m != nil {
			field, err := parseField(m[1])
			if err != nil {
				return nil, err
			}
			cond.Field = field
			tok = m[2]
		}

		if m := p.quotedPattern.FindStringSubmatch(tok); m != nil {
			tok = m[1]
		}
		if tok == "" {
			continue
		}
		cond.Value = tok
		query.Conditions = append(query.Conditions, cond)
	}

	return query, nil
}

func parseField(name string) (FieldType, error) {
	switch strings.ToLower(name) {
	case "name":
		return FieldName, nil
	case "type":
		return FieldTypeOf, nil
	case "source":
		return FieldSource, nil
	case "inherits":
		return FieldInherits, nil
	case "key":
		return FieldKey, nil
	default:
		return "", fmt.Errorf("unknown search field: %s (must be: name, type, source, inherits, or key)", name)
	}
}

// tokenize splits on whitespace but keeps quoted values together, so
// `name:"Generic PLA"` is a single token.
func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

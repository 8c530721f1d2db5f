package search

import (
	"strings"

	"github.com/orcaflat/orcaflat/pkg/models"
)

// Item is a searchable profile with the metadata the store knows about it.
type Item struct {
	Name    string
	Path    string
	Source  string
	Profile *models.Profile
}

// Engine matches items against parsed queries.
type Engine struct {
	parser *Parser
}

func NewEngine() *Engine {
	return &Engine{parser: NewParser()}
}

// Search returns the items matching the query string, in input order.
// An empty query matches everything.
func (e *Engine) Search(query string, items []Item) ([]Item, error) {
	q, err := e.parser.Parse(query)
	if err != nil {
		return nil, err
	}

	var results []Item
	for _, item := range items {
		if matches(q, item) {
			results = append(results, item)
		}
	}
	return results, nil
}

// matches requires every condition to hold (AND semantics).
func matches(q *Query, item Item) bool {
	for _, cond := range q.Conditions {
		if matchCondition(cond, item) == cond.Negate {
			return false
		}
	}
	return true
}

func matchCondition(cond Condition, item Item) bool {
	value := strings.ToLower(cond.Value)
	switch cond.Field {
	case FieldName:
		return strings.Contains(strings.ToLower(item.Name), value)
	case FieldTypeOf:
		return item.Profile != nil && strings.EqualFold(string(item.Profile.Type), cond.Value)
	case FieldSource:
		return strings.Contains(strings.ToLower(item.Source), value)
	case FieldInherits:
		return item.Profile != nil && strings.Contains(strings.ToLower(item.Profile.Inherits), value)
	case FieldKey:
		if item.Profile == nil {
			return false
		}
		for key := range item.Profile.Fields {
			if strings.EqualFold(key, cond.Value) {
				return true
			}
		}
		return false
	}
	return false
}

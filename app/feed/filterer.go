package feed

import (
	"strings"
)

// Filter selects items by keyword. The named fields are joined with a
// single space and matched case-insensitively.
type Filter struct {
	Fields   []string
	Includes []string // at least one must match, when non-empty
}

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run keeps the items that pass every filter, preserving order.
func (f *Filterer) Run(items []Item, filters []Filter) []Item {
	if len(filters) == 0 {
		return items
	}

	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if f.Matches(item, filters) {
			kept = append(kept, item)
		}
	}

	return kept
}

func (f *Filterer) Matches(item Item, filters []Filter) bool {
	for _, filter := range filters {
		value := Fold(f.getFieldValue(item, filter.Fields))

		if len(filter.Includes) > 0 {
			matched := false
			for _, include := range filter.Includes {
				if f.matchesFilter(value, include) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
	}

	return true
}

func (f *Filterer) matchesFilter(folded, pattern string) bool {
	return strings.Contains(folded, Fold(pattern))
}

func (f *Filterer) getFieldValue(item Item, fields []string) string {
	values := make([]string, 0, len(fields))
	for _, field := range fields {
		switch field {
		case "title":
			values = append(values, item.Title)
		case "description":
			values = append(values, item.Description)
		case "category":
			values = append(values, item.Category)
		case "link":
			values = append(values, item.Link)
		}
	}
	return strings.Join(values, " ")
}

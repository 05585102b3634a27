package catalog

import "strings"

type SortOption struct {
	Field Field
	Desc  bool
}

// DefaultSort orders by name ascending.
var DefaultSort = []SortOption{{Field: FieldName}}

// ParseOrderBy reads "name asc, color desc". Unknown fields are dropped; an
// empty result falls back to DefaultSort.
func ParseOrderBy(orderBy string) []SortOption {
	var options []SortOption
	for _, part := range strings.Split(orderBy, ",") {
		tokens := strings.Fields(part)
		if len(tokens) == 0 {
			continue
		}
		field, ok := ParseField(tokens[0])
		if !ok {
			continue
		}
		options = append(options, SortOption{
			Field: field,
			Desc:  len(tokens) > 1 && strings.EqualFold(tokens[1], "desc"),
		})
	}
	if len(options) == 0 {
		return DefaultSort
	}
	return options
}

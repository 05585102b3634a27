package specification

import (
	"wiccapedia-api/pkg/catalog"

	"gorm.io/gorm"
)

// GemSearch matches the folded name, description and category.
type GemSearch struct {
	Term string
}

func (s GemSearch) Apply(db *gorm.DB) *gorm.DB {
	term := catalog.Normalize(s.Term)
	if term == "" {
		return db
	}
	return db.Where(`search_text LIKE ? ESCAPE '\'`, "%"+catalog.EscapeLike(term)+"%")
}

var gemKeyColumns = map[catalog.Field]string{
	catalog.FieldColor:           "color_key",
	catalog.FieldCategory:        "category_key",
	catalog.FieldChemicalFormula: "formula_key",
}

// GemFieldEquals compares a folded column with the folded value.
type GemFieldEquals struct {
	Field catalog.Field
	Value string
}

func (s GemFieldEquals) Apply(db *gorm.DB) *gorm.DB {
	column, ok := gemKeyColumns[s.Field]
	if !ok || s.Value == "" {
		return db
	}
	return db.Where(column+" = ?", catalog.Normalize(s.Value))
}

// GemFilters expands catalog filters into their specifications.
func GemFilters(f catalog.Filters) []Specification {
	if f.IsEmpty() {
		return nil
	}
	return []Specification{
		GemSearch{Term: f.SearchTerm()},
		GemFieldEquals{Field: catalog.FieldColor, Value: f.Color},
		GemFieldEquals{Field: catalog.FieldCategory, Value: f.Category},
		GemFieldEquals{Field: catalog.FieldChemicalFormula, Value: f.ChemicalFormula},
	}
}

// GemSort orders by the parsed options with id as the final tie-breaker so
// offsets stay stable between pages.
func GemSort(options []catalog.SortOption) []Specification {
	specs := make([]Specification, 0, len(options)+1)
	for _, o := range options {
		specs = append(specs, OrderBy{Field: string(o.Field), Desc: o.Desc})
	}
	return append(specs, OrderBy{Field: "id"})
}

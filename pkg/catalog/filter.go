package catalog

import "strings"

type Field string

const (
	FieldName            Field = "name"
	FieldColor           Field = "color"
	FieldCategory        Field = "category"
	FieldChemicalFormula Field = "chemical_formula"
)

func ParseField(s string) (Field, bool) {
	switch Field(strings.ToLower(strings.TrimSpace(s))) {
	case FieldName:
		return FieldName, true
	case FieldColor:
		return FieldColor, true
	case FieldCategory:
		return FieldCategory, true
	case FieldChemicalFormula:
		return FieldChemicalFormula, true
	}
	return "", false
}

// Filters is the decoded filter part of a listing query.
type Filters struct {
	Search          string
	Name            string
	Color           string
	Category        string
	ChemicalFormula string
}

// ApplyOData merges an expression such as
// "color eq 'Blue' and category eq 'Quartz'" into f. Conditions on unknown
// fields or with other operators are ignored.
func (f *Filters) ApplyOData(expr string) {
	if strings.TrimSpace(expr) == "" {
		return
	}
	for _, condition := range strings.Split(expr, " and ") {
		field, value, ok := parseCondition(condition)
		if !ok {
			continue
		}
		switch field {
		case FieldName:
			f.Name = value
		case FieldColor:
			f.Color = value
		case FieldCategory:
			f.Category = value
		case FieldChemicalFormula:
			f.ChemicalFormula = value
		}
	}
}

func parseCondition(condition string) (Field, string, bool) {
	parts := strings.Fields(condition)
	if len(parts) < 3 || parts[1] != "eq" {
		return "", "", false
	}
	field, ok := ParseField(parts[0])
	if !ok {
		return "", "", false
	}
	value := strings.Trim(strings.Join(parts[2:], " "), `'"`)
	return field, value, true
}

// SearchTerm prefers the explicit search over a name filter.
func (f Filters) SearchTerm() string {
	if f.Search != "" {
		return f.Search
	}
	return f.Name
}

func (f Filters) IsEmpty() bool {
	return f.Search == "" && f.Name == "" && f.Color == "" && f.Category == "" && f.ChemicalFormula == ""
}

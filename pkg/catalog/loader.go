package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	DefaultDescription = "Una gema con propiedades místicas especiales."
	DefaultCategory    = "Mineral"
	DefaultColor       = "Desconocido"
	DefaultFormula     = "N/A"
)

// Record is one gem of a seed file.
type Record struct {
	Name               string `json:"name"`
	Image              string `json:"image"`
	MagicalDescription string `json:"magical_description"`
	Category           string `json:"category"`
	Color              string `json:"color"`
	ChemicalFormula    string `json:"chemical_formula"`
}

// Fill replaces blank fields with catalog defaults.
func (r *Record) Fill() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Image == "" || r.Image == "images/.jpg" {
		r.Image = ImagePath(r.Name)
	}
	if strings.TrimSpace(r.MagicalDescription) == "" {
		r.MagicalDescription = DefaultDescription
	}
	if strings.TrimSpace(r.Category) == "" {
		r.Category = DefaultCategory
	}
	if strings.TrimSpace(r.Color) == "" {
		r.Color = DefaultColor
	}
	if strings.TrimSpace(r.ChemicalFormula) == "" {
		r.ChemicalFormula = DefaultFormula
	}
}

// LoadRecords reads a JSON array of gems. Entries that are not objects or
// have no name are skipped and reported by index.
func LoadRecords(r io.Reader) ([]Record, []int, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("parse gem seed file: %w", err)
	}

	records := make([]Record, 0, len(raw))
	var skipped []int
	for i, item := range raw {
		var rec Record
		if err := json.Unmarshal(item, &rec); err != nil || strings.TrimSpace(rec.Name) == "" {
			skipped = append(skipped, i)
			continue
		}
		rec.Fill()
		records = append(records, rec)
	}
	return records, skipped, nil
}

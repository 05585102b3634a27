package entity

import "github.com/google/uuid"

type Gem struct {
	Id                 uuid.UUID
	Name               string
	Image              string
	MagicalDescription string
	Category           string
	Color              string
	ChemicalFormula    string
}

// GemPage is one window of a filtered, sorted gem listing.
type GemPage struct {
	Gems       []*Gem
	Offset     int
	TotalCount int64
}

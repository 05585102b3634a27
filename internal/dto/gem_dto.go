package dto

import "github.com/google/uuid"

type CreateGemRequest struct {
	Name               string `json:"name" validate:"required,max=255"`
	MagicalDescription string `json:"magical_description"`
	Category           string `json:"category" validate:"max=255"`
	Color              string `json:"color" validate:"max=255"`
	ChemicalFormula    string `json:"chemical_formula" validate:"max=255"`
}

type UpdateGemRequest struct {
	Id                 uuid.UUID `json:"-"`
	Name               string    `json:"name" validate:"required,max=255"`
	Image              string    `json:"image" validate:"max=512"`
	MagicalDescription string    `json:"magical_description"`
	Category           string    `json:"category" validate:"max=255"`
	Color              string    `json:"color" validate:"max=255"`
	ChemicalFormula    string    `json:"chemical_formula" validate:"max=255"`
}

type GemResponse struct {
	Id                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Image              string    `json:"image"`
	MagicalDescription string    `json:"magical_description"`
	Category           string    `json:"category"`
	Color              string    `json:"color"`
	ChemicalFormula    string    `json:"chemical_formula"`
}

// ListGemsRequest carries the raw query parameters of GET /api/gems.
type ListGemsRequest struct {
	Search          string
	Filter          string
	OrderBy         string
	Name            string
	Color           string
	Category        string
	ChemicalFormula string
	Limit           int
	Cursor          string
}

type PaginationInfo struct {
	HasNext        bool    `json:"has_next"`
	HasPrevious    bool    `json:"has_previous"`
	NextCursor     *string `json:"next_cursor"`
	PreviousCursor *string `json:"previous_cursor"`
	TotalCount     int64   `json:"total_count"`
	PageSize       int     `json:"page_size"`
}

type GemPageResponse struct {
	Data       []*GemResponse `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

package mapper

import (
	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/model"
	"wiccapedia-api/pkg/catalog"
)

type GemMapper struct{}

func NewGemMapper() *GemMapper {
	return &GemMapper{}
}

func (m *GemMapper) ToEntity(g *model.Gem) *entity.Gem {
	if g == nil {
		return nil
	}
	return &entity.Gem{
		Id:                 g.Id,
		Name:               g.Name,
		Image:              g.Image,
		MagicalDescription: g.MagicalDescription,
		Category:           g.Category,
		Color:              g.Color,
		ChemicalFormula:    g.ChemicalFormula,
	}
}

// ToModel also fills the folded lookup columns.
func (m *GemMapper) ToModel(g *entity.Gem) *model.Gem {
	if g == nil {
		return nil
	}
	return &model.Gem{
		Id:                 g.Id,
		Name:               g.Name,
		Image:              g.Image,
		MagicalDescription: g.MagicalDescription,
		Category:           g.Category,
		Color:              g.Color,
		ChemicalFormula:    g.ChemicalFormula,
		CategoryKey:        catalog.Normalize(g.Category),
		ColorKey:           catalog.Normalize(g.Color),
		FormulaKey:         catalog.Normalize(g.ChemicalFormula),
		SearchText:         catalog.SearchText(g.Name, g.MagicalDescription, g.Category),
	}
}

func (m *GemMapper) ToResponse(g *entity.Gem) *dto.GemResponse {
	return &dto.GemResponse{
		Id:                 g.Id,
		Name:               g.Name,
		Image:              g.Image,
		MagicalDescription: g.MagicalDescription,
		Category:           g.Category,
		Color:              g.Color,
		ChemicalFormula:    g.ChemicalFormula,
	}
}

func (m *GemMapper) ToResponses(gems []*entity.Gem) []*dto.GemResponse {
	res := make([]*dto.GemResponse, len(gems))
	for i, g := range gems {
		res[i] = m.ToResponse(g)
	}
	return res
}

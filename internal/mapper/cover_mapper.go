package mapper

import (
	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/model"
)

type CoverMapper struct{}

func NewCoverMapper() *CoverMapper {
	return &CoverMapper{}
}

func (m *CoverMapper) ToEntity(c *model.Cover) *entity.Cover {
	if c == nil {
		return nil
	}
	return &entity.Cover{
		Id:           c.Id,
		Title:        c.Title,
		DecorationId: c.DecorationId,
	}
}

func (m *CoverMapper) ToModel(c *entity.Cover) *model.Cover {
	if c == nil {
		return nil
	}
	return &model.Cover{
		Id:           c.Id,
		Title:        c.Title,
		DecorationId: c.DecorationId,
	}
}

func (m *CoverMapper) ToResponse(c *entity.Cover) *dto.CoverResponse {
	return &dto.CoverResponse{
		Id:           c.Id,
		Title:        c.Title,
		DecorationId: c.DecorationId,
	}
}

func (m *CoverMapper) DefaultToResponse(c *entity.DefaultCover) *dto.DefaultCoverResponse {
	return &dto.DefaultCoverResponse{
		Title:             c.Title,
		AnimationDocument: c.AnimationDocument,
	}
}

package mapper

import (
	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/model"
)

type DecorationMapper struct{}

func NewDecorationMapper() *DecorationMapper {
	return &DecorationMapper{}
}

func (m *DecorationMapper) ToEntity(d *model.Decoration) *entity.Decoration {
	if d == nil {
		return nil
	}
	return &entity.Decoration{
		Id:    d.Id,
		Type:  entity.DecorationType(d.Type),
		Value: d.Value,
	}
}

func (m *DecorationMapper) ToModel(d *entity.Decoration) *model.Decoration {
	if d == nil {
		return nil
	}
	return &model.Decoration{
		Id:    d.Id,
		Type:  int16(d.Type),
		Value: d.Value,
	}
}

func (m *DecorationMapper) ToResponse(d *entity.Decoration) (*dto.DecorationResponse, error) {
	t, err := DecorationTypeToExternal(d.Type)
	if err != nil {
		return nil, err
	}
	return &dto.DecorationResponse{
		Id:    d.Id,
		Type:  t,
		Value: d.Value,
	}, nil
}

package mapper

import (
	"encoding/json"

	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/model"

	"gorm.io/datatypes"
)

type EntityEventMapper struct{}

func NewEntityEventMapper() *EntityEventMapper {
	return &EntityEventMapper{}
}

func (m *EntityEventMapper) ToEntity(e *model.EntityEvent) *entity.EntityEvent {
	if e == nil {
		return nil
	}
	payload := map[string]interface{}{}
	if len(e.Payload) > 0 {
		_ = json.Unmarshal(e.Payload, &payload)
	}
	return &entity.EntityEvent{
		Id:         e.Id,
		Type:       e.Type,
		Entity:     e.Entity,
		EntityId:   e.EntityId,
		Payload:    payload,
		OccurredAt: e.OccurredAt,
	}
}

func (m *EntityEventMapper) ToModel(e *entity.EntityEvent) *model.EntityEvent {
	if e == nil {
		return nil
	}
	raw, err := json.Marshal(e.Payload)
	if err != nil || e.Payload == nil {
		raw = []byte("{}")
	}
	return &model.EntityEvent{
		Id:         e.Id,
		Type:       e.Type,
		Entity:     e.Entity,
		EntityId:   e.EntityId,
		Payload:    datatypes.JSON(raw),
		OccurredAt: e.OccurredAt,
	}
}

package implementation

import (
	"context"

	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/mapper"
	"wiccapedia-api/internal/model"
	"wiccapedia-api/internal/repository/contract"
	"wiccapedia-api/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntityEventRepositoryImpl struct {
	base *GormRepository[entity.EntityEvent, model.EntityEvent, uuid.UUID]
}

func NewEntityEventRepository(db *gorm.DB) contract.EntityEventRepository {
	return &EntityEventRepositoryImpl{
		base: NewGormRepository[entity.EntityEvent, model.EntityEvent, uuid.UUID](db, "entity event", mapper.NewEntityEventMapper()),
	}
}

func (r *EntityEventRepositoryImpl) Create(ctx context.Context, event *entity.EntityEvent) error {
	return r.base.Create(ctx, event)
}

func (r *EntityEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EntityEvent, error) {
	return r.base.FindAll(ctx, append(specs, specification.OrderBy{Field: "occurred_at"})...)
}

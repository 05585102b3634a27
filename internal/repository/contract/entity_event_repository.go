package contract

import (
	"context"

	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/repository/specification"
)

type EntityEventRepository interface {
	Create(ctx context.Context, event *entity.EntityEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EntityEvent, error)
}

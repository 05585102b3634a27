package contract

import (
	"context"

	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/repository/specification"
	"wiccapedia-api/pkg/catalog"

	"github.com/google/uuid"
)

type GemRepository interface {
	Repository[entity.Gem, uuid.UUID]
	Update(ctx context.Context, gem *entity.Gem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Gem, error)
	// Distinct lists the non-empty values of one display column, sorted.
	Distinct(ctx context.Context, field catalog.Field) ([]string, error)
}

package implementation

import (
	"context"
	"fmt"

	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/mapper"
	"wiccapedia-api/internal/model"
	"wiccapedia-api/internal/pkg/apperror"
	"wiccapedia-api/internal/repository/contract"
	"wiccapedia-api/pkg/catalog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GemRepositoryImpl struct {
	*GormRepository[entity.Gem, model.Gem, uuid.UUID]
	db *gorm.DB
}

func NewGemRepository(db *gorm.DB) contract.GemRepository {
	return &GemRepositoryImpl{
		GormRepository: NewGormRepository[entity.Gem, model.Gem, uuid.UUID](db, "gem", mapper.NewGemMapper()),
		db:             db,
	}
}

func (r *GemRepositoryImpl) Update(ctx context.Context, gem *entity.Gem) error {
	return r.GormRepository.Update(ctx, gem.Id, gem)
}

func (r *GemRepositoryImpl) Distinct(ctx context.Context, field catalog.Field) ([]string, error) {
	column := string(field)
	if _, ok := catalog.ParseField(column); !ok {
		return nil, fmt.Errorf("unknown gem field %q", field)
	}

	values := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Gem{}).
		Where(column+" <> ''").
		Distinct().
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, apperror.FromStorage(err)
	}
	return values, nil
}

package implementation

import (
	"context"
	"errors"

	"wiccapedia-api/internal/pkg/apperror"
	"wiccapedia-api/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntityMapper converts between a domain entity E and its gorm row M.
type EntityMapper[E any, M any] interface {
	ToEntity(m *M) *E
	ToModel(e *E) *M
}

// GormRepository implements contract.Repository for any entity whose row is
// keyed by an "id" column.
type GormRepository[E any, M any, K comparable] struct {
	db     *gorm.DB
	name   string
	mapper EntityMapper[E, M]
}

func NewGormRepository[E any, M any, K comparable](db *gorm.DB, name string, mapper EntityMapper[E, M]) *GormRepository[E, M, K] {
	return &GormRepository[E, M, K]{
		db:     db,
		name:   name,
		mapper: mapper,
	}
}

func (r *GormRepository[E, M, K]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GormRepository[E, M, K]) Create(ctx context.Context, e *E) error {
	m := r.mapper.ToModel(e)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return apperror.FromStorage(err)
	}
	*e = *r.mapper.ToEntity(m)
	return nil
}

func (r *GormRepository[E, M, K]) FindByID(ctx context.Context, id K) (*E, error) {
	var m M
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("%s %v not found", r.name, id)
		}
		return nil, apperror.FromStorage(err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GormRepository[E, M, K]) FindOne(ctx context.Context, specs ...specification.Specification) (*E, error) {
	var m M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.FromStorage(err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GormRepository[E, M, K]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	var models []*M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperror.FromStorage(err)
	}
	entities := make([]*E, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *GormRepository[E, M, K]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(new(M)), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperror.FromStorage(err)
	}
	return count, nil
}

// Update saves every column of e. The row must already exist.
func (r *GormRepository[E, M, K]) Update(ctx context.Context, id K, e *E) error {
	m := r.mapper.ToModel(e)
	result := r.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Select("*").Omit(clause.Associations, "id", "created_at").Updates(m)
	if result.Error != nil {
		return apperror.FromStorage(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("%s %v not found", r.name, id)
	}
	return nil
}

func (r *GormRepository[E, M, K]) Delete(ctx context.Context, id K) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return apperror.FromStorage(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("%s %v not found", r.name, id)
	}
	return nil
}

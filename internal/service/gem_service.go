package service

import (
	"context"
	"strings"
	"time"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/mapper"
	"wiccapedia-api/internal/pkg/apperror"
	"wiccapedia-api/internal/pkg/cache"
	"wiccapedia-api/internal/pkg/logger"
	"wiccapedia-api/internal/repository/specification"
	"wiccapedia-api/internal/repository/unitofwork"
	"wiccapedia-api/pkg/catalog"

	"github.com/google/uuid"
)

const metadataCachePrefix = "gems:metadata:"

// MetadataFields maps the metadata route segment to the gem column it lists.
var MetadataFields = map[string]catalog.Field{
	"colors":     catalog.FieldColor,
	"categories": catalog.FieldCategory,
	"formulas":   catalog.FieldChemicalFormula,
}

type IGemService interface {
	List(ctx context.Context, req *dto.ListGemsRequest) (*dto.GemPageResponse, error)
	Search(ctx context.Context, query string) ([]*dto.GemResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.GemResponse, error)
	Create(ctx context.Context, req *dto.CreateGemRequest) (*dto.GemResponse, error)
	Update(ctx context.Context, req *dto.UpdateGemRequest) (*dto.GemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Metadata(ctx context.Context, field catalog.Field) ([]string, error)
}

type gemService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	cache            cache.Cache
	cacheTTL         time.Duration
	logger           logger.ILogger
	mapper           *mapper.GemMapper
}

func NewGemService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	cache cache.Cache,
	cacheTTL time.Duration,
	logger logger.ILogger,
) IGemService {
	return &gemService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		cache:            cache,
		cacheTTL:         cacheTTL,
		logger:           logger,
		mapper:           mapper.NewGemMapper(),
	}
}

func (s *gemService) List(ctx context.Context, req *dto.ListGemsRequest) (*dto.GemPageResponse, error) {
	filters := catalog.Filters{
		Search:          req.Search,
		Name:            req.Name,
		Color:           req.Color,
		Category:        req.Category,
		ChemicalFormula: req.ChemicalFormula,
	}
	filters.ApplyOData(req.Filter)

	offset, size := catalog.Window(req.Cursor, req.Limit)
	filterSpecs := specification.GemFilters(filters)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.GemRepository().Count(ctx, filterSpecs...)
	if err != nil {
		return nil, err
	}

	specs := append([]specification.Specification{}, filterSpecs...)
	specs = append(specs, specification.GemSort(catalog.ParseOrderBy(req.OrderBy))...)
	specs = append(specs, specification.Pagination{Limit: size, Offset: offset})

	gems, err := uow.GemRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	page := catalog.Paginate(offset, len(gems), total, catalog.ClampLimit(req.Limit))
	return &dto.GemPageResponse{
		Data:       s.mapper.ToResponses(gems),
		Pagination: toPaginationInfo(page),
	}, nil
}

func toPaginationInfo(p catalog.Page) dto.PaginationInfo {
	info := dto.PaginationInfo{
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
		TotalCount:  p.TotalCount,
		PageSize:    p.PageSize,
	}
	if p.NextCursor != "" {
		next := p.NextCursor
		info.NextCursor = &next
	}
	if p.PreviousCursor != "" {
		prev := p.PreviousCursor
		info.PreviousCursor = &prev
	}
	return info
}

func (s *gemService) Search(ctx context.Context, query string) ([]*dto.GemResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.Validation("query parameter q is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	gems, err := uow.GemRepository().FindAll(ctx,
		specification.GemSearch{Term: query},
		specification.OrderBy{Field: string(catalog.FieldName)},
	)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponses(gems), nil
}

func (s *gemService) GetById(ctx context.Context, id uuid.UUID) (*dto.GemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	gem, err := uow.GemRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(gem), nil
}

func (s *gemService) Create(ctx context.Context, req *dto.CreateGemRequest) (*dto.GemResponse, error) {
	name, err := gemName(req.Name)
	if err != nil {
		return nil, err
	}
	gem := &entity.Gem{
		Id:                 uuid.New(),
		Name:               name,
		Image:              catalog.ImagePath(name),
		MagicalDescription: req.MagicalDescription,
		Category:           req.Category,
		Color:              req.Color,
		ChemicalFormula:    req.ChemicalFormula,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.GemRepository().Create(ctx, gem); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.invalidateMetadata(ctx)
	s.publisherService.EntityCreated(ctx, "gem", gem.Id.String())
	return s.mapper.ToResponse(gem), nil
}

func gemName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", apperror.Validation("name must not be blank")
	}
	return name, nil
}

func (s *gemService) Update(ctx context.Context, req *dto.UpdateGemRequest) (*dto.GemResponse, error) {
	name, err := gemName(req.Name)
	if err != nil {
		return nil, err
	}
	gem := &entity.Gem{
		Id:                 req.Id,
		Name:               name,
		Image:              req.Image,
		MagicalDescription: req.MagicalDescription,
		Category:           req.Category,
		Color:              req.Color,
		ChemicalFormula:    req.ChemicalFormula,
	}
	if gem.Image == "" {
		gem.Image = catalog.ImagePath(gem.Name)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.GemRepository().Update(ctx, gem); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.invalidateMetadata(ctx)
	return s.mapper.ToResponse(gem), nil
}

func (s *gemService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.GemRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.invalidateMetadata(ctx)
	return nil
}

func (s *gemService) Metadata(ctx context.Context, field catalog.Field) ([]string, error) {
	key := metadataCachePrefix + string(field)

	var values []string
	found, err := s.cache.Get(ctx, key, &values)
	if err != nil {
		s.logger.Warn("GEM_SERVICE", "Metadata cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
	if found {
		return values, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	values, err = uow.GemRepository().Distinct(ctx, field)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, values, s.cacheTTL); err != nil {
		s.logger.Warn("GEM_SERVICE", "Metadata cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
	return values, nil
}

func (s *gemService) invalidateMetadata(ctx context.Context) {
	keys := make([]string, 0, len(MetadataFields))
	for _, field := range MetadataFields {
		keys = append(keys, metadataCachePrefix+string(field))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("GEM_SERVICE", "Metadata cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}

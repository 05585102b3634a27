package service

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/mapper"
	"wiccapedia-api/internal/pkg/apperror"
	"wiccapedia-api/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultCoverTitle = "Default Cover"

const defaultCoverCacheKey = "default_cover"

type ICoverService interface {
	Create(ctx context.Context, req *dto.CreateCoverRequest) (*dto.CoverResponse, error)
	GetById(ctx context.Context, id int64) (*dto.CoverResponse, error)
	GetDefault(ctx context.Context) (*dto.DefaultCoverResponse, error)
}

type coverService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	mapper           *mapper.CoverMapper

	defaultCoverPath string
	documentCache    *gocache.Cache
}

// NewCoverService reads the default cover from defaultCoverPath. A positive
// cacheTTL keeps the document in memory for that long; zero reads the file
// on every call.
func NewCoverService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	defaultCoverPath string,
	cacheTTL time.Duration,
) ICoverService {
	s := &coverService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		mapper:           mapper.NewCoverMapper(),
		defaultCoverPath: defaultCoverPath,
	}
	if cacheTTL > 0 {
		s.documentCache = gocache.New(cacheTTL, 2*cacheTTL)
	}
	return s
}

func (s *coverService) Create(ctx context.Context, req *dto.CreateCoverRequest) (*dto.CoverResponse, error) {
	cover := &entity.Cover{
		Title:        req.Title,
		DecorationId: req.DecorationId,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CoverRepository().Create(ctx, cover); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.EntityCreated(ctx, "cover", int64ID(cover.Id))
	return s.mapper.ToResponse(cover), nil
}

func (s *coverService) GetById(ctx context.Context, id int64) (*dto.CoverResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cover, err := uow.CoverRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(cover), nil
}

// GetDefault does not touch the database.
func (s *coverService) GetDefault(ctx context.Context) (*dto.DefaultCoverResponse, error) {
	if s.documentCache != nil {
		if doc, found := s.documentCache.Get(defaultCoverCacheKey); found {
			return s.mapper.DefaultToResponse(doc.(*entity.DefaultCover)), nil
		}
	}

	raw, err := os.ReadFile(s.defaultCoverPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperror.AssetMissing("default cover document not found")
		}
		return nil, apperror.Storage(err)
	}

	doc := &entity.DefaultCover{
		Title:             DefaultCoverTitle,
		AnimationDocument: string(raw),
	}
	if s.documentCache != nil {
		s.documentCache.SetDefault(defaultCoverCacheKey, doc)
	}
	return s.mapper.DefaultToResponse(doc), nil
}

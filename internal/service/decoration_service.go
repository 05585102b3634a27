package service

import (
	"context"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/mapper"
	"wiccapedia-api/internal/pkg/apperror"
	"wiccapedia-api/internal/repository/unitofwork"
)

type IDecorationService interface {
	Create(ctx context.Context, req *dto.CreateDecorationRequest) (*dto.DecorationResponse, error)
	GetById(ctx context.Context, id int64) (*dto.DecorationResponse, error)
}

type decorationService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	mapper           *mapper.DecorationMapper
}

func NewDecorationService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IDecorationService {
	return &decorationService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		mapper:           mapper.NewDecorationMapper(),
	}
}

func (s *decorationService) Create(ctx context.Context, req *dto.CreateDecorationRequest) (*dto.DecorationResponse, error) {
	decorationType, err := mapper.DecorationTypeToInternal(req.Type)
	if err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	decoration := &entity.Decoration{
		Type:  decorationType,
		Value: req.Value,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.DecorationRepository().Create(ctx, decoration); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.EntityCreated(ctx, "decoration", int64ID(decoration.Id))
	return s.toResponse(decoration)
}

func (s *decorationService) GetById(ctx context.Context, id int64) (*dto.DecorationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	decoration, err := uow.DecorationRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(decoration)
}

// A stored type without a wire name is corrupt data, not a client error.
func (s *decorationService) toResponse(d *entity.Decoration) (*dto.DecorationResponse, error) {
	res, err := s.mapper.ToResponse(d)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return res, nil
}

package service

import (
	"context"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/mapper"
	"wiccapedia-api/internal/repository/unitofwork"
)

type INotebookService interface {
	Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	GetById(ctx context.Context, id int64) (*dto.NotebookResponse, error)
}

type notebookService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	mapper           *mapper.NotebookMapper
}

func NewNotebookService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) INotebookService {
	return &notebookService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		mapper:           mapper.NewNotebookMapper(),
	}
}

// Create relies on the store for referential checks: an unknown user or
// cover, or a cover already bound to another notebook, is a constraint
// violation.
func (s *notebookService) Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	notebook := &entity.Notebook{
		UserId:  req.UserId,
		CoverId: req.CoverId,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NotebookRepository().Create(ctx, notebook); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.EntityCreated(ctx, "notebook", int64ID(notebook.Id))
	return s.mapper.ToResponse(notebook), nil
}

func (s *notebookService) GetById(ctx context.Context, id int64) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notebook, err := uow.NotebookRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(notebook), nil
}

package service

import (
	"context"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/mapper"
	"wiccapedia-api/internal/repository/unitofwork"
)

type IUserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetById(ctx context.Context, id int64) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	mapper           *mapper.UserMapper
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IUserService {
	return &userService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		mapper:           mapper.NewUserMapper(),
	}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := &entity.User{Username: req.Username}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.EntityCreated(ctx, "user", int64ID(user.Id))
	return s.mapper.ToResponse(user), nil
}

func (s *userService) GetById(ctx context.Context, id int64) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(user), nil
}

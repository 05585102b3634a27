package mapper

import (
	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:       u.Id,
		Username: u.Username,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:       u.Id,
		Username: u.Username,
	}
}

func (m *UserMapper) ToResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:       u.Id,
		Username: u.Username,
	}
}

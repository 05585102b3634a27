package mapper

import (
	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/model"
)

type NotebookMapper struct{}

func NewNotebookMapper() *NotebookMapper {
	return &NotebookMapper{}
}

func (m *NotebookMapper) ToEntity(n *model.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}
	return &entity.Notebook{
		Id:      n.Id,
		UserId:  n.UserId,
		CoverId: n.CoverId,
	}
}

func (m *NotebookMapper) ToModel(n *entity.Notebook) *model.Notebook {
	if n == nil {
		return nil
	}
	return &model.Notebook{
		Id:      n.Id,
		UserId:  n.UserId,
		CoverId: n.CoverId,
	}
}

func (m *NotebookMapper) ToResponse(n *entity.Notebook) *dto.NotebookResponse {
	return &dto.NotebookResponse{
		Id:      n.Id,
		UserId:  n.UserId,
		CoverId: n.CoverId,
	}
}

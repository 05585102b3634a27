package dto

type CreateNotebookRequest struct {
	UserId  int64 `json:"userId" validate:"required,gt=0"`
	CoverId int64 `json:"coverId" validate:"required,gt=0"`
}

type NotebookResponse struct {
	Id      int64 `json:"id"`
	UserId  int64 `json:"userId"`
	CoverId int64 `json:"coverId"`
}

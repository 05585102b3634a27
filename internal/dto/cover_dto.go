package dto

type CreateCoverRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	DecorationId int64  `json:"decorationId" validate:"required,gt=0"`
}

type CoverResponse struct {
	Id           int64  `json:"id"`
	Title        string `json:"title"`
	DecorationId int64  `json:"decorationId"`
}

type DefaultCoverResponse struct {
	Title             string `json:"title"`
	AnimationDocument string `json:"animationDocument"`
}

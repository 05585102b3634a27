package dto

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
}

type UserResponse struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
}

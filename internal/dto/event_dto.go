package dto

// EntityCreatedMessage is the payload published after a successful create.
type EntityCreatedMessage struct {
	Entity string `json:"entity"`
	Id     string `json:"id"`
}

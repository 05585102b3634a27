package entity

type Cover struct {
	Id           int64
	Title        string
	DecorationId int64
}

// DefaultCover is the static cover served from the local filesystem.
type DefaultCover struct {
	Title             string
	AnimationDocument string
}

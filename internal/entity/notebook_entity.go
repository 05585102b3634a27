package entity

type Notebook struct {
	Id      int64
	UserId  int64
	CoverId int64
}

package model

import "time"

// Notebook belongs to a User and owns exactly one Cover. The unique index on
// CoverId keeps the cover relation one-to-one.
type Notebook struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	UserId    int64     `gorm:"not null;index"`
	User      *User     `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CoverId   int64     `gorm:"not null;uniqueIndex"`
	Cover     *Cover    `gorm:"foreignKey:CoverId;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Notebook) TableName() string {
	return "notebooks"
}

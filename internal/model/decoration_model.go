package model

import "time"

type Decoration struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Type      int16     `gorm:"type:smallint;not null"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Decoration) TableName() string {
	return "decorations"
}

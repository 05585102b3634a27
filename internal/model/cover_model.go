package model

import "time"

type Cover struct {
	Id           int64       `gorm:"primaryKey;autoIncrement"`
	Title        string      `gorm:"type:varchar(255);not null"`
	DecorationId int64       `gorm:"not null;uniqueIndex"`
	Decoration   *Decoration `gorm:"foreignKey:DecorationId;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt    time.Time   `gorm:"autoCreateTime"`
}

func (Cover) TableName() string {
	return "covers"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EntityEvent struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Type       string         `gorm:"type:varchar(50);not null;index"`
	Entity     string         `gorm:"type:varchar(50);not null;index"`
	EntityId   string         `gorm:"type:varchar(64);not null"`
	Payload    datatypes.JSON `gorm:"not null"`
	OccurredAt time.Time      `gorm:"not null;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (EntityEvent) TableName() string {
	return "entity_events"
}

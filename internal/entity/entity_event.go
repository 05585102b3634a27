package entity

import (
	"time"

	"github.com/google/uuid"
)

type EntityEvent struct {
	Id         uuid.UUID
	Type       string
	Entity     string
	EntityId   string
	Payload    map[string]interface{}
	OccurredAt time.Time
}

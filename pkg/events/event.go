package events

import "time"

const TypeEntityCreated = "ENTITY_CREATED"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ENTITY_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// EntityCreated announces a newly persisted row.
func EntityCreated(entity, id string, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeEntityCreated,
		Data: map[string]interface{}{
			"entity":      entity,
			"id":          id,
			"occurred_at": at.UTC().Format(time.RFC3339Nano),
		},
		OccurredAt: at,
	}
}

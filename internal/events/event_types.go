package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/michaeljohnaustria/my-garden/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventResourceCreated EventType = "resource_created"
	EventResourceUpdated EventType = "resource_updated"
	EventResourceDeleted EventType = "resource_deleted"
)

// AllEventTypes lists every type a change feed listener subscribes to.
var AllEventTypes = []EventType{EventResourceCreated, EventResourceUpdated, EventResourceDeleted}

// Event records one successful write against a resource row.
type Event struct {
	ID         string          `json:"id"`
	Type       EventType       `json:"type"`
	Resource   domain.Resource `json:"resource"`
	ResourceID int64           `json:"resource_id"`
	Actor      string          `json:"actor,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
	Payload    any             `json:"payload,omitempty"`
}

// NewEvent stamps a fresh id and UTC timestamp.
func NewEvent(eventType EventType, resource domain.Resource, id int64, actor string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Resource:   resource,
		ResourceID: id,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}
}

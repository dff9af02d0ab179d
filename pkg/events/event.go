package events

import "time"

const (
	NoteCreated = "NOTE_CREATED"
	NoteUpdated = "NOTE_UPDATED"
	NoteDeleted = "NOTE_DELETED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "NOTE_CREATED").
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

// Envelope is the wire form of an Event on the bus and the websocket stream.
type Envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func NewEnvelope(e Event) Envelope {
	return Envelope{
		Type:       e.EventType(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	}
}

func (e Envelope) EventType() string {
	return e.Type
}

func (e Envelope) Payload() map[string]interface{} {
	return e.Data
}

func (e Envelope) Timestamp() time.Time {
	return e.OccurredAt
}

package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEnvelope(t *testing.T) {
	at := time.Date(2022, 5, 30, 18, 39, 34, 0, time.UTC)
	evt := BaseEvent{
		Type:       NoteDeleted,
		Data:       map[string]interface{}{"id": "3"},
		OccurredAt: at,
	}

	env := NewEnvelope(evt)

	var asEvent Event = env
	assert.Equal(t, NoteDeleted, asEvent.EventType())
	assert.Equal(t, "3", asEvent.Payload()["id"])
	assert.Equal(t, at, asEvent.Timestamp())
}

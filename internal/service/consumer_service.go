package service

import (
	"context"
	"encoding/json"

	"notes-be/internal/pkg/logger"
	"notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventBroadcaster pushes a serialized event to realtime clients.
type EventBroadcaster interface {
	Broadcast(data []byte)
}

// EventForwarder relays events to an external bus.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	logger      logger.ILogger
	broadcaster EventBroadcaster
	forwarder   EventForwarder
}

// NewConsumerService wires the note event consumer. broadcaster and
// forwarder are optional.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	log logger.ILogger,
	broadcaster EventBroadcaster,
	forwarder EventForwarder,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		logger:      log,
		broadcaster: broadcaster,
		forwarder:   forwarder,
	}
}

// Consume subscribes to the topic and processes messages in the background
// until ctx is cancelled or the subscriber is closed.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var env events.Envelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		cs.logger.Error("NoteEvents", "Failed to unmarshal event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// Ack invalid messages to prevent infinite redelivery
		msg.Ack()
		return
	}

	cs.logger.Info("NoteEvents", env.Type, map[string]interface{}{
		"message_id":  msg.UUID,
		"data":        env.Data,
		"occurred_at": env.OccurredAt,
	})

	if cs.broadcaster != nil {
		cs.broadcaster.Broadcast(msg.Payload)
	}

	if cs.forwarder != nil {
		if err := cs.forwarder.Publish(ctx, env); err != nil {
			cs.logger.Warn("NoteEvents", "Failed to forward event", map[string]interface{}{
				"type":  env.Type,
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}

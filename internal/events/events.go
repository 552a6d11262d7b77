// Package events defines the domain events published on the bus when
// forum content changes, and the logger that consumes them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mchadwick/parley/internal/pubsub"
)

// Bus topics for forum activity.
const (
	TopicRoomCreated    = "forum.room.created"
	TopicRoomUpdated    = "forum.room.updated"
	TopicRoomDeleted    = "forum.room.deleted"
	TopicMessagePosted  = "forum.message.posted"
	TopicMessageDeleted = "forum.message.deleted"
)

// Topics lists every activity topic, in the order subscribers attach.
var Topics = []string{
	TopicRoomCreated,
	TopicRoomUpdated,
	TopicRoomDeleted,
	TopicMessagePosted,
	TopicMessageDeleted,
}

// RoomEvent is the payload for room lifecycle topics.
type RoomEvent struct {
	RoomID   string `json:"room_id"`
	HostID   string `json:"host_id"`
	RoomName string `json:"room_name"`
	Topic    string `json:"topic"`
}

// MessageEvent is the payload for message lifecycle topics.
type MessageEvent struct {
	MessageID string `json:"message_id"`
	RoomID    string `json:"room_id"`
	UserID    string `json:"user_id"`
}

// Publish marshals the event and puts it on the bus. Publish failures are
// logged, not returned: activity events must never fail the request that
// produced them.
func Publish(ctx context.Context, pub pubsub.Publisher, topic, userID string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal event", "topic", topic, "error", err)
		return
	}
	msg := pubsub.Message{
		Topic:   topic,
		UserID:  userID,
		Payload: payload,
	}
	if err := pub.Publish(ctx, msg); err != nil {
		slog.Error("Failed to publish event", "topic", topic, "error", err)
	}
}

// StartLogger subscribes to every activity topic and writes each event to
// the structured log. It returns once all subscriptions are active.
func StartLogger(ctx context.Context, sub pubsub.Subscriber) error {
	for _, topic := range Topics {
		if err := sub.Subscribe(ctx, topic, logEvent); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}
	return nil
}

func logEvent(_ context.Context, msg pubsub.Message) error {
	slog.Info("Forum activity", "topic", msg.Topic, "user_id", msg.UserID, "event", string(msg.Payload))
	return nil
}

package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/strokemap/internal/event/topic"
)

// Gesture topics.
const (
	TopicGestureCompleted  topic.Topic = "gesture.completed"
	TopicGestureUnmatched  topic.Topic = "gesture.unmatched"
	TopicGestureDispatched topic.Topic = "gesture.dispatched"
	TopicGestureFailed     topic.Topic = "gesture.failed"
	TopicGestureCancelled  topic.Topic = "gesture.cancelled"
)

// Event is a published notification. Events are immutable once created.
type Event struct {
	// Topic is the hierarchical event type.
	Topic topic.Topic

	// Payload contains the event-specific data.
	Payload any

	// Metadata contains standard event information.
	Metadata Metadata
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the component that published the event.
	Source string
}

// NewEvent creates a new event with the given topic and payload.
func NewEvent(t topic.Topic, payload any, source string) Event {
	return Event{
		Topic:   t,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// PayloadAs returns the payload as T.
func PayloadAs[T any](evt Event) (T, bool) {
	p, ok := evt.Payload.(T)
	return p, ok
}

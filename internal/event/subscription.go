package event

import (
	"context"

	"github.com/google/uuid"

	"github.com/dshills/strokemap/internal/event/topic"
)

// Handler processes events.
type Handler interface {
	Handle(ctx context.Context, evt Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, evt Event) error

// Handle calls f(ctx, evt).
func (f HandlerFunc) Handle(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// FilterFunc decides whether an event is delivered to a subscription.
type FilterFunc func(evt Event) bool

// Subscription represents an active event subscription.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// Topic returns the subscribed topic pattern.
	Topic() topic.Topic

	// IsActive returns true until the subscription is cancelled.
	IsActive() bool

	// Cancel permanently cancels the subscription.
	Cancel()
}

// SubscriptionOption is a function that configures a subscription.
type SubscriptionOption func(*subscriptionConfig)

type subscriptionConfig struct {
	filter FilterFunc
	once   bool
}

// WithFilter sets a filter predicate.
func WithFilter(f FilterFunc) SubscriptionOption {
	return func(c *subscriptionConfig) {
		c.filter = f
	}
}

// WithOnce sets the subscription to auto-cancel after the first event.
func WithOnce() SubscriptionOption {
	return func(c *subscriptionConfig) {
		c.once = true
	}
}

type subscription struct {
	id        string
	pattern   topic.Topic
	handler   Handler
	config    subscriptionConfig
	cancelled bool
	bus       *Bus
}

func newSubscription(b *Bus, pattern topic.Topic, h Handler, cfg subscriptionConfig) *subscription {
	return &subscription{
		id:      uuid.NewString(),
		pattern: pattern,
		handler: h,
		config:  cfg,
		bus:     b,
	}
}

func (s *subscription) ID() string         { return s.id }
func (s *subscription) Topic() topic.Topic { return s.pattern }
func (s *subscription) IsActive() bool     { return !s.cancelled }

func (s *subscription) Cancel() {
	if s.cancelled {
		return
	}
	s.cancelled = true
	s.bus.remove(s.id)
}

// shouldDeliver checks the topic pattern and filter.
func (s *subscription) shouldDeliver(evt Event) bool {
	if s.cancelled || !evt.Topic.Matches(s.pattern) {
		return false
	}
	return s.config.filter == nil || s.config.filter(evt)
}

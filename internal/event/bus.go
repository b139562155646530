package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/strokemap/internal/event/topic"
)

// Bus delivers events to subscribers synchronously, in registration order.
type Bus struct {
	subs []*subscription

	panicHandler func(evt Event, recovered any)
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithPanicHandler sets a callback invoked when a handler panics.
func WithPanicHandler(fn func(evt Event, recovered any)) BusOption {
	return func(b *Bus) {
		b.panicHandler = fn
	}
}

// NewBus creates a new event bus with the given options.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers h for events whose topic matches pattern.
func (b *Bus) Subscribe(pattern topic.Topic, h Handler, opts ...SubscriptionOption) (Subscription, error) {
	if !pattern.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTopic, pattern)
	}
	if h == nil {
		return nil, ErrNilHandler
	}

	var cfg subscriptionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sub := newSubscription(b, pattern, h, cfg)
	b.subs = append(b.subs, sub)
	return sub, nil
}

// SubscribeFunc registers a function handler.
func (b *Bus) SubscribeFunc(pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(pattern, fn, opts...)
}

// Unsubscribe cancels a subscription created by this bus.
func (b *Bus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	for _, s := range b.subs {
		if s.id == sub.ID() {
			s.Cancel()
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	return len(b.subs)
}

// Publish delivers evt to every matching subscriber. Handler errors are
// joined and returned after all subscribers have run.
func (b *Bus) Publish(ctx context.Context, evt Event) error {
	if !evt.Topic.IsValid() || evt.Topic.IsWildcard() {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, evt.Topic)
	}

	// Snapshot so handlers can subscribe or cancel while we iterate.
	subs := make([]*subscription, len(b.subs))
	copy(subs, b.subs)

	var errs []error
	for _, sub := range subs {
		if !sub.shouldDeliver(evt) {
			continue
		}
		if sub.config.once {
			sub.Cancel()
		}
		if err := b.deliver(ctx, sub, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// deliver runs one handler with panic recovery.
func (b *Bus) deliver(ctx context.Context, sub *subscription, evt Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if b.panicHandler != nil {
				b.panicHandler(evt, r)
			}
			err = fmt.Errorf("%w: %s: %v", ErrHandlerPanic, sub.pattern, r)
		}
	}()
	return sub.handler.Handle(ctx, evt)
}

func (b *Bus) remove(id string) {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

package provider

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/dshills/strokemap/internal/event"
	"github.com/dshills/strokemap/internal/event/topic"
	"github.com/dshills/strokemap/internal/host"
	"github.com/dshills/strokemap/internal/input/classify"
	"github.com/dshills/strokemap/internal/input/gesture"
	"github.com/dshills/strokemap/internal/input/gesturemap"
	"github.com/dshills/strokemap/internal/input/mouse"
)

// eventSource is the Metadata.Source of every event the provider publishes.
const eventSource = "provider"

// Result is the payload of every gesture event.
type Result struct {
	// Combo is the classified gesture. Empty for cancelled drags.
	Combo gesture.Combo

	// Points is the number of samples in the trajectory.
	Points int

	// Action is the label of the binding that handled the combo, if any.
	Action string

	// Err is set on gesture.failed.
	Err error
}

// Provider tracks drags on one viewer and dispatches recognized gestures.
type Provider struct {
	handle     *host.Handle
	trigger    mouse.Trigger
	classifier classify.Classifier
	registry   *gesturemap.Registry
	bus        *event.Bus
	logger     *log.Logger
	session    *Session

	drag dragTracker
}

// New creates a provider for the viewer behind handle.
func New(handle *host.Handle, opts ...Option) *Provider {
	p := &Provider{
		handle:     handle,
		trigger:    mouse.TriggerRightClick,
		classifier: classify.Default,
		registry:   gesturemap.NewRegistry(),
		bus:        event.NewBus(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.session != nil {
		p.session.Attach(p)
	}
	return p
}

// State returns the current drag state.
func (p *Provider) State() State {
	if p.drag.active {
		return StateDragging
	}
	return StateIdle
}

// Drag returns a snapshot of the in-flight drag.
func (p *Provider) Drag() DragState {
	return p.drag.state()
}

// Path returns a copy of the in-flight trajectory.
func (p *Provider) Path() classify.Trajectory {
	if len(p.drag.path) == 0 {
		return nil
	}
	path := make(classify.Trajectory, len(p.drag.path))
	copy(path, p.drag.path)
	return path
}

// Trigger returns the configured trigger.
func (p *Provider) Trigger() mouse.Trigger {
	return p.trigger
}

// SetTrigger changes the trigger. An in-flight drag is unaffected.
func (p *Provider) SetTrigger(t mouse.Trigger) {
	p.trigger = t
}

// SetClassifier replaces the classifier used for the next completed drag.
func (p *Provider) SetClassifier(c classify.Classifier) {
	if c != nil {
		p.classifier = c
	}
}

// Registry returns the provider's registry.
func (p *Provider) Registry() *gesturemap.Registry {
	return p.registry
}

// Bus returns the bus gesture events are published on.
func (p *Provider) Bus() *event.Bus {
	return p.bus
}

// Register binds spec to b in the provider's registry.
func (p *Provider) Register(spec gesture.Spec, b gesturemap.Binding, opts ...gesturemap.RegisterOption) error {
	return p.registry.Register(spec, b, opts...)
}

// Binder returns a registration function for spec.
func (p *Provider) Binder(spec gesture.Spec, opts ...gesturemap.RegisterOption) func(gesturemap.Callback) error {
	return p.registry.Binder(spec, opts...)
}

// Subscribe registers fn for gesture events matching pattern.
func (p *Provider) Subscribe(pattern topic.Topic, fn func(ctx context.Context, r Result) error) (event.Subscription, error) {
	return p.bus.SubscribeFunc(pattern, func(ctx context.Context, evt event.Event) error {
		r, _ := event.PayloadAs[Result](evt)
		return fn(ctx, r)
	})
}

// OnGesture registers fn for every completed gesture.
func (p *Provider) OnGesture(fn func(ctx context.Context, r Result) error) (event.Subscription, error) {
	return p.Subscribe(event.TopicGestureCompleted, fn)
}

// HandleEvent advances the drag state machine by one pointer event.
// It returns a non-nil error only when a drag completes and either the
// binding or a subscriber fails.
func (p *Provider) HandleEvent(ctx context.Context, e mouse.Event) error {
	if !p.drag.active {
		if p.trigger.Matches(e) {
			p.drag.start(e)
			p.logger.Debug("gesture started", "trigger", p.trigger, "x", e.Position.X, "y", e.Position.Y)
		}
		return nil
	}

	switch e.Action {
	case mouse.ActionMove, mouse.ActionDrag:
		p.drag.update(e.Position)
	case mouse.ActionRelease:
		if e.Button != mouse.ButtonNone && e.Button != p.drag.button {
			return nil
		}
		p.drag.update(e.Position)
		return p.finish(ctx, p.drag.end())
	}
	return nil
}

// Abort discards an in-flight drag without classifying it.
// It does nothing when idle.
func (p *Provider) Abort(ctx context.Context) error {
	if !p.drag.active {
		return nil
	}
	path := p.drag.end()
	p.logger.Debug("gesture cancelled", "points", len(path))
	return p.publish(ctx, event.TopicGestureCancelled, Result{Points: len(path)})
}

func (p *Provider) finish(ctx context.Context, path classify.Trajectory) error {
	combo := p.classifier.Classify(path)
	res := Result{Combo: combo, Points: len(path)}

	var errs []error
	if err := p.publish(ctx, event.TopicGestureCompleted, res); err != nil {
		errs = append(errs, err)
	}

	binding, ok := p.registry.Lookup(combo)
	if combo.IsEmpty() || !ok {
		p.logger.Debug("gesture unmatched", "combo", combo.Words(), "points", len(path))
		if err := p.publish(ctx, event.TopicGestureUnmatched, res); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	}

	res.Action = binding.Label()
	if err := p.dispatch(ctx, combo, binding); err != nil {
		p.logger.Error("gesture failed", "combo", combo.Words(), "action", res.Action, "err", err)
		res.Err = err
		errs = append(errs, err)
		if perr := p.publish(ctx, event.TopicGestureFailed, res); perr != nil {
			errs = append(errs, perr)
		}
		return errors.Join(errs...)
	}

	p.logger.Info("gesture", "combo", combo.Words(), "action", res.Action)
	if err := p.publish(ctx, event.TopicGestureDispatched, res); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (p *Provider) dispatch(ctx context.Context, combo gesture.Combo, b gesturemap.Binding) error {
	v, err := p.handle.Viewer()
	if err != nil {
		return &DispatchError{Combo: combo, Action: b.Label(), Err: err}
	}
	if err := b.Callback(gesturemap.WithCombo(ctx, combo), v); err != nil {
		return &DispatchError{Combo: combo, Action: b.Label(), Err: err}
	}
	return nil
}

func (p *Provider) publish(ctx context.Context, t topic.Topic, r Result) error {
	err := p.bus.Publish(ctx, event.NewEvent(t, r, eventSource))
	if err != nil {
		p.logger.Warn("gesture subscriber failed", "topic", t, "err", err)
	}
	return err
}

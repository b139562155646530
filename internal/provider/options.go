package provider

import (
	"github.com/charmbracelet/log"

	"github.com/dshills/strokemap/internal/event"
	"github.com/dshills/strokemap/internal/input/classify"
	"github.com/dshills/strokemap/internal/input/gesturemap"
	"github.com/dshills/strokemap/internal/input/mouse"
)

// Option configures a Provider.
type Option func(*Provider)

// WithTrigger sets the press that starts gesture tracking.
// The default is mouse.TriggerRightClick.
func WithTrigger(t mouse.Trigger) Option {
	return func(p *Provider) {
		p.trigger = t
	}
}

// WithClassifier replaces the default classifier.
func WithClassifier(c classify.Classifier) Option {
	return func(p *Provider) {
		if c != nil {
			p.classifier = c
		}
	}
}

// WithRegistry shares an existing registry instead of creating one.
func WithRegistry(r *gesturemap.Registry) Option {
	return func(p *Provider) {
		if r != nil {
			p.registry = r
		}
	}
}

// WithBus publishes gesture events on an existing bus.
func WithBus(b *event.Bus) Option {
	return func(p *Provider) {
		if b != nil {
			p.bus = b
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithSession attaches the provider to s on construction.
func WithSession(s *Session) Option {
	return func(p *Provider) {
		p.session = s
	}
}

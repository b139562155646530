package provider

import (
	"github.com/dshills/strokemap/internal/input/gesture"
	"github.com/dshills/strokemap/internal/input/gesturemap"
)

// Session holds the most recently constructed provider.
type Session struct {
	current *Provider
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Attach makes p the current provider.
func (s *Session) Attach(p *Provider) {
	s.current = p
}

// Current returns the current provider or ErrNoActiveProvider.
func (s *Session) Current() (*Provider, error) {
	if s == nil || s.current == nil {
		return nil, ErrNoActiveProvider
	}
	return s.current, nil
}

// RegisterGesture registers b on the current provider.
func (s *Session) RegisterGesture(spec gesture.Spec, b gesturemap.Binding, opts ...gesturemap.RegisterOption) error {
	p, err := s.Current()
	if err != nil {
		return err
	}
	return p.Register(spec, b, opts...)
}

// Binder returns a registration function bound to the current provider.
// The provider is resolved when the function is called.
func (s *Session) Binder(spec gesture.Spec, opts ...gesturemap.RegisterOption) func(gesturemap.Callback) error {
	return func(cb gesturemap.Callback) error {
		p, err := s.Current()
		if err != nil {
			return err
		}
		return p.Binder(spec, opts...)(cb)
	}
}

package gesturemap

import (
	"context"

	"github.com/dshills/strokemap/internal/host"
	"github.com/dshills/strokemap/internal/input/gesture"
)

// Callback runs when its gesture completes. v is the live viewer.
type Callback func(ctx context.Context, v host.Viewer) error

// Binding represents a single gesture-to-callback mapping.
type Binding struct {
	// Combo is the gesture that triggers this binding.
	Combo gesture.Combo

	// Action is the action name, if the binding was made by name.
	Action string

	// Description provides documentation for the binding.
	Description string

	// Source indicates where this binding was defined.
	// Examples: "code", "config", "lua:gestures.lua"
	Source string

	// Callback is the function to run.
	Callback Callback
}

// NewBinding creates a binding for a callback.
func NewBinding(cb Callback) Binding {
	return Binding{Callback: cb}
}

// WithAction sets the action name for this binding.
func (b Binding) WithAction(action string) Binding {
	b.Action = action
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithSource sets the source for this binding.
func (b Binding) WithSource(source string) Binding {
	b.Source = source
	return b
}

// Label returns the action name, the description, or "callback".
func (b Binding) Label() string {
	switch {
	case b.Action != "":
		return b.Action
	case b.Description != "":
		return b.Description
	default:
		return "callback"
	}
}

type comboKey struct{}

// WithCombo returns a context carrying the combo being dispatched.
func WithCombo(ctx context.Context, c gesture.Combo) context.Context {
	return context.WithValue(ctx, comboKey{}, c)
}

// ComboFrom returns the combo stored by WithCombo.
func ComboFrom(ctx context.Context) (gesture.Combo, bool) {
	c, ok := ctx.Value(comboKey{}).(gesture.Combo)
	return c, ok
}

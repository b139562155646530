package mouse

import (
	"errors"
	"fmt"
)

// ErrUnknownTrigger is returned by ParseTrigger for an unrecognized name.
var ErrUnknownTrigger = errors.New("unknown gesture trigger")

// Trigger is the press that starts gesture tracking.
type Trigger struct {
	// Name identifies the trigger in configuration.
	Name string

	// Button must match the pressed button.
	Button Button

	// Modifiers must all be held. Extra modifiers are allowed.
	Modifiers Modifier
}

// Named triggers.
var (
	TriggerRightClick = Trigger{Name: "rightclick", Button: ButtonRight}
	TriggerCtrl       = Trigger{Name: "ctrl", Button: ButtonLeft, Modifiers: ModCtrl}
	TriggerShift      = Trigger{Name: "shift", Button: ButtonLeft, Modifiers: ModShift}
)

var triggersByName = map[string]Trigger{
	TriggerRightClick.Name: TriggerRightClick,
	TriggerCtrl.Name:       TriggerCtrl,
	TriggerShift.Name:      TriggerShift,
}

// ParseTrigger returns the named trigger.
func ParseTrigger(name string) (Trigger, error) {
	if t, ok := triggersByName[name]; ok {
		return t, nil
	}
	return Trigger{}, fmt.Errorf("%w: %q", ErrUnknownTrigger, name)
}

// Matches returns true if e is a press that starts a gesture.
func (t Trigger) Matches(e Event) bool {
	return e.Action == ActionPress &&
		e.Button == t.Button &&
		e.Modifiers.Contains(t.Modifiers)
}

// String returns the trigger name.
func (t Trigger) String() string {
	if t.Name != "" {
		return t.Name
	}
	if t.Modifiers == ModNone {
		return t.Button.String()
	}
	return t.Modifiers.String() + "+" + t.Button.String()
}

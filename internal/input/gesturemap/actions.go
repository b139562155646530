package gesturemap

import (
	"context"
	"fmt"
	"sort"

	"github.com/dshills/strokemap/internal/host"
	"github.com/dshills/strokemap/internal/input/gesture"
)

// Action is a named callback that bindings can refer to.
type Action struct {
	// Name is the action identifier, e.g. "viewer.clear".
	Name string

	// Description is shown in binding listings.
	Description string

	// Run performs the action.
	Run Callback
}

// ActionTable holds the actions available to configuration and scripts.
type ActionTable struct {
	actions map[string]Action
}

// NewActionTable creates an empty table.
func NewActionTable() *ActionTable {
	return &ActionTable{actions: make(map[string]Action)}
}

// Add defines an action. Names must be unique.
func (t *ActionTable) Add(a Action) error {
	if a.Run == nil {
		return fmt.Errorf("%w: action %q", ErrNilCallback, a.Name)
	}
	if _, exists := t.actions[a.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAction, a.Name)
	}
	t.actions[a.Name] = a
	return nil
}

// Lookup returns the named action.
func (t *ActionTable) Lookup(name string) (Action, error) {
	a, ok := t.actions[name]
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// Names returns the action names in sorted order.
func (t *ActionTable) Names() []string {
	names := make([]string, 0, len(t.actions))
	for name := range t.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Binding builds a binding that runs the named action.
func (t *ActionTable) Binding(name, source string) (Binding, error) {
	a, err := t.Lookup(name)
	if err != nil {
		return Binding{}, err
	}
	return Binding{
		Action:      a.Name,
		Description: a.Description,
		Source:      source,
		Callback:    a.Run,
	}, nil
}

// DefaultActions returns the built-in viewer actions.
func DefaultActions() *ActionTable {
	t := NewActionTable()
	for _, a := range []Action{
		{
			Name:        "viewer.echo",
			Description: "Show the recognized gesture",
			Run:         echo,
		},
		{
			Name:        "viewer.clear",
			Description: "Clear the viewer",
			Run: func(_ context.Context, v host.Viewer) error {
				c, ok := v.(host.Clearer)
				if !ok {
					return fmt.Errorf("%w: %s cannot clear", ErrActionUnsupported, v.Name())
				}
				c.Clear()
				return nil
			},
		},
		{
			Name:        "viewer.quit",
			Description: "Close the viewer",
			Run: func(_ context.Context, v host.Viewer) error {
				q, ok := v.(host.Quitter)
				if !ok {
					return fmt.Errorf("%w: %s cannot quit", ErrActionUnsupported, v.Name())
				}
				q.Quit()
				return nil
			},
		},
	} {
		// Names above are unique.
		_ = t.Add(a)
	}
	return t
}

func echo(ctx context.Context, v host.Viewer) error {
	c, ok := ComboFrom(ctx)
	if !ok {
		c = gesture.Empty
	}
	v.Notify(fmt.Sprintf("gesture %s (%s)", c.String(), c.Words()))
	return nil
}

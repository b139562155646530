package provider

import (
	"errors"
	"fmt"

	"github.com/dshills/strokemap/internal/input/gesture"
)

// ErrNoActiveProvider is returned when a session has no provider attached.
var ErrNoActiveProvider = errors.New("no active gesture provider")

// DispatchError reports a binding that failed to run.
type DispatchError struct {
	Combo  gesture.Combo
	Action string
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("gesture %s (%s): %v", e.Combo.Words(), e.Action, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

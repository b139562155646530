package gesturemap

import "errors"

// Registry errors.
var (
	// ErrDuplicateGesture is returned when registering a bound combo
	// without overwrite.
	ErrDuplicateGesture = errors.New("gesture already registered")

	// ErrGestureNotFound is returned when a combo has no binding.
	ErrGestureNotFound = errors.New("gesture not registered")

	// ErrNilCallback is returned when a binding has no callback.
	ErrNilCallback = errors.New("binding has no callback")

	// ErrUnknownAction is returned for an action name that is not in the table.
	ErrUnknownAction = errors.New("unknown action")

	// ErrDuplicateAction is returned when adding an action name twice.
	ErrDuplicateAction = errors.New("action already defined")

	// ErrActionUnsupported is returned when the viewer lacks the capability
	// an action needs.
	ErrActionUnsupported = errors.New("action not supported by viewer")
)

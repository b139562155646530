package lua

import "errors"

// Errors for Lua script execution.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs past its deadline.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrInvalidSpec is returned when a Lua value cannot name a gesture.
	ErrInvalidSpec = errors.New("invalid gesture value")
)

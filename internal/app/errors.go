package app

import "errors"

// Application errors.
var (
	// ErrClosed is returned when using a closed application.
	ErrClosed = errors.New("application closed")

	// ErrNoConfigFile is returned when watching without a config path.
	ErrNoConfigFile = errors.New("no config file to watch")
)

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

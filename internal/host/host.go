// Package host defines what the gesture provider needs from the viewer it
// is attached to.
//
// The provider does not own its viewer. It holds a Handle, and the host
// calls Detach when the viewer goes away. Any later use of the handle
// fails with ErrHostUnavailable instead of touching a dead viewer.
package host

import (
	"errors"
	"sync"
)

// ErrHostUnavailable is returned when the viewer behind a Handle is gone.
var ErrHostUnavailable = errors.New("host viewer no longer available")

// Viewer is the host surface that gesture callbacks act on.
type Viewer interface {
	// Name identifies the viewer in logs and messages.
	Name() string

	// Notify shows a short message to the user.
	Notify(msg string)
}

// Clearer is implemented by viewers that can reset their display.
type Clearer interface {
	Clear()
}

// Quitter is implemented by viewers that can be closed from a gesture.
type Quitter interface {
	Quit()
}

// Handle is a non-owning reference to a Viewer.
type Handle struct {
	mu     sync.RWMutex
	viewer Viewer
}

// NewHandle wraps v. A nil viewer yields a handle that is already detached.
func NewHandle(v Viewer) *Handle {
	return &Handle{viewer: v}
}

// Viewer returns the live viewer or ErrHostUnavailable.
func (h *Handle) Viewer() (Viewer, error) {
	if h == nil {
		return nil, ErrHostUnavailable
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.viewer == nil {
		return nil, ErrHostUnavailable
	}
	return h.viewer, nil
}

// Alive returns true until Detach is called.
func (h *Handle) Alive() bool {
	_, err := h.Viewer()
	return err == nil
}

// Detach drops the reference. It is safe to call more than once.
func (h *Handle) Detach() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.viewer = nil
}

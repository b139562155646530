package mouse

import (
	"math"
	"time"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "none"
	}
}

// ParseButton parses a button name as produced by String.
func ParseButton(s string) (Button, bool) {
	for b := ButtonLeft; b <= ButtonForward; b++ {
		if b.String() == s {
			return b, true
		}
	}
	return ButtonNone, false
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release. It ends a drag stream.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// IsMotion returns true for move and drag actions.
func (a Action) IsMotion() bool {
	return a == ActionMove || a == ActionDrag
}

// Position is a pointer location in viewer coordinates.
// Y grows downward.
type Position struct {
	X float64
	Y float64
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Distance returns the Euclidean distance between two positions.
func (p Position) Distance(other Position) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Event represents a mouse input event.
type Event struct {
	// Position is the pointer location.
	Position Position

	// Button is the mouse button involved.
	Button Button

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers Modifier

	// Action is the type of mouse action.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Press builds a press event at (x, y).
func Press(b Button, x, y float64) Event {
	return Event{Position: Position{X: x, Y: y}, Button: b, Action: ActionPress}
}

// Drag builds a drag event at (x, y).
func Drag(b Button, x, y float64) Event {
	return Event{Position: Position{X: x, Y: y}, Button: b, Action: ActionDrag}
}

// Release builds a release event at (x, y).
func Release(b Button, x, y float64) Event {
	return Event{Position: Position{X: x, Y: y}, Button: b, Action: ActionRelease}
}

// WithModifiers returns a copy of e with the given modifiers.
func (e Event) WithModifiers(m Modifier) Event {
	e.Modifiers = m
	return e
}

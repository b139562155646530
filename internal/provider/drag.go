package provider

import (
	"github.com/dshills/strokemap/internal/input/classify"
	"github.com/dshills/strokemap/internal/input/mouse"
)

// State is the provider's drag state.
type State uint8

const (
	// StateIdle waits for a trigger press.
	StateIdle State = iota
	// StateDragging accumulates a trajectory.
	StateDragging
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// dragTracker holds the in-flight trajectory between events.
type dragTracker struct {
	active bool

	// button is the button that started the drag.
	button mouse.Button

	startPos   mouse.Position
	currentPos mouse.Position

	path classify.Trajectory
}

func (t *dragTracker) start(e mouse.Event) {
	t.active = true
	t.button = e.Button
	t.startPos = e.Position
	t.currentPos = e.Position
	t.path = classify.Trajectory{toPoint(e.Position)}
}

// update appends pos unless it repeats the last sample.
func (t *dragTracker) update(pos mouse.Position) {
	if !t.active || pos.Equal(t.currentPos) {
		return
	}
	t.currentPos = pos
	t.path.Add(toPoint(pos))
}

// end stops tracking and hands back the trajectory.
func (t *dragTracker) end() classify.Trajectory {
	path := t.path
	*t = dragTracker{}
	return path
}

// DragState is a snapshot of the in-flight drag.
type DragState struct {
	Active     bool
	Button     mouse.Button
	StartPos   mouse.Position
	CurrentPos mouse.Position
	Points     int
}

func (t *dragTracker) state() DragState {
	return DragState{
		Active:     t.active,
		Button:     t.button,
		StartPos:   t.startPos,
		CurrentPos: t.currentPos,
		Points:     len(t.path),
	}
}

func toPoint(p mouse.Position) classify.Point {
	return classify.Point{X: p.X, Y: p.Y}
}

// Package mouse defines the pointer events a host delivers to the gesture
// provider.
//
// # Core Types
//
// Event represents a raw pointer event with position, button, modifiers
// and action type:
//
//	event := mouse.Event{
//	    Position:  mouse.Position{X: 100, Y: 50},
//	    Button:    mouse.ButtonRight,
//	    Modifiers: mouse.ModNone,
//	    Action:    mouse.ActionPress,
//	    Timestamp: time.Now(),
//	}
//
// # Triggers
//
// A Trigger decides which press starts gesture tracking. The named
// triggers are:
//
//   - rightclick: right button, no modifiers required
//   - ctrl: left button with Ctrl held
//   - shift: left button with Shift held
//
// # Drag Streams
//
// A drag stream is a press, zero or more drag (or move) events, and a
// release. The release ends the stream. Hosts that lose the stream some
// other way must tell the provider explicitly.
package mouse

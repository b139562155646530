package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/strokemap/internal/input/mouse"
)

// translator converts tcell mouse reports into press, drag, move and
// release events. tcell reports only the buttons currently held, so the
// transitions are recovered from the previous report.
type translator struct {
	held mouse.Button
}

// translate returns false for reports that carry no pointer action, such
// as wheel events.
func (t *translator) translate(ev *tcell.EventMouse) (mouse.Event, bool) {
	x, y := ev.Position()
	mask := ev.Buttons()
	btn := convertButton(mask)

	e := mouse.Event{
		Position:  mouse.Position{X: float64(x), Y: float64(y)},
		Modifiers: convertMod(ev.Modifiers()),
		Timestamp: ev.When(),
	}

	switch {
	case t.held == mouse.ButtonNone && btn != mouse.ButtonNone:
		t.held = btn
		e.Button = btn
		e.Action = mouse.ActionPress
	case t.held != mouse.ButtonNone && btn == mouse.ButtonNone:
		if mask&wheelMask != 0 {
			return mouse.Event{}, false
		}
		e.Button = t.held
		e.Action = mouse.ActionRelease
		t.held = mouse.ButtonNone
	case t.held != mouse.ButtonNone:
		e.Button = t.held
		e.Action = mouse.ActionDrag
	default:
		if mask&wheelMask != 0 {
			return mouse.Event{}, false
		}
		e.Action = mouse.ActionMove
	}
	return e, true
}

// reset forgets the held button, e.g. after focus is lost.
func (t *translator) reset() {
	t.held = mouse.ButtonNone
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// convertButton picks the first held button from a tcell mask.
func convertButton(b tcell.ButtonMask) mouse.Button {
	switch {
	case b&tcell.ButtonPrimary != 0:
		return mouse.ButtonLeft
	case b&tcell.ButtonSecondary != 0:
		return mouse.ButtonRight
	case b&tcell.ButtonMiddle != 0:
		return mouse.ButtonMiddle
	case b&tcell.Button4 != 0:
		return mouse.ButtonBack
	case b&tcell.Button5 != 0:
		return mouse.ButtonForward
	default:
		return mouse.ButtonNone
	}
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) mouse.Modifier {
	var result mouse.Modifier
	if m&tcell.ModShift != 0 {
		result |= mouse.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= mouse.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= mouse.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= mouse.ModMeta
	}
	return result
}

package mouse

import "strings"

// Modifier is the set of keyboard modifiers held during a pointer event.
type Modifier uint8

// Modifier flags. A trigger matches when its modifiers are a subset of
// those held.
const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << 0
	ModShift Modifier = 1 << 1
	ModAlt   Modifier = 1 << 2
	ModMeta  Modifier = 1 << 3
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// Contains reports whether every modifier in mod is held in m.
func (m Modifier) Contains(mod Modifier) bool {
	return m&mod == mod
}

// String joins the held modifiers, e.g. "Ctrl+Shift". ModNone is "".
func (m Modifier) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m.Contains(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

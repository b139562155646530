package gesture

import (
	"fmt"
	"strings"
)

// MaxLen is the longest combo whose code fits in a uint64.
const MaxLen = 16

// codeBase is the positional base of combo codes.
const codeBase = 16

// wordSeparator joins directions in word notation.
const wordSeparator = "-"

// Combo is an immutable sequence of directions with no two adjacent
// directions equal. The zero value is the empty combo.
type Combo struct {
	dirs []Direction
}

// Empty is the combo with no strokes.
var Empty = Combo{}

// New builds a combo from directions, enforcing the adjacency rule.
func New(dirs ...Direction) (Combo, error) {
	return build(joinDirections(dirs), dirs)
}

// MustNew is like New but panics on invalid input. Intended for tables
// of literal combos.
func MustNew(dirs ...Direction) Combo {
	c, err := New(dirs...)
	if err != nil {
		panic(err)
	}
	return c
}

// build validates dirs and returns a combo holding its own copy.
// input is used only for error messages.
func build(input string, dirs []Direction) (Combo, error) {
	if len(dirs) > MaxLen {
		return Combo{}, &ParseError{
			Input: input,
			Pos:   MaxLen,
			Err:   fmt.Errorf("%w: more than %d strokes", ErrInvalidGesture, MaxLen),
		}
	}
	for i, d := range dirs {
		if !d.Valid() {
			return Combo{}, &ParseError{Input: input, Pos: i, Err: ErrInvalidToken}
		}
		if i > 0 && dirs[i-1] == d {
			return Combo{}, &ParseError{
				Input: input,
				Pos:   i,
				Err:   fmt.Errorf("%w: repeated %s", ErrInvalidGesture, d),
			}
		}
	}
	if len(dirs) == 0 {
		return Combo{}, nil
	}
	own := make([]Direction, len(dirs))
	copy(own, dirs)
	return Combo{dirs: own}, nil
}

func joinDirections(dirs []Direction) string {
	parts := make([]string, len(dirs))
	for i, d := range dirs {
		parts[i] = d.String()
	}
	return strings.Join(parts, wordSeparator)
}

// Len returns the number of strokes.
func (c Combo) Len() int {
	return len(c.dirs)
}

// IsEmpty returns true if the combo has no strokes.
func (c Combo) IsEmpty() bool {
	return len(c.dirs) == 0
}

// At returns the direction at index i and whether i is in range.
func (c Combo) At(i int) (Direction, bool) {
	if i < 0 || i >= len(c.dirs) {
		return 0, false
	}
	return c.dirs[i], true
}

// Directions returns a copy of the strokes.
func (c Combo) Directions() []Direction {
	out := make([]Direction, len(c.dirs))
	copy(out, c.dirs)
	return out
}

// Code returns the canonical code of the combo.
func (c Combo) Code() uint64 {
	var code, place uint64 = 0, 1
	for _, d := range c.dirs {
		code += d.Weight() * place
		place *= codeBase
	}
	return code
}

// Equal returns true if both combos have the same code.
func (c Combo) Equal(other Combo) bool {
	return c.Code() == other.Code()
}

// String returns the arrow notation, e.g. "↑←".
func (c Combo) String() string {
	s, _ := c.Format(NotationArrow)
	return s
}

// GoString returns a debugging representation, e.g. "Combo(↑←)".
func (c Combo) GoString() string {
	return "Combo(" + c.String() + ")"
}

// Format renders the combo in the given notation. Word notation is joined
// with "-"; the glyph notations are concatenated.
func (c Combo) Format(n Notation) (string, error) {
	var sep string
	switch n {
	case NotationWord:
		sep = wordSeparator
	case NotationArrow, NotationTriangle:
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, n)
	}

	var sb strings.Builder
	for i, d := range c.dirs {
		if i > 0 {
			sb.WriteString(sep)
		}
		s, err := d.Format(n)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// Words returns the word notation, e.g. "up-left".
func (c Combo) Words() string {
	s, _ := c.Format(NotationWord)
	return s
}

// Triangles returns the triangle notation, e.g. "^<".
func (c Combo) Triangles() string {
	s, _ := c.Format(NotationTriangle)
	return s
}

// Reverse returns the combo drawn backwards with each stroke flipped,
// the gesture that retraces c.
func (c Combo) Reverse() Combo {
	out := make([]Direction, len(c.dirs))
	for i, d := range c.dirs {
		out[len(c.dirs)-1-i] = d.Opposite()
	}
	// Flipping and reversing preserves the adjacency rule.
	return Combo{dirs: out}
}

// HasPrefix returns true if c starts with prefix.
func (c Combo) HasPrefix(prefix Combo) bool {
	if len(prefix.dirs) > len(c.dirs) {
		return false
	}
	for i, d := range prefix.dirs {
		if c.dirs[i] != d {
			return false
		}
	}
	return true
}

// MarshalText encodes the combo in word notation.
func (c Combo) MarshalText() ([]byte, error) {
	return []byte(c.Words()), nil
}

// UnmarshalText decodes any of the three notations.
func (c *Combo) UnmarshalText(text []byte) error {
	parsed, err := ParseText(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

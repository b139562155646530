package gesture

import "fmt"

// Direction is a single cardinal stroke.
// The numeric value of each direction is its weight in a combo code.
type Direction uint8

const (
	// Up is an upward stroke.
	Up Direction = 1
	// Down is a downward stroke.
	Down Direction = 2
	// Left is a leftward stroke.
	Left Direction = 4
	// Right is a rightward stroke.
	Right Direction = 8
)

// AllDirections lists every direction in weight order.
var AllDirections = [4]Direction{Up, Down, Left, Right}

var directionWords = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

var directionArrows = map[Direction]rune{
	Up:    '↑',
	Down:  '↓',
	Left:  '←',
	Right: '→',
}

var directionTriangles = map[Direction]rune{
	Up:    '^',
	Down:  'v',
	Left:  '<',
	Right: '>',
}

var (
	wordToDirection     = invertString(directionWords)
	arrowToDirection    = invertRune(directionArrows)
	triangleToDirection = invertRune(directionTriangles)
)

func invertString(m map[Direction]string) map[string]Direction {
	out := make(map[string]Direction, len(m))
	for d, s := range m {
		out[s] = d
	}
	return out
}

func invertRune(m map[Direction]rune) map[rune]Direction {
	out := make(map[rune]Direction, len(m))
	for d, r := range m {
		out[r] = d
	}
	return out
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	_, ok := directionWords[d]
	return ok
}

// Weight returns the code weight of the direction.
func (d Direction) Weight() uint64 {
	return uint64(d)
}

// String returns the word form ("up", "down", "left", "right").
func (d Direction) String() string {
	if s, ok := directionWords[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Arrow returns the arrow glyph form.
func (d Direction) Arrow() string {
	return string(directionArrows[d])
}

// Triangle returns the triangle glyph form.
func (d Direction) Triangle() string {
	return string(directionTriangles[d])
}

// Format renders the direction in the given notation.
func (d Direction) Format(n Notation) (string, error) {
	if !d.Valid() {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, d)
	}
	switch n {
	case NotationWord:
		return d.String(), nil
	case NotationArrow:
		return d.Arrow(), nil
	case NotationTriangle:
		return d.Triangle(), nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, n)
}

// Opposite returns the reverse stroke.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// ParseWord parses a direction word such as "up".
func ParseWord(s string) (Direction, error) {
	if d, ok := wordToDirection[s]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: word %q", ErrInvalidToken, s)
}

// ParseArrow parses an arrow glyph such as '↑'.
func ParseArrow(r rune) (Direction, error) {
	if d, ok := arrowToDirection[r]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: arrow %q", ErrInvalidToken, r)
}

// ParseTriangle parses a triangle glyph such as '^'.
func ParseTriangle(r rune) (Direction, error) {
	if d, ok := triangleToDirection[r]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: triangle %q", ErrInvalidToken, r)
}

// Notation selects a textual rendering of directions.
type Notation uint8

const (
	// NotationWord renders "up-left".
	NotationWord Notation = iota
	// NotationArrow renders "↑←".
	NotationArrow
	// NotationTriangle renders "^<".
	NotationTriangle
)

// String returns the notation name.
func (n Notation) String() string {
	switch n {
	case NotationWord:
		return "word"
	case NotationArrow:
		return "arrow"
	case NotationTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("Notation(%d)", uint8(n))
	}
}

// ParseNotation parses a notation selector.
// Accepted: "word"/"w", "arrow"/"a", "triangle"/"t".
func ParseNotation(s string) (Notation, error) {
	switch s {
	case "word", "w":
		return NotationWord, nil
	case "arrow", "a":
		return NotationArrow, nil
	case "triangle", "t":
		return NotationTriangle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

package gesture

import (
	"errors"
	"fmt"
)

// Parse errors.
var (
	// ErrInvalidToken is returned when a word or glyph is not a known direction.
	ErrInvalidToken = errors.New("invalid gesture token")

	// ErrInvalidGesture is returned when a combo breaks the adjacency rule,
	// exceeds MaxLen, or text matches none of the notations.
	ErrInvalidGesture = errors.New("invalid gesture")

	// ErrInvalidCode is returned when an integer code contains a digit that is
	// not a direction weight.
	ErrInvalidCode = errors.New("invalid gesture code")

	// ErrUnsupportedFormat is returned for an unknown notation selector.
	ErrUnsupportedFormat = errors.New("unsupported gesture format")
)

// ParseError describes where parsing a gesture failed.
type ParseError struct {
	// Input is the full text or code being parsed.
	Input string

	// Pos is the index of the offending element, or -1 when not applicable.
	Pos int

	// Err is the underlying sentinel error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%v: %q", e.Err, e.Input)
	}
	return fmt.Sprintf("%v: %q at position %d", e.Err, e.Input, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

package gesture

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Whole-string patterns used to detect the notation of free text.
var (
	wordPattern     = regexp.MustCompile(`^(up|down|left|right)(-(up|down|left|right))*$`)
	arrowPattern    = regexp.MustCompile(`^[↑↓←→]+$`)
	trianglePattern = regexp.MustCompile(`^[\^v<>]+$`)
)

// ParseWords parses hyphen separated words, e.g. "up-left". The empty
// string is the empty combo.
func ParseWords(s string) (Combo, error) {
	if s == "" {
		return Empty, nil
	}
	tokens := strings.Split(s, wordSeparator)
	dirs := make([]Direction, 0, len(tokens))
	for i, tok := range tokens {
		d, err := ParseWord(tok)
		if err != nil {
			return Combo{}, &ParseError{Input: s, Pos: i, Err: err}
		}
		dirs = append(dirs, d)
	}
	return build(s, dirs)
}

// ParseArrows parses arrow glyphs, e.g. "↑←".
func ParseArrows(s string) (Combo, error) {
	return parseGlyphs(s, ParseArrow)
}

// ParseTriangles parses triangle glyphs, e.g. "^<".
func ParseTriangles(s string) (Combo, error) {
	return parseGlyphs(s, ParseTriangle)
}

func parseGlyphs(s string, parse func(rune) (Direction, error)) (Combo, error) {
	dirs := make([]Direction, 0, len(s))
	pos := 0
	for _, r := range s {
		d, err := parse(r)
		if err != nil {
			return Combo{}, &ParseError{Input: s, Pos: pos, Err: err}
		}
		dirs = append(dirs, d)
		pos++
	}
	return build(s, dirs)
}

// ParseText detects the notation of s and parses it. Surrounding
// whitespace is ignored and blank text is the empty combo. Text matching
// none of the notations fails with ErrInvalidGesture.
func ParseText(s string) (Combo, error) {
	text := strings.TrimSpace(s)
	switch {
	case text == "":
		return Empty, nil
	case wordPattern.MatchString(text):
		return ParseWords(text)
	case arrowPattern.MatchString(text):
		return ParseArrows(text)
	case trianglePattern.MatchString(text):
		return ParseTriangles(text)
	}
	return Combo{}, &ParseError{
		Input: s,
		Pos:   -1,
		Err:   fmt.Errorf("%w: no notation matches", ErrInvalidGesture),
	}
}

// ParseIn parses s in an explicit notation.
func ParseIn(s string, n Notation) (Combo, error) {
	switch n {
	case NotationWord:
		return ParseWords(s)
	case NotationArrow:
		return ParseArrows(s)
	case NotationTriangle:
		return ParseTriangles(s)
	}
	return Combo{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, n)
}

// FromCode decodes a canonical code. Digits are read least significant
// first; decoding stops when the remaining value is zero, so 0 is the
// empty combo.
func FromCode(code uint64) (Combo, error) {
	input := "0x" + strconv.FormatUint(code, 16)
	dirs := make([]Direction, 0, MaxLen)
	for pos := 0; code > 0; pos++ {
		d := Direction(code % codeBase)
		if !d.Valid() {
			return Combo{}, &ParseError{Input: input, Pos: pos, Err: ErrInvalidCode}
		}
		dirs = append(dirs, d)
		code /= codeBase
	}
	return build(input, dirs)
}

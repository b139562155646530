package gesture

import "fmt"

// Spec is any input that names a combo. The set of implementations is
// closed: Text, Code, Sequence and Combo.
type Spec interface {
	resolve() (Combo, error)
}

// Text is a combo written in any of the three notations.
type Text string

// Code is a canonical combo code.
type Code uint64

// Sequence is an ordered list of tokens, each a Direction or a Word.
type Sequence []Token

// Token is one element of a Sequence.
type Token interface {
	direction() (Direction, error)
}

// Word is a direction word used as a Sequence token.
type Word string

func (t Text) resolve() (Combo, error) { return ParseText(string(t)) }

func (c Code) resolve() (Combo, error) { return FromCode(uint64(c)) }

func (c Combo) resolve() (Combo, error) { return c, nil }

func (s Sequence) resolve() (Combo, error) {
	dirs := make([]Direction, 0, len(s))
	for i, tok := range s {
		if tok == nil {
			return Combo{}, &ParseError{Input: s.String(), Pos: i, Err: ErrInvalidToken}
		}
		d, err := tok.direction()
		if err != nil {
			return Combo{}, &ParseError{Input: s.String(), Pos: i, Err: err}
		}
		dirs = append(dirs, d)
	}
	return build(s.String(), dirs)
}

func (d Direction) direction() (Direction, error) {
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, d)
	}
	return d, nil
}

func (w Word) direction() (Direction, error) { return ParseWord(string(w)) }

// String renders the sequence for error messages.
func (s Sequence) String() string {
	out := "["
	for i, tok := range s {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprint(tok)
	}
	return out + "]"
}

// Resolve converts any Spec into a Combo.
func Resolve(s Spec) (Combo, error) {
	if s == nil {
		return Combo{}, &ParseError{Input: "<nil>", Pos: -1, Err: ErrInvalidGesture}
	}
	return s.resolve()
}

// Words converts plain strings into a Sequence of Word tokens.
func Words(words ...string) Sequence {
	seq := make(Sequence, len(words))
	for i, w := range words {
		seq[i] = Word(w)
	}
	return seq
}

// Dirs converts directions into a Sequence.
func Dirs(dirs ...Direction) Sequence {
	seq := make(Sequence, len(dirs))
	for i, d := range dirs {
		seq[i] = d
	}
	return seq
}

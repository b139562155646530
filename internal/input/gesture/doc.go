// Package gesture provides the directional stroke vocabulary for mouse gestures.
//
// A gesture is a sequence of cardinal strokes drawn while a trigger button is
// held. Each stroke is a Direction; a whole gesture is a Combo.
//
// # Notations
//
// Combos can be written in three interchangeable notations:
//
//	"up-left"  - Word notation, hyphen separated
//	"↑←"       - Arrow notation
//	"^<"       - Triangle notation (ASCII friendly)
//
// All three parse to equal combos:
//
//	a, _ := gesture.ParseWords("up-left")
//	b, _ := gesture.ParseTriangles("^<")
//	a.Equal(b) // true
//
// # Codes
//
// Every combo has a canonical integer code. Each position i contributes
// weight(direction) * 16^i, where the weights are Up=1, Down=2, Left=4 and
// Right=8. The code is the sole basis for equality and for map lookup:
//
//	c, _ := gesture.ParseWords("up-left") // code 0x41
//	d, _ := gesture.FromCode(0x41)        // up-left again
//
// The empty combo has code 0.
//
// # Adjacency
//
// Two consecutive strokes are never equal. "up-up" is rejected with
// ErrInvalidGesture rather than collapsed.
//
// # Specs
//
// Spec is a closed set of input shapes that resolve to a Combo:
// Text, Code, Sequence and Combo itself. Registries accept any Spec so
// callers can key bindings however is most readable:
//
//	reg.Set(gesture.Text("up-left"), b)
//	reg.Get(gesture.Code(0x41))
//	reg.Get(gesture.Sequence{gesture.Up, gesture.Word("left")})
package gesture

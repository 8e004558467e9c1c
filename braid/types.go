package braid

import (
	"errors"
	"fmt"
)

// ErrUnknownTwist is returned when a twist symbol cannot be parsed.
var ErrUnknownTwist = errors.New("braid: unknown twist symbol")

// Twist is an elementary crossing on three strands.
type Twist uint8

const (
	// A crosses strands 1 and 2 positively.
	A Twist = iota
	// B crosses strands 2 and 3 positively.
	B
	// AInv is the inverse of A.
	AInv
	// BInv is the inverse of B.
	BInv
)

// Twists lists every generator in canonical extension order.
var Twists = [...]Twist{A, B, AInv, BInv}

var twistNames = [...]string{A: "A", B: "B", AInv: "Ainv", BInv: "Binv"}

// String returns "A", "B", "Ainv" or "Binv".
func (t Twist) String() string {
	if int(t) < len(twistNames) {
		return twistNames[t]
	}
	return fmt.Sprintf("Twist(%d)", uint8(t))
}

// Inverse returns the twist undoing t.
func (t Twist) Inverse() Twist {
	switch t {
	case A:
		return AInv
	case B:
		return BInv
	case AInv:
		return A
	default:
		return B
	}
}

// Sign returns +1 for positive crossings (A, B) and −1 for their inverses.
func (t Twist) Sign() int64 {
	if t == A || t == B {
		return 1
	}
	return -1
}

// ParseTwist parses the String form of a twist.
func ParseTwist(s string) (Twist, error) {
	for i, name := range twistNames {
		if s == name {
			return Twist(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTwist, s)
}

// Word is an element of B₃ written as a sequence of twists.
// The zero value is the identity word.
type Word struct {
	twists []Twist
}

// Identity returns the empty word.
func Identity() Word {
	return Word{}
}

// NewWord builds a word from the given twists. The slice is copied.
func NewWord(twists ...Twist) Word {
	return Word{twists: append([]Twist(nil), twists...)}
}

package braid_test

import (
	"strings"

	"github.com/katalvlaran/b3jones/braid"
	"github.com/katalvlaran/b3jones/poly"
)

// burau is a 2×2 matrix over Laurent polynomials: the reduced Burau image of
// a word. The representation is faithful on B₃, so two words name the same
// group element exactly when their images agree.
type burau [2][2]poly.Poly

func burauIdentity() burau {
	return burau{
		{poly.Constant(1), poly.Zero()},
		{poly.Zero(), poly.Constant(1)},
	}
}

func burauOf(t braid.Twist) burau {
	one, zero := poly.Constant(1), poly.Zero()
	switch t {
	case braid.A:
		return burau{{poly.Monomial(1, -1), one}, {zero, one}}
	case braid.B:
		return burau{{one, zero}, {poly.Monomial(1, 1), poly.Monomial(1, -1)}}
	case braid.AInv:
		return burau{{poly.Monomial(-1, -1), poly.Monomial(-1, 1)}, {zero, one}}
	default:
		return burau{{one, zero}, {one, poly.Monomial(-1, -1)}}
	}
}

func (m burau) mul(n burau) burau {
	var res burau
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			res[i][j] = m[i][0].Mul(n[0][j]).Add(m[i][1].Mul(n[1][j]))
		}
	}
	return res
}

// key renders the matrix deterministically for use as a map key.
func (m burau) key() string {
	parts := make([]string, 0, 4)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			parts = append(parts, m[i][j].String())
		}
	}
	return strings.Join(parts, " | ")
}

func burauKey(w braid.Word) string {
	m := burauIdentity()
	for _, t := range w.Twists() {
		m = m.mul(burauOf(t))
	}
	return m.key()
}

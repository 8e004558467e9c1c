package poly

import "errors"

// ErrBadFormat is returned by Parse when the input is not a rendering
// produced by Poly.String.
var ErrBadFormat = errors.New("poly: malformed polynomial text")

// Poly is a Laurent polynomial in t with int64 coefficients.
// The zero value is the zero polynomial and is ready to use.
type Poly struct {
	coefs map[int64]int64
}

// Term is a single (exponent, coefficient) pair.
type Term struct {
	Exp  int64
	Coef int64
}

// Zero returns P(t) = 0.
func Zero() Poly {
	return Poly{coefs: map[int64]int64{}}
}

// Constant returns P(t) = n.
func Constant(n int64) Poly {
	return Monomial(0, n)
}

// Identity returns P(t) = t.
func Identity() Poly {
	return Monomial(1, 1)
}

// InverseIdentity returns P(t) = t⁻¹.
func InverseIdentity() Poly {
	return Monomial(-1, 1)
}

// Monomial returns P(t) = coef·t^exp.
func Monomial(exp, coef int64) Poly {
	return Poly{coefs: map[int64]int64{exp: coef}}
}

// FromCoefs builds a polynomial from an exponent→coefficient map.
// The map is copied.
func FromCoefs(m map[int64]int64) Poly {
	p := Poly{coefs: make(map[int64]int64, len(m))}
	for e, c := range m {
		p.coefs[e] = c
	}
	return p
}

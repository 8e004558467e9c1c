package poly

import "sort"

// Coef returns the coefficient of t^exp, 0 if exp is absent.
func (p Poly) Coef(exp int64) int64 {
	return p.coefs[exp]
}

// SetCoef overwrites the coefficient of t^exp. A zero value is stored as is.
func (p *Poly) SetCoef(exp, coef int64) {
	if p.coefs == nil {
		p.coefs = make(map[int64]int64, 1)
	}
	p.coefs[exp] = coef
}

// Len returns the number of stored terms, zero coefficients included.
func (p Poly) Len() int {
	return len(p.coefs)
}

// IsZero reports whether every coefficient is 0.
func (p Poly) IsZero() bool {
	for _, c := range p.coefs {
		if c != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of p.
func (p Poly) Clone() Poly {
	return FromCoefs(p.coefs)
}

// Equal reports whether p and q have the same coefficient at every exponent
// stored in either of them, treating absent exponents as 0.
func (p Poly) Equal(q Poly) bool {
	for e, c := range p.coefs {
		if q.coefs[e] != c {
			return false
		}
	}
	for e, c := range q.coefs {
		if p.coefs[e] != c {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	res := p.Clone()
	for e, c := range q.coefs {
		res.coefs[e] += c
	}
	return res
}

// Sub returns p − q.
func (p Poly) Sub(q Poly) Poly {
	res := p.Clone()
	for e, c := range q.coefs {
		res.coefs[e] -= c
	}
	return res
}

// Neg returns −p.
func (p Poly) Neg() Poly {
	return p.Scale(-1)
}

// Scale returns k·p.
func (p Poly) Scale(k int64) Poly {
	res := Poly{coefs: make(map[int64]int64, len(p.coefs))}
	for e, c := range p.coefs {
		res.coefs[e] = c * k
	}
	return res
}

// Mul returns the product p·q: for every pair of stored exponents
// (e1 in p, e2 in q) the product of their coefficients accumulates at e1+e2.
func (p Poly) Mul(q Poly) Poly {
	res := Poly{coefs: make(map[int64]int64, len(p.coefs)*len(q.coefs))}
	for e1, c1 := range p.coefs {
		for e2, c2 := range q.coefs {
			res.coefs[e1+e2] += c1 * c2
		}
	}
	return res
}

// Mirror returns P(t⁻¹): every exponent negated, coefficients unchanged.
func (p Poly) Mirror() Poly {
	res := Poly{coefs: make(map[int64]int64, len(p.coefs))}
	for e, c := range p.coefs {
		res.coefs[-e] = c
	}
	return res
}

// Terms returns the non-zero terms of p sorted by ascending exponent.
func (p Poly) Terms() []Term {
	terms := make([]Term, 0, len(p.coefs))
	for e, c := range p.coefs {
		if c != 0 {
			terms = append(terms, Term{Exp: e, Coef: c})
		}
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Exp < terms[j].Exp })
	return terms
}

// Exponents returns the exponents carrying a non-zero coefficient, ascending.
func (p Poly) Exponents() []int64 {
	terms := p.Terms()
	exps := make([]int64, len(terms))
	for i, t := range terms {
		exps[i] = t.Exp
	}
	return exps
}

package bracket

import (
	"github.com/katalvlaran/b3jones/braid"
	"github.com/katalvlaran/b3jones/poly"
)

// Unknot returns −t⁻² − t².
func Unknot() poly.Poly {
	u := poly.Zero()
	u.SetCoef(-2, -1)
	u.SetCoef(2, -1)
	return u
}

// JonesPolynomial multiplies kauffman by the writhe correction s·t^(−3·writhe).
func JonesPolynomial(kauffman poly.Poly, writhe int64, mode SignMode) poly.Poly {
	var sign int64
	switch mode {
	case RemainderSign:
		sign = 1 - 2*(writhe%2)
	default:
		sign = 1
		if writhe%2 != 0 {
			sign = -1
		}
	}
	return kauffman.Mul(poly.Monomial(-3*writhe, sign))
}

// Identity returns the annotation of the empty word.
func (e *Engine) Identity() Annotation {
	u1 := e.unknot.Clone()
	u2 := u1.Mul(u1)
	u3 := u2.Mul(u1)
	return Annotation{
		Word:   braid.Identity(),
		A:      u3,
		B:      u2,
		C:      u2.Clone(),
		D:      u1,
		E:      u1.Clone(),
		Writhe: 0,
		Jones:  JonesPolynomial(u3, 0, e.opts.SignMode),
	}
}

// Step returns the annotation of parent.Word followed by t.
func (e *Engine) Step(parent Annotation, t braid.Twist) Annotation {
	p, q := poly.Identity(), poly.InverseIdentity()
	if t.Sign() < 0 {
		p, q = q, p
	}
	// smoothing of the new crossing: p·x + q·y
	skein := func(x, y poly.Poly) poly.Poly {
		return p.Mul(x).Add(q.Mul(y))
	}

	child := Annotation{
		Word:   parent.Word.Append(t),
		Writhe: parent.Writhe + t.Sign(),
	}
	switch t {
	case braid.A, braid.AInv:
		child.A = skein(parent.A, parent.B)
		child.B = skein(parent.B, parent.B.Mul(e.unknot))
		child.C = skein(parent.C, parent.D)
		child.D = skein(parent.D, parent.D.Mul(e.unknot))
		child.E = skein(parent.E, parent.B)
	default:
		child.A = skein(parent.A, parent.C)
		child.B = skein(parent.B, parent.E)
		child.C = skein(parent.C, parent.C.Mul(e.unknot))
		child.D = skein(parent.D, parent.C)
		child.E = skein(parent.E, parent.E.Mul(e.unknot))
	}
	child.Jones = JonesPolynomial(child.A, child.Writhe, e.opts.SignMode)
	return child
}

// Descendants annotates every canonical extension of parent.Word, in
// braid.Descendants order.
func (e *Engine) Descendants(parent Annotation) []Annotation {
	words := braid.Descendants(parent.Word)
	res := make([]Annotation, 0, len(words))
	for _, w := range words {
		t, _ := w.Last()
		res = append(res, e.Step(parent, t))
	}
	return res
}

// Annotate folds Step over every twist of w, canonical or not.
func (e *Engine) Annotate(w braid.Word) Annotation {
	a := e.Identity()
	for _, t := range w.Twists() {
		a = e.Step(a, t)
	}
	return a
}

package braid

// Descendants returns the canonical words obtained from w by appending one
// twist, in the order A, B, AInv, BInv. Extensions that equal a shorter word
// or a non-preferred spelling of an already enumerated element are skipped.
func Descendants(w Word) []Word {
	res := make([]Word, 0, len(Twists))

	// Ainv A == 1; Binv A B A == Binv B A B == A B.
	if !w.EndsWith(AInv) &&
		!w.EndsWith(BInv, A, B) {
		res = append(res, w.Append(A))
	}

	// Binv B == 1; B A B is spelled A B A; Ainv Binv Ainv B == Binv Ainv.
	if !w.EndsWith(BInv) &&
		!w.EndsWith(B, A) &&
		!w.EndsWith(AInv, BInv, AInv) {
		res = append(res, w.Append(B))
	}

	// A Ainv == 1; B Ainv Binv Ainv == B Binv Ainv Binv == Ainv Binv.
	if !w.EndsWith(A) &&
		!w.EndsWith(B, AInv, BInv) {
		res = append(res, w.Append(AInv))
	}

	// B Binv == 1; Binv Ainv Binv is spelled Ainv Binv Ainv; A B A Binv == B A.
	if !w.EndsWith(B) &&
		!w.EndsWith(BInv, AInv) &&
		!w.EndsWith(A, B, A) {
		res = append(res, w.Append(BInv))
	}

	return res
}

// Layer returns every canonical word of exactly length n, parents expanded in
// the order they were produced. n <= 0 yields only the identity.
func Layer(n int) []Word {
	layer := []Word{Identity()}
	for i := 0; i < n; i++ {
		next := make([]Word, 0, len(layer)*3)
		for _, w := range layer {
			next = append(next, Descendants(w)...)
		}
		layer = next
	}
	return layer
}

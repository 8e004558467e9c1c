// Package bracket derives Kauffman brackets and Jones polynomials of closed
// 3-strand braids incrementally, one twist at a time.
//
// What
//
//	For a braid word w the package tracks an Annotation: five bracket
//	polynomials A..E, one per way of joining the three strand ends into a
//	closed diagram, plus the writhe and the Jones polynomial of the A-type
//	closure (the ordinary braid closure). B..E exist only so that the
//	recurrence is closed: the brackets of w·g depend on w's five brackets and
//	nothing else.
//
// Recurrence
//
//	Let U = −t⁻² − t² (the bracket of a lone unknot) and let (p, q) = (t, t⁻¹)
//	for a positive twist, (t⁻¹, t) for a negative one. Smoothing the new
//	crossing gives
//
//	  twist A or Ainv:              twist B or Binv:
//	    A' = p·A + q·B                A' = p·A + q·C
//	    B' = p·B + q·(B·U)            B' = p·B + q·E
//	    C' = p·C + q·D                C' = p·C + q·(C·U)
//	    D' = p·D + q·(D·U)            D' = p·D + q·C
//	    E' = p·E + q·B                E' = p·E + q·(E·U)
//
//	and the writhe moves by ±1. The identity word starts from
//	(U³, U², U², U, U) with writhe 0: three, two, two, one and one loops.
//
// Jones polynomial
//
//	Jones = A · s·t^(−3·writhe), where s is the sign chosen by SignMode.
//	ParitySign (default) uses s = (−1)^writhe. RemainderSign uses
//	s = 1 − 2·(writhe % 2) with Go's truncated remainder, which gives s = 3
//	for odd negative writhe; it exists to reproduce tables computed that way
//	and breaks mirror symmetry (Jones(mirror w) ≠ mirror(Jones w)).
//
// Ownership
//
//	Every Annotation owns its polynomials. Step never aliases parent storage,
//	so siblings can be extended independently and concurrently.
//
// Complexity
//
//	One Step costs a constant number of polynomial products; bracket degree
//	grows linearly with word length, so a Step is O(len(w)²) in the worst case.
package bracket

// Package braid models words in the 3-strand braid group B₃ and enumerates
// them in a canonical form, one word per group element.
//
// What
//
//   - Twist is one of the four elementary moves: A (σ₁), B (σ₂) and their
//     inverses AInv, BInv.
//   - Word is an immutable sequence of twists. Words are only ever extended
//     into new words, never modified.
//   - Descendants returns the canonical one-twist extensions of a canonical
//     word, in the fixed order A, B, AInv, BInv.
//
// Canonical form
//
//	A twist is not appended when the current word ends with a suffix that
//	would make the result equal to a shorter word or to a preferred spelling
//	of the same element:
//
//	  append A     unless the word ends with  AInv   | BInv A B
//	  append B     unless the word ends with  BInv   | B A    | AInv BInv AInv
//	  append AInv  unless the word ends with  A      | B AInv BInv
//	  append BInv  unless the word ends with  B      | BInv AInv | A B A
//
//	These rules come from free cancellation and the braid relation
//	A B A = B A B (A B A is kept, B A B is dropped). They are hand derived
//	and verified only through the layer counts 1, 4, 12, 34, 92 for lengths
//	0..4; keep them verbatim.
//
// Usage
//
//	w := braid.Identity()
//	for _, child := range braid.Descendants(w) {
//	    fmt.Println(child) // A, B, Ainv, Binv
//	}
package braid

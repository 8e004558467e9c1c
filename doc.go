// Package b3jones computes Jones polynomials of closed 3-strand braids for
// every element of the braid group B₃ up to a word-length bound.
//
// 🚀 What is b3jones?
//
//	Instead of expanding a state sum per diagram, b3jones extends braid
//	words one twist at a time and carries five Kauffman brackets along, so
//	each new word costs a handful of polynomial products:
//		• poly/       — sparse Laurent polynomials with exact int64 coefficients
//		• braid/      — twists, words and the canonical-form generator
//		• bracket/    — the five-bracket recurrence and the Jones polynomial
//		• enumerate/  — breadth-first walk keeping only the newest frontier
//		• store/      — SQLite persistence of enumeration runs
//		• config/     — YAML run settings
//		• cmd/b3jones — command line front end
//
// Quick example:
//
//	recs, _ := enumerate.Enumerate(4)
//	for _, r := range recs {
//	    fmt.Println(r.Word, r.Jones)
//	}
//
//	go install github.com/katalvlaran/b3jones/cmd/b3jones@latest
//	b3jones run --length 10 --workers 8
package b3jones

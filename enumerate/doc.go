// Package enumerate walks the canonical words of B₃ breadth-first by length
// and records the Jones polynomial of every word it visits.
//
// What
//
//	Generation 0 is the identity word. Generation g+1 is obtained by
//	annotating every canonical extension of every word of generation g, in
//	the order the parents were produced. The walker keeps two channels of
//	state:
//	  - the frontier: full bracket.Annotation values of the newest generation
//	    only, dropped as soon as the next generation is built;
//	  - the records: reduced (word, Jones) pairs for every word ever visited.
//
// Determinism
//
//	Records are ordered by length, then by production order within a
//	generation. WithWorkers(k>1) computes each generation in parallel, joins
//	at one barrier per generation and writes children into pre-indexed slots,
//	so the output is identical to the sequential walk.
//
// Complexity (n = max length, branching ≈ 3)
//
//   - Records: Σ layer sizes, ≈ 3ⁿ
//   - Memory:  one frontier of full annotations plus all reduced records
//
// Usage
//
//	recs, err := enumerate.Enumerate(6,
//	    enumerate.WithWorkers(4),
//	    enumerate.WithOnGeneration(func(gen, size int) { ... }),
//	)
//	sum := enumerate.Summarize(recs)
package enumerate

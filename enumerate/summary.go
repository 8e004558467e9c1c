package enumerate

// Summary aggregates a record list.
type Summary struct {
	// Total is the number of records.
	Total int

	// PerLength[k] counts records of word length k.
	PerLength []int

	// LastNonZeroConstantLen is the greatest word length whose Jones
	// polynomial has a non-zero t⁰ coefficient, or -1 if none does.
	LastNonZeroConstantLen int
}

// Summarize computes the Summary of recs.
func Summarize(recs []Record) Summary {
	s := Summary{Total: len(recs), LastNonZeroConstantLen: -1}
	for _, r := range recs {
		n := r.Word.Len()
		for len(s.PerLength) <= n {
			s.PerLength = append(s.PerLength, 0)
		}
		s.PerLength[n]++
		if r.Jones.Coef(0) != 0 && n > s.LastNonZeroConstantLen {
			s.LastNonZeroConstantLen = n
		}
	}
	return s
}

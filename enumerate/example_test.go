package enumerate_test

import (
	"fmt"

	"github.com/katalvlaran/b3jones/enumerate"
)

// ExampleEnumerate lists the words of length ≤ 1 with their t⁰ coefficients.
func ExampleEnumerate() {
	recs, err := enumerate.Enumerate(1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range recs {
		fmt.Println(r.Word, r.Jones.Coef(0))
	}
	// Output:
	// 1 0
	// A 2
	// B 2
	// Ainv 2
	// Binv 2
}

// ExampleSummarize prints the statistics of a length-4 walk.
func ExampleSummarize() {
	recs, err := enumerate.Enumerate(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s := enumerate.Summarize(recs)
	fmt.Println(s.Total, s.PerLength, s.LastNonZeroConstantLen)
	// Output:
	// 143 [1 4 12 34 92] 3
}

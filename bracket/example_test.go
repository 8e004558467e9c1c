package bracket_test

import (
	"fmt"

	"github.com/katalvlaran/b3jones/braid"
	"github.com/katalvlaran/b3jones/bracket"
)

// ExampleEngine_Annotate computes the Jones polynomial of the closure of σ₁σ₂,
// a single unknot.
func ExampleEngine_Annotate() {
	eng, err := bracket.NewEngine()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a := eng.Annotate(braid.NewWord(braid.A, braid.B))
	fmt.Println(a.Writhe)
	fmt.Println(a.Jones)
	// Output:
	// 2
	// P(t) = -1 * t^-2  +  -1 * t^2
}

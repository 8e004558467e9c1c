package braid_test

import (
	"testing"

	"github.com/katalvlaran/b3jones/braid"
)

// BenchmarkLayer enumerates the 702 canonical words of length 6.
func BenchmarkLayer(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = braid.Layer(6)
	}
}

package poly_test

import (
	"testing"

	"github.com/katalvlaran/b3jones/poly"
)

// BenchmarkMul multiplies two dense-ish Laurent polynomials of 64 terms each.
func BenchmarkMul(b *testing.B) {
	p, q := poly.Zero(), poly.Zero()
	for i := int64(-32); i < 32; i++ {
		p.SetCoef(2*i, i)
		q.SetCoef(2*i+1, -i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Mul(q)
	}
}

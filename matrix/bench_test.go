// Package matrix_test provides benchmarks for the exact kernels and row
// operations, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{8, 16, 32}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix
	sinkV []fraction.Fraction
)

// randFrac fills an r×c matrix with fractions p/q, p ∈ [-9, 9], q ∈ [1, 4].
func randFrac(b *testing.B, r, c int, seed int64) *matrix.Matrix {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.Zeros(r, c)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			f, _ := fraction.New(rng.Int63n(19)-9, rng.Int63n(4)+1)
			if err = m.Set(i, j, f); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randFrac(b, n, n, 1337)
			B := randFrac(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randFrac(b, n, n, 11)
			B := randFrac(b, n, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randFrac(b, n, n, 5)
			x, _ := randFrac(b, 1, n, 6).Row(0)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkAddScaledRow(b *testing.B) {
	b.ReportAllocs()
	k, _ := fraction.New(-3, 7)
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randFrac(b, 2, n, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := A.AddScaledRow(1, 0, k); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = A
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randFrac(b, n, n+1, 7) // augmented shape
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Clone()
			}
		})
	}
}

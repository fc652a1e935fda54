// Package inverse_test verifies exact inversion and the invertibility check.
package inverse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/determinant"
	"github.com/katalvlaran/lvlalg/inverse"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/trace"
)

func mustInts(t *testing.T, rows [][]int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// requireIdentity asserts a·b == I exactly.
func requireIdentity(t *testing.T, a, b *matrix.Matrix) {
	t.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	id, err := matrix.Identity(a.Rows())
	require.NoError(t, err)
	require.True(t, id.Equal(p), "product is not I:\n%s", p)
}

func TestInvert_RoundTrip(t *testing.T) {
	a := mustInts(t, [][]int64{{2, 1}, {5, 3}})
	inv, steps, err := inverse.Invert(a)
	require.NoError(t, err)
	require.Equal(t, "[3, -1]\n[-5, 2]\n", inv.String())
	requireIdentity(t, inv, a)
	requireIdentity(t, a, inv)

	require.Equal(t, trace.KindStart, steps[0].Kind())
	require.Equal(t, "[2, 1, 1, 0]\n[5, 3, 0, 1]\n", steps[0].Matrix().String())
	last := steps[len(steps)-1]
	require.Equal(t, trace.KindResult, last.Kind())
	require.True(t, inv.Equal(last.Matrix()))
	require.Equal(t, trace.KindComplete, steps[len(steps)-2].Kind())

	// caller owns the result
	require.Equal(t, "[2, 1]\n[5, 3]\n", a.String())
}

func TestInvert_Rational(t *testing.T) {
	a := mustInts(t, [][]int64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})
	inv, _, err := inverse.Invert(a)
	require.NoError(t, err)
	require.Equal(t, "[12/11, -6/11, -1/11]\n[5/22, 3/22, -5/22]\n[-2/11, 1/11, 2/11]\n", inv.String())
	requireIdentity(t, inv, a)
}

func TestInvert_Singular(t *testing.T) {
	for _, rows := range [][][]int64{
		{{1, 2}, {2, 4}},
		{{0, 0}, {0, 1}},
		{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	} {
		a := mustInts(t, rows)
		inv, steps, err := inverse.Invert(a)
		require.ErrorIs(t, err, matrix.ErrSingular, "%v", rows)
		require.Nil(t, inv)
		require.Nil(t, steps)

		chk, err := inverse.CheckInvertible(a)
		require.NoError(t, err)
		require.False(t, chk.Invertible)
		require.Less(t, chk.Rank, a.Rows())
		require.True(t, chk.Determinant.IsZero())
	}
}

func TestInvert_ShapeErrors(t *testing.T) {
	_, _, err := inverse.Invert(mustInts(t, [][]int64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = inverse.CheckInvertible(mustInts(t, [][]int64{{1}, {2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = inverse.Invert(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = inverse.CheckInvertible(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInvert_Empty(t *testing.T) {
	empty, err := matrix.New(nil)
	require.NoError(t, err)

	inv, _, err := inverse.Invert(empty)
	require.NoError(t, err)
	require.Equal(t, 0, inv.Rows())

	chk, err := inverse.CheckInvertible(empty)
	require.NoError(t, err)
	require.True(t, chk.Invertible)
	require.True(t, chk.Determinant.IsOne())
}

func TestCheckInvertible(t *testing.T) {
	a := mustInts(t, [][]int64{{0, 2, 1}, {1, 1, 0}, {3, 0, 1}})
	chk, err := inverse.CheckInvertible(a)
	require.NoError(t, err)
	require.True(t, chk.Invertible)
	require.Equal(t, 3, chk.Rank)
	require.Equal(t, []int{0, 1, 2}, chk.Pivots)
	require.Equal(t, trace.KindComplete, chk.Steps[len(chk.Steps)-1].Kind())
	require.Zero(t, trace.CountKind(chk.Steps, trace.KindNormalize), "forward pass never normalises")

	det, _, err := determinant.Elimination(a)
	require.NoError(t, err)
	require.True(t, det.Equal(chk.Determinant))
}

// TestInvert_AgreesWithCheckAndGonum runs seeded random matrices through both
// operations and compares the inverse with gonum's float inverse.
func TestInvert_AgreesWithCheckAndGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for n := 1; n <= 5; n++ {
		for trial := 0; trial < 4; trial++ {
			rows := make([][]int64, n)
			for i := range rows {
				rows[i] = make([]int64, n)
				for j := range rows[i] {
					rows[i][j] = int64(rng.Intn(7) - 3)
				}
			}
			t.Run(fmt.Sprintf("n=%d/%d", n, trial), func(t *testing.T) {
				a := mustInts(t, rows)
				chk, err := inverse.CheckInvertible(a)
				require.NoError(t, err)

				inv, _, err := inverse.Invert(a)
				if !chk.Invertible {
					require.ErrorIs(t, err, matrix.ErrSingular)
					return
				}
				require.NoError(t, err)
				requireIdentity(t, inv, a)

				var want mat.Dense
				d, err := a.Float64()
				require.NoError(t, err)
				require.NoError(t, want.Inverse(d))
				got, err := inv.Float64()
				require.NoError(t, err)
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						assert.InDelta(t, want.At(i, j), got.At(i, j), 1e-8)
					}
				}
			})
		}
	}
}

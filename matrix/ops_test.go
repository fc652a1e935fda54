package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
)

func TestAddSub(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2}, {3, 4}})
	b := MustInts(t, [][]int64{{2, 0}, {1, 2}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	RequireMatrixEqual(t, MustInts(t, [][]int64{{3, 2}, {4, 6}}), sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	RequireMatrixEqual(t, MustInts(t, [][]int64{{-1, 2}, {2, 2}}), diff)

	_, err = matrix.Add(a, MustInts(t, [][]int64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2}, {3, 4}})
	b := MustInts(t, [][]int64{{2, 0}, {1, 2}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireMatrixEqual(t, MustInts(t, [][]int64{{4, 4}, {10, 8}}), p)

	half := MustParse(t, [][]string{{"1/2", "0"}, {"0", "1/3"}})
	p, err = matrix.Mul(half, a)
	require.NoError(t, err)
	require.Equal(t, "[1/2, 1]\n[1, 4/3]\n", p.String())

	_, err = matrix.Mul(a, MustInts(t, [][]int64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeScaleMatVec(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	RequireMatrixEqual(t, MustInts(t, [][]int64{{1, 4}, {2, 5}, {3, 6}}), tr)

	tt, err := matrix.Transpose(tr)
	require.NoError(t, err)
	RequireMatrixEqual(t, a, tt)

	s, err := matrix.Scale(a, Frac(t, "-1/2"))
	require.NoError(t, err)
	require.Equal(t, "[-1/2, -1, -3/2]\n[-2, -5/2, -3]\n", s.String())

	y, err := matrix.MatVec(a, []fraction.Fraction{fraction.One(), fraction.Zero(), fraction.FromInt(-1)})
	require.NoError(t, err)
	assert.Equal(t, "-2 -2", joinFracs(y))

	_, err = matrix.MatVec(a, []fraction.Fraction{fraction.One()})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAugmentSliceMinor(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2}, {3, 4}})
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	aug, err := matrix.Augment(a, id)
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 1, 0]\n[3, 4, 0, 1]\n", aug.String())

	right, err := matrix.SliceCols(aug, 2, 4)
	require.NoError(t, err)
	RequireMatrixEqual(t, id, right)

	_, err = matrix.SliceCols(aug, 3, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Augment(a, MustInts(t, [][]int64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	av, err := matrix.AugmentVec(a, []fraction.Fraction{fraction.FromInt(5), fraction.FromInt(6)})
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 5]\n[3, 4, 6]\n", av.String())

	m3 := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	minor, err := matrix.Minor(m3, 1, 0)
	require.NoError(t, err)
	RequireMatrixEqual(t, MustInts(t, [][]int64{{2, 3}, {8, 9}}), minor)

	_, err = matrix.Minor(m3, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestOps_NoMutation checks that kernels never write into their inputs.
func TestOps_NoMutation(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2}, {3, 4}})
	before := a.Clone()

	_, _ = matrix.Add(a, a)
	_, _ = matrix.Mul(a, a)
	_, _ = matrix.Transpose(a)
	_, _ = matrix.Scale(a, fraction.FromInt(3))
	_, _ = matrix.Minor(a, 0, 0)

	RequireMatrixEqual(t, before, a)
}

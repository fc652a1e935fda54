package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
)

func TestValidators(t *testing.T) {
	sq := MustInts(t, [][]int64{{1, 2}, {3, 4}})
	rect := MustInts(t, [][]int64{{1, 2, 3}})

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(sq))

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSize(sq, 2))
	require.ErrorIs(t, matrix.ValidateSize(sq, 3), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(sq, rect), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(rect, MustInts(t, [][]int64{{1}, {2}, {3}})))

	require.ErrorIs(t, matrix.ValidateVecLen([]fraction.Fraction{fraction.One()}, 2), matrix.ErrDimensionMismatch)
}

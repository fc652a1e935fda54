// SPDX-License-Identifier: MIT

package inverse

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/determinant"
	"github.com/katalvlaran/lvlalg/elimination"
	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/trace"
)

const (
	opInvert          = "Invert"
	opCheckInvertible = "CheckInvertible"
)

const labelInverse = "inverse: right half of [A | I]"

// Invert returns A⁻¹.
// Implementation:
//   - Stage 1: validate A square; build [A | I].
//   - Stage 2: drive a Gauss-Jordan engine one step at a time. A pivot-less
//     column inside the A block means A is singular: fail immediately.
//   - Stage 3: once the rows run out the left block is I; copy out the right
//     block and append a Result step holding it.
//
// Returns:
//   - the inverse and the full step log, or (nil, nil, err).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (not square).
//   - matrix.ErrSingular.
//
// Complexity:
//   - O(n³) arithmetic, O(n²) per recorded step.
func Invert(a *matrix.Matrix) (*matrix.Matrix, []trace.Step, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opInvert, err)
	}
	n := a.Rows()
	id, _ := matrix.Identity(n)
	aug, err := matrix.Augment(a, id)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opInvert, err)
	}

	e := elimination.New(aug, elimination.WithMode(elimination.GaussJordan))
	for {
		s, ok := e.Step()
		if !ok {
			break
		}
		if s.Kind() != trace.KindNoPivot {
			continue
		}
		if c, _ := s.Column(); c < n {
			return nil, nil, fmt.Errorf("%s: no pivot in column %d: %w", opInvert, c+1, matrix.ErrSingular)
		}
	}

	inv, err := matrix.SliceCols(e.Matrix(), n, 2*n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opInvert, err)
	}
	steps := append(e.Steps(), trace.NewStep(trace.KindResult, labelInverse, inv))

	return inv, steps, nil
}

// Check is the outcome of CheckInvertible.
type Check struct {
	Invertible  bool
	Rank        int
	Pivots      []int             // pivot columns; len(Pivots) == Rank
	Determinant fraction.Fraction // 0 when not invertible
	Steps       []trace.Step
}

// CheckInvertible decides invertibility with a forward-only pass: A is
// invertible iff every column has a pivot (rank n), equivalently det ≠ 0.
// The 0×0 matrix is invertible with determinant 1.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (not square).
func CheckInvertible(a *matrix.Matrix) (Check, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return Check{}, fmt.Errorf("%s: %w", opCheckInvertible, err)
	}
	res, steps, err := determinant.Echelon(a)
	if err != nil {
		return Check{}, fmt.Errorf("%s: %w", opCheckInvertible, err)
	}

	return Check{
		Invertible:  res.Rank == a.Rows(),
		Rank:        res.Rank,
		Pivots:      res.PivotColumns,
		Determinant: res.Determinant,
		Steps:       steps,
	}, nil
}

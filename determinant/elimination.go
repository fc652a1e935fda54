// SPDX-License-Identifier: MIT

package determinant

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/trace"
)

const opElimination = "Elimination"

// Elimination computes det(m) by forward elimination.
// Implementation:
//   - Stage 1: validate m square.
//   - Stage 2: forward pass (no normalisation); a column without a pivot
//     stops the pass early with det = 0.
//   - Stage 3: det = (−1)^swaps · Π pivots.
//
// The 0×0 matrix has determinant 1 (empty product).
//
// Steps: Start, the row operations, then a Result step "det = …".
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity: O(n³) arithmetic.
func Elimination(m *matrix.Matrix) (fraction.Fraction, []trace.Step, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return fraction.Zero(), nil, fmt.Errorf("%s: %w", opElimination, err)
	}

	var rec trace.Recorder
	res, _ := forwardPass(m, true, &rec)
	det := res.Determinant // One() for 0×0: rank 0 is full rank there
	rec.Record(trace.KindResult, fmt.Sprintf(labelDet, det), res.Matrix)

	return det, rec.Steps(), nil
}

// SPDX-License-Identifier: MIT

package determinant

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/trace"
)

const opCramer = "Cramer"

const (
	labelCramerDet     = "det(A) = %s"
	labelCramerReplace = "A%d: column %d replaced by b, det = %s"
	labelCramerSolve   = "x%d = %s / %s = %s"
)

// Cramer solves A·x = b for square, nonsingular A by Cramer's rule:
// x_j = det(A_j) / det(A), where A_j is A with column j replaced by b.
// Every determinant is computed with Elimination.
//
// Steps: Start (A), a Result step with det(A), then per unknown j an Expand
// step on A_j focused on column j and a Result step with x_j.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (A not square or
//     len(b) ≠ order).
//   - matrix.ErrSingular when det(A) = 0.
//
// Complexity: O(n⁴); prefer elimination.Solve for anything but small systems.
func Cramer(a *matrix.Matrix, b []fraction.Fraction) ([]fraction.Fraction, []trace.Step, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opCramer, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opCramer, err)
	}

	det, _, _ := Elimination(a) // a is square
	if det.IsZero() {
		return nil, nil, fmt.Errorf("%s: %w", opCramer, matrix.ErrSingular)
	}

	var rec trace.Recorder
	rec.Record(trace.KindStart, labelStart, a)
	rec.Record(trace.KindResult, fmt.Sprintf(labelCramerDet, det), a)

	x := make([]fraction.Fraction, n)
	for j := 0; j < n; j++ {
		aj := a.Clone()
		for i := 0; i < n; i++ {
			_ = aj.Set(i, j, b[i])
		}
		dj, _, _ := Elimination(aj)
		x[j], _ = dj.Div(det) // det ≠ 0
		rec.RecordColumn(trace.KindExpand, fmt.Sprintf(labelCramerReplace, j+1, j+1, dj), aj, j)
		rec.RecordColumn(trace.KindResult, fmt.Sprintf(labelCramerSolve, j+1, dj, det, x[j]), aj, j)
	}

	return x, rec.Steps(), nil
}

// SPDX-License-Identifier: MIT

package determinant

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/trace"
)

const opSarrus = "Sarrus"

const (
	labelSarrusDown = "down diagonals: %s + %s + %s = %s"
	labelSarrusUp   = "up diagonals: %s + %s + %s = %s"
	labelSarrusDet  = "det = %s - %s = %s"
)

// Sarrus computes det(m) of a 3×3 matrix by the rule of Sarrus:
//
//	a(0,0)a(1,1)a(2,2) + a(0,1)a(1,2)a(2,0) + a(0,2)a(1,0)a(2,1)
//	− a(0,2)a(1,1)a(2,0) − a(0,0)a(1,2)a(2,1) − a(0,1)a(1,0)a(2,2)
//
// Steps: Start, one Expand step per diagonal group, Result.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (not 3×3).
func Sarrus(m *matrix.Matrix) (fraction.Fraction, []trace.Step, error) {
	if err := matrix.ValidateSize(m, 3); err != nil {
		return fraction.Zero(), nil, fmt.Errorf("%s: %w", opSarrus, err)
	}
	a := func(i, j int) fraction.Fraction {
		v, _ := m.At(i, j)
		return v
	}
	diag := func(i0, j0, i1, j1, i2, j2 int) fraction.Fraction {
		return a(i0, j0).Mul(a(i1, j1)).Mul(a(i2, j2))
	}

	d1, d2, d3 := diag(0, 0, 1, 1, 2, 2), diag(0, 1, 1, 2, 2, 0), diag(0, 2, 1, 0, 2, 1)
	u1, u2, u3 := diag(0, 2, 1, 1, 2, 0), diag(0, 0, 1, 2, 2, 1), diag(0, 1, 1, 0, 2, 2)
	down := d1.Add(d2).Add(d3)
	up := u1.Add(u2).Add(u3)
	det := down.Sub(up)

	var rec trace.Recorder
	rec.Record(trace.KindStart, labelStart, m)
	rec.Record(trace.KindExpand, fmt.Sprintf(labelSarrusDown, d1, d2, d3, down), m)
	rec.Record(trace.KindExpand, fmt.Sprintf(labelSarrusUp, u1, u2, u3, up), m)
	rec.Record(trace.KindResult, fmt.Sprintf(labelSarrusDet, down, up, det), m)

	return det, rec.Steps(), nil
}

// SPDX-License-Identifier: MIT

// Package determinant - Laplace (cofactor) expansion.
//
// Purpose:
//   - Recursive expansion along one line per level, skipping zero entries.
//   - Bounded up front by a caller-visible order ceiling; recursion depth is
//     at most the order of the input.

package determinant

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/trace"
)

const opCofactor = "Cofactor"

const (
	labelExpand = "expand along %s (%d zeros)"
	labelMinor  = "minor M%d,%d, cofactor sign %s, entry %s"
)

// expander carries the recorder and the fixed line preference through the
// recursion.
type expander struct {
	rec  trace.Recorder
	line Expansion
}

// Cofactor computes det(m) by Laplace expansion.
// Implementation:
//   - Stage 1: validate m square and order ≤ ceiling (ErrSizeLimitExceeded).
//   - Stage 2: order 1 ⇒ the single entry; otherwise choose a line (see
//     Auto, Row, Column), and for each nonzero entry a(i,j) on it add
//     (−1)^(i+j)·a(i,j)·det(M(i,j)).
//
// The 0×0 matrix has determinant 1 (empty product).
//
// Steps: Start; per level an Expand step on the matrix being expanded; per
// nonzero entry a Minor step holding the minor; finally a Result step.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrSizeLimitExceeded.
//
// Complexity: O(n!) in the worst case (no zeros), hence the ceiling.
func Cofactor(m *matrix.Matrix, opts ...Option) (fraction.Fraction, []trace.Step, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquare(m); err != nil {
		return fraction.Zero(), nil, fmt.Errorf("%s: %w", opCofactor, err)
	}
	if m.Rows() > o.maxSize {
		return fraction.Zero(), nil, fmt.Errorf("%s: order %d > %d: %w", opCofactor, m.Rows(), o.maxSize, ErrSizeLimitExceeded)
	}

	x := &expander{line: o.expansion}
	x.rec.Record(trace.KindStart, labelStart, m)

	det := fraction.One()
	if m.Rows() > 0 {
		det = x.expand(m)
	}
	x.rec.Record(trace.KindResult, fmt.Sprintf(labelDet, det), m)

	return det, x.rec.Steps(), nil
}

// expand returns det(m) for a square m of order ≥ 1.
func (x *expander) expand(m *matrix.Matrix) fraction.Fraction {
	n := m.Rows()
	if n == 1 {
		v, _ := m.At(0, 0)
		return v
	}

	line, zeros := x.choose(m)
	x.rec.Record(trace.KindExpand, fmt.Sprintf(labelExpand, line, zeros), m)

	var sum fraction.Fraction
	for k := 0; k < n; k++ {
		i, j := line.index, k
		if line.kind == lineColumn {
			i, j = k, line.index
		}
		a, _ := m.At(i, j)
		if a.IsZero() {
			continue
		}

		sign := "+"
		if (i+j)%2 == 1 {
			sign = "-"
		}
		minor, _ := matrix.Minor(m, i, j) // (i, j) is in range
		x.rec.RecordPivot(trace.KindMinor, fmt.Sprintf(labelMinor, i+1, j+1, sign, a), minor, i, j)

		term := a.Mul(x.expand(minor))
		if sign == "-" {
			term = term.Neg()
		}
		sum = sum.Add(term)
	}

	return sum
}

// choose returns the line to expand m along and its zero count. A fixed Row
// or Column applies while it is inside m; otherwise the Auto rule picks.
func (x *expander) choose(m *matrix.Matrix) (Expansion, int) {
	n := m.Rows()
	if x.line.kind != lineAuto && x.line.index < n {
		return x.line, countZeros(m, x.line)
	}

	best := Expansion{kind: lineColumn, index: 0}
	bestZeros := countZeros(m, best)
	for _, kind := range [...]lineKind{lineColumn, lineRow} {
		for idx := 0; idx < n; idx++ {
			cand := Expansion{kind: kind, index: idx}
			if z := countZeros(m, cand); z > bestZeros {
				best, bestZeros = cand, z
			}
		}
	}

	return best, bestZeros
}

// countZeros counts the zero entries on a row or column of a square m.
func countZeros(m *matrix.Matrix, line Expansion) int {
	zeros := 0
	for k := 0; k < m.Rows(); k++ {
		i, j := line.index, k
		if line.kind == lineColumn {
			i, j = k, line.index
		}
		if v, _ := m.At(i, j); v.IsZero() {
			zeros++
		}
	}

	return zeros
}

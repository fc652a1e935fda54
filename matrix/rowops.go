// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Purpose:
//   - Hold the only code that edits rows in place. Elimination, determinant and
//     inverse all route their swaps, scalings and row additions through here so
//     a single implementation defines the arithmetic of every recorded step.
//
// Determinism:
//   - Pivot search is first-match from the start row downward. Arithmetic is
//     exact, so there is no magnitude-based (partial) pivoting.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/fraction"
)

const (
	opFindPivot    = "FindPivot"
	opSwapRows     = "SwapRows"
	opScaleRow     = "ScaleRow"
	opAddScaledRow = "AddScaledRow"
)

// rowOpErrorf tags a row-operation failure with its row arguments.
func rowOpErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", op, i, j, err)
}

// validRow reports 0 ≤ i < r.
func (m *Matrix) validRow(i int) bool { return i >= 0 && i < m.r }

// FindPivot returns the first row at or below from whose entry in col is
// nonzero. ok is false when no such row exists (including from ≥ Rows).
// Implementation:
//   - Stage 1: validate col; a negative from is clamped to 0.
//   - Stage 2: scan rows from..r-1 top-down, stop at the first nonzero.
//
// Errors:
//   - ErrOutOfRange when col is outside [0, Cols).
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Matrix) FindPivot(from, col int) (row int, ok bool, err error) {
	if col < 0 || col >= m.c {
		return -1, false, rowOpErrorf(opFindPivot, from, col, ErrOutOfRange)
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < m.r; i++ {
		if !m.at(i, col).IsZero() {
			return i, true, nil
		}
	}

	return -1, false, nil
}

// SwapRows exchanges rows i and j in place. i == j is a no-op.
// Complexity: O(c).
func (m *Matrix) SwapRows(i, j int) error {
	if !m.validRow(i) || !m.validRow(j) {
		return rowOpErrorf(opSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ScaleRow multiplies row i by k in place.
// Scaling by zero is allowed here; callers that need an invertible row
// operation must guard against it.
// Complexity: O(c).
func (m *Matrix) ScaleRow(i int, k fraction.Fraction) error {
	if !m.validRow(i) {
		return rowOpErrorf(opScaleRow, i, i, ErrOutOfRange)
	}
	base := i * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] = m.data[base+j].Mul(k)
	}

	return nil
}

// AddScaledRow performs row[dst] += k·row[src] in place.
// Implementation:
//   - Stage 1: validate dst, src and dst != src.
//   - Stage 2: skip entries where row[src] is zero (no change).
//
// Errors:
//   - ErrOutOfRange for invalid indices or dst == src (not an elementary
//     operation: it would scale the row by 1+k).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Matrix) AddScaledRow(dst, src int, k fraction.Fraction) error {
	if !m.validRow(dst) || !m.validRow(src) || dst == src {
		return rowOpErrorf(opAddScaledRow, dst, src, ErrOutOfRange)
	}
	if k.IsZero() {
		return nil
	}
	bd, bs := dst*m.c, src*m.c
	for j := 0; j < m.c; j++ {
		s := m.data[bs+j]
		if s.IsZero() {
			continue
		}
		m.data[bd+j] = m.data[bd+j].Add(k.Mul(s))
	}

	return nil
}

// IsZeroRow reports whether entries [0, upto) of row i are all zero.
// upto is clamped to [0, Cols]; an invalid row reports false.
func (m *Matrix) IsZeroRow(i, upto int) bool {
	if !m.validRow(i) {
		return false
	}
	if upto > m.c {
		upto = m.c
	}
	for j := 0; j < upto; j++ {
		if !m.at(i, j).IsZero() {
			return false
		}
	}

	return true
}

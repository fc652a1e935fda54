// SPDX-License-Identifier: MIT
// Package matrix provides exact operations on Matrix values,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling and the block helpers used to build augmented
// systems. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Notes:
//   - Inputs are never mutated; every result is freshly allocated.
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/fraction"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opAugment   = "Augment"
	opSliceCols = "SliceCols"
	opMinor     = "Minor"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes element-wise out = a + b (sub=false) or a - b (sub=true).
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat walk 0..r*c-1 over both buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Matrix, sub bool, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := &Matrix{r: a.r, c: a.c, data: make([]fraction.Fraction, len(a.data))}
	for k := range a.data {
		if sub {
			out.data[k] = a.data[k].Sub(b.data[k])
		} else {
			out.data[k] = a.data[k].Add(b.data[k])
		}
	}

	return out, nil
}

// Add returns C = A + B.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, false, opAdd) }

// Sub returns C = A - B.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, true, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := a.r, a.c, b.c
	out := &Matrix{r: r, c: c, data: make([]fraction.Fraction, r*c)}

	var i, k, j int
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			aik := a.data[i*n+k]
			if aik.IsZero() {
				continue
			}
			for j = 0; j < c; j++ {
				bkj := b.data[k*c+j]
				if bkj.IsZero() {
					continue
				}
				out.data[i*c+j] = out.data[i*c+j].Add(aik.Mul(bkj))
			}
		}
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := &Matrix{r: m.c, c: m.r, data: make([]fraction.Fraction, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Scale returns alpha·m.
func Scale(m *Matrix, alpha fraction.Fraction) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Matrix{r: m.r, c: m.c, data: make([]fraction.Fraction, len(m.data))}
	for k, v := range m.data {
		out.data[k] = v.Mul(alpha)
	}

	return out, nil
}

// MatVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
func MatVec(m *Matrix, x []fraction.Fraction) ([]fraction.Fraction, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]fraction.Fraction, m.r)
	for i := 0; i < m.r; i++ {
		var acc fraction.Fraction
		for j := 0; j < m.c; j++ {
			acc = acc.Add(m.at(i, j).Mul(x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// Augment returns the horizontal concatenation [A | B].
// Both operands must have the same number of rows.
//
// Complexity: O(r*(ca+cb)).
func Augment(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}
	c := a.c + b.c
	out := &Matrix{r: a.r, c: c, data: make([]fraction.Fraction, a.r*c)}
	for i := 0; i < a.r; i++ {
		copy(out.data[i*c:i*c+a.c], a.data[i*a.c:(i+1)*a.c])
		copy(out.data[i*c+a.c:(i+1)*c], b.data[i*b.c:(i+1)*b.c])
	}

	return out, nil
}

// AugmentVec returns [A | b] for a constant vector b (len(b) == Rows).
func AugmentVec(a *Matrix, b []fraction.Fraction) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	col := &Matrix{r: a.r, c: 1, data: append([]fraction.Fraction(nil), b...)}

	return Augment(a, col)
}

// SliceCols copies the column window [c0, c1) into a new matrix.
// Errors: ErrOutOfRange unless 0 ≤ c0 ≤ c1 ≤ Cols.
func SliceCols(m *Matrix, c0, c1 int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSliceCols, err)
	}
	if c0 < 0 || c1 < c0 || c1 > m.c {
		return nil, matrixErrorf(opSliceCols, ErrOutOfRange)
	}
	w := c1 - c0
	out := &Matrix{r: m.r, c: w, data: make([]fraction.Fraction, m.r*w)}
	for i := 0; i < m.r; i++ {
		copy(out.data[i*w:(i+1)*w], m.data[i*m.c+c0:i*m.c+c1])
	}

	return out, nil
}

// Minor returns m with row i and column j removed.
// Errors: ErrNilMatrix, ErrOutOfRange.
func Minor(m *Matrix, i, j int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if !m.inBounds(i, j) {
		return nil, matrixErrorf(opMinor, ErrOutOfRange)
	}
	out := &Matrix{r: m.r - 1, c: m.c - 1, data: make([]fraction.Fraction, 0, (m.r-1)*(m.c-1))}
	for r := 0; r < m.r; r++ {
		if r == i {
			continue
		}
		for c := 0; c < m.c; c++ {
			if c == j {
				continue
			}
			out.data = append(out.data, m.at(r, c))
		}
	}

	return out, nil
}

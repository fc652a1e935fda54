// SPDX-License-Identifier: MIT

// Package matrix - row-major storage of exact fractions & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Make Clone a true snapshot: no slice is shared between a matrix and its clone.
//
// Complexity quicksheet:
//   - New/Zeros/Identity: O(r*c); At/Set: O(1); Clone/Equal/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlalg/fraction"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// indexErrorf wraps an error with a uniform Matrix context and callsite indices.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a rectangular r×c matrix of fraction.Fraction.
//   - r,c hold dimensions (either may be 0).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Fractions are immutable, so a copied data slice is a full deep copy: no
// later edit of one matrix can be observed through another.
type Matrix struct {
	r, c int                 // row and column counts (>= 0)
	data []fraction.Fraction // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New builds a matrix from rows, copying them.
// Implementation:
//   - Stage 1: take c from the first row (0 rows ⇒ 0×0).
//   - Stage 2: verify every row has length c; else ErrDimensionMismatch.
//   - Stage 3: copy into the flat buffer.
//
// Errors:
//   - ErrDimensionMismatch (ragged rows), wrapped with the offending row index.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows [][]fraction.Fraction) (*Matrix, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	data := make([]fraction.Fraction, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("New: row %d has %d entries, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		data = append(data, row...)
	}

	return &Matrix{r: r, c: c, data: data}, nil
}

// FromInts builds a matrix of integer entries (each read as v/1).
func FromInts[T constraints.Integer](rows [][]T) (*Matrix, error) {
	conv := make([][]fraction.Fraction, len(rows))
	for i, row := range rows {
		conv[i] = make([]fraction.Fraction, len(row))
		for j, v := range row {
			conv[i][j] = fraction.FromInt(v)
		}
	}

	return New(conv)
}

// Parse builds a matrix from fraction tokens (see fraction.Parse).
// The first failing token aborts; its error is wrapped with its coordinates
// so errors.Is(err, fraction.ErrParse) still matches.
func Parse(rows [][]string) (*Matrix, error) {
	conv := make([][]fraction.Fraction, len(rows))
	for i, row := range rows {
		conv[i] = make([]fraction.Fraction, len(row))
		for j, tok := range row {
			f, err := fraction.Parse(tok)
			if err != nil {
				return nil, fmt.Errorf("Parse(%d,%d): %w", i, j, err)
			}
			conv[i][j] = f
		}
	}

	return New(conv)
}

// Zeros returns an r×c zero matrix; negative dimensions yield ErrBadShape.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Matrix{r: rows, c: cols, data: make([]fraction.Fraction, rows*cols)}, nil
}

// Identity returns I_n.
func Identity(n int) (*Matrix, error) {
	m, err := Zeros(n, n)
	if err != nil {
		return nil, err
	}
	one := fraction.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// IsSquare reports Rows == Cols.
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// inBounds reports 0 ≤ row < r and 0 ≤ col < c.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// at is the unchecked accessor used by kernels after validation.
func (m *Matrix) at(row, col int) fraction.Fraction { return m.data[row*m.c+col] }

// set is the unchecked writer used by kernels after validation.
func (m *Matrix) set(row, col int, v fraction.Fraction) { m.data[row*m.c+col] = v }

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (fraction.Fraction, error) {
	if !m.inBounds(row, col) {
		return fraction.Fraction{}, indexErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.at(row, col), nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v fraction.Fraction) error {
	if !m.inBounds(row, col) {
		return indexErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.set(row, col, v)

	return nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]fraction.Fraction, error) {
	if i < 0 || i >= m.r {
		return nil, indexErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]fraction.Fraction, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) ([]fraction.Fraction, error) {
	if j < 0 || j >= m.c {
		return nil, indexErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]fraction.Fraction, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.at(i, j)
	}

	return out, nil
}

// ToRows returns the entries as a freshly allocated [][]Fraction.
func (m *Matrix) ToRows() [][]fraction.Fraction {
	out := make([][]fraction.Fraction, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]fraction.Fraction, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns an independent copy: no backing storage is shared.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	cp := make([]fraction.Fraction, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// Equal reports identical shape and exactly equal entries.
// A nil matrix equals only another nil matrix.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k]) {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[1, -1/2]\n[0, 3]\n".
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.at(i, j).String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// SPDX-License-Identifier: MIT

// Package elimination - solution-space classification of a drained engine.
//
// Purpose:
//   - Turn a terminal reduced matrix and its pivot outcomes into a closed
//     tagged result: Inconsistent | Unique | Infinite.
//   - Build the particular solution and null-space basis exactly.
//
// Notes:
//   - Gauss-Jordan leaves RREF, where every bound variable reads directly off
//     its pivot row. Gauss leaves row-echelon form with unit pivots; the same
//     back-substitution below covers both and collapses to the direct read-off
//     on RREF input.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/trace"
)

const opClassify = "Classify"

// ClassKind tags the variant of a Classification.
type ClassKind int

const (
	KindInconsistent ClassKind = iota
	KindUnique
	KindInfinite
)

// String implements fmt.Stringer.
func (k ClassKind) String() string {
	switch k {
	case KindInconsistent:
		return "inconsistent"
	case KindUnique:
		return "unique"
	case KindInfinite:
		return "infinite"
	default:
		return fmt.Sprintf("ClassKind(%d)", int(k))
	}
}

// Classification is the closed set {Inconsistent, Unique, Infinite}.
// The unexported method seals it to this package; Accept with a Visitor
// makes handling all three variants a compile-time requirement.
type Classification interface {
	Kind() ClassKind
	Accept(v Visitor)
	isClassification()
}

// Visitor handles every Classification variant.
type Visitor interface {
	VisitInconsistent(Inconsistent)
	VisitUnique(Unique)
	VisitInfinite(Infinite)
}

// Inconsistent: some row reads 0 = c with c ≠ 0.
type Inconsistent struct {
	Row int // first reduced row witnessing the contradiction
}

// Unique: exactly one solution.
type Unique struct {
	Solution []fraction.Fraction // x_0..x_{n-1}
}

// Infinite: Particular + span(Basis).
type Infinite struct {
	Particular  []fraction.Fraction   // free variables set to 0
	FreeColumns []int                 // ascending indices of pivot-less columns
	Basis       [][]fraction.Fraction // one null-space vector per free column, same order
}

func (Inconsistent) Kind() ClassKind { return KindInconsistent }
func (Unique) Kind() ClassKind       { return KindUnique }
func (Infinite) Kind() ClassKind     { return KindInfinite }

func (c Inconsistent) Accept(v Visitor) { v.VisitInconsistent(c) }
func (c Unique) Accept(v Visitor)       { v.VisitUnique(c) }
func (c Infinite) Accept(v Visitor)     { v.VisitInfinite(c) }

func (Inconsistent) isClassification() {}
func (Unique) isClassification()       {}
func (Infinite) isClassification()     {}

// Classify reads a terminated engine.
// Implementation:
//   - Stage 1: require e terminated (ErrNotTerminated) and at least the
//     constant column (matrix.ErrDimensionMismatch).
//   - Stage 2: any row with zero coefficients and a nonzero constant ⇒ Inconsistent.
//   - Stage 3: pivots == unknowns ⇒ Unique; otherwise Infinite with
//     FreeColumns = columns without a pivot (processed as NoPivot, or never
//     reached because the rows ran out).
//   - Stage 4: back-substitute bound variables from the last pivot upward:
//     x_p = rhs_i − Σ_{j>p} a(i,j)·x_j, with rhs = constants for the
//     particular solution and rhs = 0, x_f = 1 for each basis vector.
//
// Determinism:
//   - Pure read of engine state; the engine is not modified.
//
// Complexity:
//   - O(r*n) for the consistency scan, O(n²·(1+free)) for substitution.
func Classify(e *Engine) (Classification, error) {
	if !e.done {
		return nil, fmt.Errorf("%s: %w", opClassify, ErrNotTerminated)
	}
	n := e.unknowns()
	if n < 0 {
		return nil, fmt.Errorf("%s: no constant column: %w", opClassify, matrix.ErrDimensionMismatch)
	}
	m := e.m

	for i := 0; i < m.Rows(); i++ {
		b, _ := m.At(i, n)
		if !b.IsZero() && m.IsZeroRow(i, n) {
			return Inconsistent{Row: i}, nil
		}
	}

	// pivotRow[col] = row of the pivot in col, or NoPivot.
	pivotRow := make([]int, n)
	for j := range pivotRow {
		pivotRow[j] = NoPivot
	}
	copy(pivotRow, e.pivots)

	var free []int
	for j, p := range pivotRow {
		if p == NoPivot {
			free = append(free, j)
		}
	}

	particular := substitute(m, pivotRow, n, -1)
	if len(free) == 0 {
		return Unique{Solution: particular}, nil
	}

	basis := make([][]fraction.Fraction, len(free))
	for k, f := range free {
		basis[k] = substitute(m, pivotRow, n, f)
	}

	return Infinite{Particular: particular, FreeColumns: free, Basis: basis}, nil
}

// substitute solves for the bound variables of a row-echelon matrix with
// unit pivots. freeOne < 0 builds the particular solution (free variables 0,
// right-hand side = constant column); freeOne ≥ 0 builds the homogeneous
// solution with x_freeOne = 1 and every other free variable 0.
func substitute(m *matrix.Matrix, pivotRow []int, n, freeOne int) []fraction.Fraction {
	x := make([]fraction.Fraction, n)
	if freeOne >= 0 {
		x[freeOne] = fraction.One()
	}
	for p := n - 1; p >= 0; p-- {
		i := pivotRow[p]
		if i == NoPivot {
			continue
		}
		var acc fraction.Fraction
		if freeOne < 0 {
			acc, _ = m.At(i, n)
		}
		for j := p + 1; j < n; j++ {
			if x[j].IsZero() {
				continue
			}
			a, _ := m.At(i, j)
			acc = acc.Sub(a.Mul(x[j]))
		}
		x[p] = acc
	}

	return x
}

// Solve is New + Run + Classify in one call; it returns the classification
// and the full step log.
func Solve(aug *matrix.Matrix, opts ...Option) (Classification, []trace.Step, error) {
	e := New(aug, opts...)
	e.Run()
	cls, err := Classify(e)
	if err != nil {
		return nil, nil, err
	}

	return cls, e.Steps(), nil
}

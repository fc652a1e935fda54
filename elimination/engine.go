// SPDX-License-Identifier: MIT

// Package elimination - single-step reduction state machine.
//
// Purpose:
//   - Reduce a private copy of an augmented matrix, one elementary row
//     operation per Step call, recording an immutable snapshot for each.
//   - Keep the state machine total: any rectangular input (including 0×0)
//     terminates after O(rows × cols) calls.
//
// States:
//   - Eliminating: Step performs one row operation (or records a pivot-less
//     column) and returns its snapshot.
//   - Terminated: Step returns (zero Step, false) forever.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/trace"
)

// NoPivot marks a processed column that has no pivot (a free column).
const NoPivot = -1

// Display labels. Algorithms never read them back.
const (
	labelStart     = "initial matrix"
	labelComplete  = "elimination complete"
	labelNoPivot   = "no pivot in column %d"
	labelSwap      = "R%d ↔ R%d"
	labelNormalize = "R%d ← (%s)·R%d"
	labelEliminate = "R%d ← R%d + (%s)·R%d"
)

// Engine is the Gauss / Gauss-Jordan state machine.
//
// Fields:
//   - m: live matrix, owned; never aliased by any Step.
//   - row: row cursor, the row the next pivot will occupy.
//   - pivots: one entry per processed column, the pivot row or NoPivot.
//     len(pivots) is the column cursor.
type Engine struct {
	mode   Mode
	m      *matrix.Matrix
	row    int
	pivots []int
	done   bool
	rec    trace.Recorder
}

// New copies m and records the initial snapshot. A nil m is treated as the
// empty 0×0 matrix (the engine terminates on the first Step).
//
// The last column of m is the constant column: only columns 0..Cols-2 are
// searched for pivots.
//
// Complexity: O(r*c) for the copy and the first snapshot.
func New(m *matrix.Matrix, opts ...Option) *Engine {
	o := gatherOptions(opts...)

	var live *matrix.Matrix
	if m == nil {
		live, _ = matrix.Zeros(0, 0)
	} else {
		live = m.Clone()
	}

	e := &Engine{mode: o.mode, m: live}
	e.rec.Record(trace.KindStart, labelStart, e.m)

	return e
}

// mustRowOp panics if a row operation failed. The engine only issues
// operations on rows and columns it has bounds-checked, so a failure here
// is a bug in this package, never a user error.
func mustRowOp(err error) {
	if err != nil {
		panic(fmt.Sprintf("elimination: row operation out of range: %v", err))
	}
}

// unknowns is the number of coefficient columns (the constant column excluded).
func (e *Engine) unknowns() int { return e.m.Cols() - 1 }

// Step advances the machine by one observable operation.
// Implementation:
//   - Stage 1: terminated ⇒ (zero, false).
//   - Stage 2: c = len(pivots); if c ≥ unknowns or row ≥ Rows, record the
//     completion marker and terminate.
//   - Stage 3: first nonzero in column c at or below row:
//     none ⇒ record column c as NoPivot and return that step;
//     below row ⇒ swap into place and return (cursors unchanged);
//     at row but ≠ 1 ⇒ scale the row by the reciprocal and return;
//     at row and == 1 ⇒ clear ONE remaining nonzero of column c (all other
//     rows for Gauss-Jordan, rows below for Gauss) and return; when nothing
//     is left to clear, record the pivot, advance row and column, and loop
//     to Stage 2 without returning.
//
// Returns:
//   - the new Step and true, or a zero Step and false once terminated.
//
// Determinism:
//   - Same input and mode ⇒ identical Step sequence.
//
// Complexity:
//   - O(c) arithmetic per call plus an O(r*c) snapshot.
func (e *Engine) Step() (trace.Step, bool) {
	if e.done {
		return trace.Step{}, false
	}

	for {
		c, r := len(e.pivots), e.row
		if c >= e.unknowns() || r >= e.m.Rows() {
			e.done = true
			return e.rec.Record(trace.KindComplete, labelComplete, e.m), true
		}

		p, ok, err := e.m.FindPivot(r, c)
		mustRowOp(err)
		if !ok {
			e.pivots = append(e.pivots, NoPivot)
			return e.rec.RecordColumn(trace.KindNoPivot, fmt.Sprintf(labelNoPivot, c+1), e.m, c), true
		}

		if p != r {
			mustRowOp(e.m.SwapRows(r, p))
			return e.rec.RecordPivot(trace.KindSwap, fmt.Sprintf(labelSwap, r+1, p+1), e.m, r, c), true
		}

		piv, err := e.m.At(r, c)
		mustRowOp(err)
		if !piv.IsOne() {
			inv, _ := piv.Reciprocal() // piv is nonzero by FindPivot
			mustRowOp(e.m.ScaleRow(r, inv))
			return e.rec.RecordPivot(trace.KindNormalize, fmt.Sprintf(labelNormalize, r+1, inv, r+1), e.m, r, c), true
		}

		if target, factor, ok := e.nextTarget(r, c); ok {
			k := factor.Neg()
			mustRowOp(e.m.AddScaledRow(target, r, k))
			return e.rec.RecordPivot(trace.KindEliminate, fmt.Sprintf(labelEliminate, target+1, target+1, k, r+1), e.m, r, c), true
		}

		// Column c is finished: record its pivot and move both cursors.
		e.pivots = append(e.pivots, r)
		e.row++
	}
}

// nextTarget returns the first row (other than r) that still has a nonzero
// entry in column c, together with that entry. Gauss-Jordan scans all rows
// top-down; Gauss scans only rows below r.
func (e *Engine) nextTarget(r, c int) (int, fraction.Fraction, bool) {
	start := 0
	if e.mode == Gauss {
		start = r + 1
	}
	for i := start; i < e.m.Rows(); i++ {
		if i == r {
			continue
		}
		v, err := e.m.At(i, c)
		mustRowOp(err)
		if !v.IsZero() {
			return i, v, true
		}
	}

	return -1, fraction.Fraction{}, false
}

// Run drains the engine and returns the number of steps it produced.
func (e *Engine) Run() int {
	n := 0
	for {
		if _, ok := e.Step(); !ok {
			return n
		}
		n++
	}
}

// IsTerminated reports whether Step will produce nothing further.
func (e *Engine) IsTerminated() bool { return e.done }

// Mode returns the reduction mode.
func (e *Engine) Mode() Mode { return e.mode }

// Steps returns the step log so far, oldest first (a copy of the log).
func (e *Engine) Steps() []trace.Step { return e.rec.Steps() }

// Matrix returns a copy of the live matrix.
func (e *Engine) Matrix() *matrix.Matrix { return e.m.Clone() }

// PivotColumns returns a copy of the per-column outcomes processed so far:
// entry j is the pivot row of column j, or NoPivot.
func (e *Engine) PivotColumns() []int {
	out := make([]int, len(e.pivots))
	copy(out, e.pivots)

	return out
}

// Rank returns the number of pivots found so far.
func (e *Engine) Rank() int {
	n := 0
	for _, p := range e.pivots {
		if p != NoPivot {
			n++
		}
	}

	return n
}

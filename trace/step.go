// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
)

// Kind classifies a Step.
//
//   - KindStart, KindComplete: engine lifecycle markers.
//   - KindNoPivot, KindSwap, KindNormalize, KindEliminate: the four atomic
//     edits of elimination (pivot search failure, row swap, scaling a pivot
//     row to 1, clearing one entry of a pivot column).
//   - KindExpand, KindMinor, KindResult: informational steps emitted by the
//     determinant and inverse computations.
type Kind int

const (
	KindStart Kind = iota
	KindNoPivot
	KindSwap
	KindNormalize
	KindEliminate
	KindComplete
	KindExpand
	KindMinor
	KindResult
)

var kindNames = [...]string{
	KindStart:     "start",
	KindNoPivot:   "no-pivot",
	KindSwap:      "swap",
	KindNormalize: "normalize",
	KindEliminate: "eliminate",
	KindComplete:  "complete",
	KindExpand:    "expand",
	KindMinor:     "minor",
	KindResult:    "result",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// IsRowOperation reports whether k edits the matrix (swap, normalize, eliminate).
func (k Kind) IsRowOperation() bool {
	return k == KindSwap || k == KindNormalize || k == KindEliminate
}

// Step is an immutable snapshot: kind, display label, a private deep copy of
// the matrix at that instant, and an optional focus (pivot row and/or column).
type Step struct {
	kind   Kind
	label  string
	mat    *matrix.Matrix // owned; never handed out directly
	row    int
	col    int
	hasRow bool
	hasCol bool
}

// NewStep snapshots m (deep copy) with no pivot focus.
// A nil m records an empty snapshot.
func NewStep(kind Kind, label string, m *matrix.Matrix) Step {
	s := Step{kind: kind, label: label}
	if m != nil {
		s.mat = m.Clone()
	}

	return s
}

// WithPivot returns a copy of s focused on (row, col).
func (s Step) WithPivot(row, col int) Step {
	s.row, s.col = row, col
	s.hasRow, s.hasCol = true, true

	return s
}

// WithColumn returns a copy of s focused on column col only.
func (s Step) WithColumn(col int) Step {
	s.col, s.hasCol = col, true

	return s
}

// Kind returns the step kind.
func (s Step) Kind() Kind { return s.kind }

// Label returns the display label.
func (s Step) Label() string { return s.label }

// Matrix returns an independent copy of the snapshot (nil if none was taken).
// Complexity: O(r*c).
func (s Step) Matrix() *matrix.Matrix {
	if s.mat == nil {
		return nil
	}

	return s.mat.Clone()
}

// Pivot returns the (row, col) focus; ok is false unless both are set.
func (s Step) Pivot() (row, col int, ok bool) {
	if !s.hasRow || !s.hasCol {
		return -1, -1, false
	}

	return s.row, s.col, true
}

// Column returns the focused column, if any.
func (s Step) Column() (col int, ok bool) {
	if !s.hasCol {
		return -1, false
	}

	return s.col, true
}

// String renders "kind: label".
func (s Step) String() string { return s.kind.String() + ": " + s.label }

// SPDX-License-Identifier: MIT

// Package determinant - forward-only elimination pass.
//
// Purpose:
//   - Shared kernel for Elimination (determinant) and Echelon (rank, parity).
//   - Rows are never normalised: each pivot keeps its value so the product of
//     pivots, signed by swap parity, is the determinant.

package determinant

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/trace"
)

const opEchelon = "Echelon"

// Display labels. Algorithms never read them back.
const (
	labelStart     = "initial matrix"
	labelNoPivot   = "no pivot in column %d"
	labelSwap      = "R%d ↔ R%d"
	labelEliminate = "R%d ← R%d + (%s)·R%d"
	labelEchelon   = "row echelon form, rank %d"
	labelDet       = "det = %s"
)

// EchelonResult summarises a forward pass.
type EchelonResult struct {
	Rank         int               // number of pivots
	PivotColumns []int             // column of each pivot, ascending
	Swaps        int               // row exchanges performed
	Determinant  fraction.Fraction // signed pivot product; 0 unless square and full rank
	Matrix       *matrix.Matrix    // row echelon form (pivots not normalised)
}

// forwardPass reduces a private copy of m below each pivot.
// Implementation:
//   - Stage 1: per column c, first nonzero at or below the row cursor.
//   - Stage 2: none ⇒ record NoPivot; with stopOnMissing the pass ends
//     (the determinant is already known to be 0), otherwise move to c+1
//     keeping the row cursor.
//   - Stage 3: swap it up if needed (parity flips), then clear every
//     nonzero below with dst += (−a/p)·pivotRow, one step per row.
//
// complete reports whether the pass ran to the end (false on early stop).
//
// Complexity:
//   - O(r·c·min(r,c)) arithmetic plus one O(r·c) snapshot per step.
func forwardPass(m *matrix.Matrix, stopOnMissing bool, rec *trace.Recorder) (res EchelonResult, complete bool) {
	work := m.Clone()
	rec.Record(trace.KindStart, labelStart, work)

	prod := fraction.One()
	row := 0
	for c := 0; c < work.Cols() && row < work.Rows(); c++ {
		p, ok, _ := work.FindPivot(row, c) // c is in range
		if !ok {
			rec.RecordColumn(trace.KindNoPivot, fmt.Sprintf(labelNoPivot, c+1), work, c)
			if stopOnMissing {
				res.Matrix = work
				return res, false
			}
			continue
		}
		if p != row {
			_ = work.SwapRows(row, p)
			res.Swaps++
			rec.RecordPivot(trace.KindSwap, fmt.Sprintf(labelSwap, row+1, p+1), work, row, c)
		}

		piv, _ := work.At(row, c)
		for i := row + 1; i < work.Rows(); i++ {
			v, _ := work.At(i, c)
			if v.IsZero() {
				continue
			}
			q, _ := v.Div(piv) // piv ≠ 0 by FindPivot
			k := q.Neg()
			_ = work.AddScaledRow(i, row, k)
			rec.RecordPivot(trace.KindEliminate, fmt.Sprintf(labelEliminate, i+1, i+1, k, row+1), work, row, c)
		}

		res.PivotColumns = append(res.PivotColumns, c)
		res.Rank++
		prod = prod.Mul(piv)
		row++
	}

	res.Matrix = work
	if work.IsSquare() && res.Rank == work.Rows() {
		if res.Swaps%2 == 1 {
			prod = prod.Neg()
		}
		res.Determinant = prod
	}

	return res, true
}

// Echelon runs the forward pass to the end on any rectangular matrix,
// continuing past pivot-less columns, and reports rank, pivot columns, swap
// count and (for square input) the determinant.
//
// Steps: Start, one step per swap / cleared entry / pivot-less column, then a
// Complete step holding the echelon form.
//
// Errors: matrix.ErrNilMatrix.
func Echelon(m *matrix.Matrix) (EchelonResult, []trace.Step, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return EchelonResult{}, nil, fmt.Errorf("%s: %w", opEchelon, err)
	}
	var rec trace.Recorder
	res, _ := forwardPass(m, false, &rec)
	rec.Record(trace.KindComplete, fmt.Sprintf(labelEchelon, res.Rank), res.Matrix)

	return res, rec.Steps(), nil
}

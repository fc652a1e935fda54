// Package inverse inverts square fraction matrices exactly and answers the
// cheaper question "is this matrix invertible?".
//
// Invert reduces [A | I] with an elimination.Engine in Gauss-Jordan mode and
// returns the right half once the left half is the identity, together with
// every step of the reduction. If some column of A has no pivot the call
// fails with matrix.ErrSingular and returns nothing else: there is no partial
// inverse.
//
// CheckInvertible runs the forward-only pass of determinant.Echelon (no
// normalisation, no identity block) and reports invertibility, rank, pivot
// columns and the determinant.
//
//	inv, steps, err := inverse.Invert(a)
//	if errors.Is(err, matrix.ErrSingular) {
//	    chk, _ := inverse.CheckInvertible(a) // chk.Rank < a.Rows()
//	}
package inverse

// Package determinant computes exact determinants of square fraction matrices
// by three independent methods, each returning the value together with a
// playback log of trace.Step snapshots.
//
// 🚀 What is here?
//
//	Elimination  forward-only reduction, no normalisation; the result is the
//	             product of the pivots with the sign flipped once per swap.
//	Cofactor     Laplace expansion along the line with the most zeros,
//	             bounded by a size ceiling (WithMaxCofactorSize).
//	Sarrus       the six-term closed form, 3×3 only.
//
// Beyond determinants the package offers Echelon (the same forward pass
// continued past pivot-less columns, reporting rank and swap parity) and
// Cramer (solving A·x = b from determinant ratios).
//
// All methods agree exactly on every input inside the cofactor ceiling.
//
// Errors:
//
//	matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square, wrong size
//	for Sarrus, wrong length of b for Cramer), ErrSizeLimitExceeded (Cofactor
//	above the ceiling), matrix.ErrSingular (Cramer with det(A) = 0).
//
// Inputs are never mutated; every function works on a private copy.
package determinant

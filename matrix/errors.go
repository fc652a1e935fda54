// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the elimination, determinant and inverse packages. All
// algorithms MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operation
// facades wrap with matrixErrorf(op, ErrX); callers still use errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions) or empty where a non-empty matrix is required.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and row operations MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates unequal row lengths at construction,
	// incompatible operand shapes, or a non-square input where squareness is
	// required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when an inverse (or a Cramer solve) is requested
	// for a matrix with no inverse.
	ErrSingular = errors.New("matrix: singular matrix")
)

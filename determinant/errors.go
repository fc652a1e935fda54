// SPDX-License-Identifier: MIT
// Package determinant: sentinel errors. Match via errors.Is.

package determinant

import "errors"

var (
	// ErrSizeLimitExceeded is returned by Cofactor when the matrix order is
	// above the configured ceiling (see WithMaxCofactorSize).
	ErrSizeLimitExceeded = errors.New("determinant: size limit exceeded")
)

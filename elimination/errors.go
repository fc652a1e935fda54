// SPDX-License-Identifier: MIT
// Package elimination: sentinel errors. Match via errors.Is.

package elimination

import "errors"

var (
	// ErrNotTerminated is returned by Classify when the engine still has
	// steps to run. Draining is the caller's job (Run or repeated Step).
	ErrNotTerminated = errors.New("elimination: engine not terminated")
)

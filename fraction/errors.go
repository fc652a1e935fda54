// SPDX-License-Identifier: MIT
// Package fraction: sentinel errors.
// Callers MUST match these via errors.Is; messages are prefixed "fraction: ".

package fraction

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned when a token does not match [-]digits[/digits].
	ErrParse = errors.New("fraction: malformed token")

	// ErrDivisionByZero is returned for a zero denominator or a division by a
	// zero-valued fraction.
	ErrDivisionByZero = errors.New("fraction: division by zero")
)

// ParseError carries the offending substring of a rejected token.
// It unwraps to ErrParse.
type ParseError struct {
	Token string // the substring that failed the grammar
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", ErrParse, e.Token)
}

// Unwrap exposes ErrParse to errors.Is.
func (e *ParseError) Unwrap() error { return ErrParse }

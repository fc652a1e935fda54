// SPDX-License-Identifier: MIT

// Package fraction implements the exact rational scalar used by every other
// lvlalg package.
//
// What & Why:
//
//	Fraction is an immutable, arbitrary-precision rational number. Every
//	constructor and every arithmetic result is reduced to lowest terms with a
//	strictly positive denominator, so two equal values always have identical
//	numerator/denominator pairs. Elimination over Fraction is exact: no
//	epsilon, no rounding, no pivoting for stability.
//
// Tokens:
//
//	Parse accepts "[-]digits" and "[-]digits/digits" (surrounding whitespace is
//	ignored). Anything else fails with *ParseError, which matches ErrParse via
//	errors.Is. A zero denominator fails with ErrDivisionByZero.
//
// Integer operands:
//
//	New, FromInt accept any Go integer type (constraints.Integer); the integer
//	is treated as a fraction with denominator 1.
//
// Complexity:
//
//	Arithmetic costs are those of math/big on the operand sizes; results are
//	normalised by big.Rat (gcd on every operation).
package fraction

// SPDX-License-Identifier: MIT

// Package determinant: functional configuration for Cofactor.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package determinant

import "fmt"

// DefaultMaxCofactorSize is the largest order Cofactor expands by default.
// Laplace expansion is factorial in the order; 8×8 is already ~10⁵ minors.
const DefaultMaxCofactorSize = 8

const (
	panicMaxSizeInvalid   = "determinant: WithMaxCofactorSize: n must be ≥ 1"
	panicLineIndexInvalid = "determinant: expansion line index must be ≥ 0"
)

type lineKind int

const (
	lineAuto lineKind = iota
	lineRow
	lineColumn
)

// Expansion selects the line Cofactor expands along at every level.
// The zero value is Auto.
type Expansion struct {
	kind  lineKind
	index int
}

// Auto picks, at every level, the line with the most zero entries. Columns
// are scanned before rows, each in ascending index; a later line wins only
// with strictly more zeros, so ties go to columns and then to the lowest index.
func Auto() Expansion { return Expansion{} }

// Row expands along row i (0-based). Minors too small to have row i fall
// back to Auto. Panics if i < 0.
func Row(i int) Expansion {
	if i < 0 {
		panic(panicLineIndexInvalid)
	}

	return Expansion{kind: lineRow, index: i}
}

// Column expands along column j (0-based). Minors too small to have column j
// fall back to Auto. Panics if j < 0.
func Column(j int) Expansion {
	if j < 0 {
		panic(panicLineIndexInvalid)
	}

	return Expansion{kind: lineColumn, index: j}
}

// String implements fmt.Stringer.
func (e Expansion) String() string {
	switch e.kind {
	case lineRow:
		return fmt.Sprintf("row %d", e.index+1)
	case lineColumn:
		return fmt.Sprintf("column %d", e.index+1)
	default:
		return "auto"
	}
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxSize   int       // DefaultMaxCofactorSize
	expansion Expansion // Auto
}

// WithMaxCofactorSize sets the largest order Cofactor accepts.
// Panics if n < 1.
func WithMaxCofactorSize(n int) Option {
	if n < 1 {
		panic(panicMaxSizeInvalid)
	}

	return func(o *Options) { o.maxSize = n }
}

// WithExpansion fixes the expansion line (default Auto).
func WithExpansion(e Expansion) Option {
	return func(o *Options) { o.expansion = e }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{maxSize: DefaultMaxCofactorSize}
	for _, set := range user {
		set(&o)
	}

	return o
}

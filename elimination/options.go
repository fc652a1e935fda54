// SPDX-License-Identifier: MIT

// Package elimination: functional configuration for Engine.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package elimination

import "fmt"

// Mode selects which rows are cleared around each pivot.
type Mode int

const (
	// GaussJordan clears every other row in the pivot column (RREF).
	GaussJordan Mode = iota

	// Gauss clears only rows below the pivot (row-echelon form with unit pivots).
	Gauss
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case GaussJordan:
		return "gauss-jordan"
	case Gauss:
		return "gauss"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// DefaultMode is the reduction performed when no option is given.
const DefaultMode = GaussJordan

const panicModeInvalid = "elimination: WithMode: unknown mode"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	mode Mode // DefaultMode
}

// WithMode selects the reduction mode; it panics on an unknown Mode.
func WithMode(m Mode) Option {
	if m != GaussJordan && m != Gauss {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{mode: DefaultMode}
	for _, set := range user {
		set(&o)
	}

	return o
}

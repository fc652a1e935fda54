// Package trace records the step-by-step history of a computation as
// immutable matrix snapshots.
//
// Every Step owns an independent deep copy of the matrix it shows, and its
// accessor hands out a further copy, so neither the producing engine nor the
// caller can change a Step after it was recorded. Steps are append-only and
// carry no back-reference to the engine that produced them.
//
// The label of a Step is for display only. Algorithms drive decisions from
// engine state and from Step.Kind, never from label text.
package trace

// Package lvlalg is an exact-rational linear-algebra engine built for
// step-by-step playback: every row operation, cofactor minor and inverse
// block it computes is recorded as an immutable snapshot a UI can replay.
//
// 🚀 What is lvlalg?
//
//	A small, deterministic library of exact algorithms over big rationals:
//		• Fractions: arbitrary-precision, always in lowest terms
//		• Matrices: rectangular containers plus the shared row operations
//		• Elimination: Gauss and Gauss-Jordan, one row operation per Step
//		• Classification: unique / infinitely many / no solutions, with the
//		  particular solution and a null-space basis
//		• Determinants: elimination, Laplace cofactor expansion, Sarrus
//		• Inverses: Gauss-Jordan on [A | I], plus a cheap invertibility check
//
// ✨ Why choose lvlalg?
//
//   - Exact: no floating point anywhere in the algorithms
//   - Replayable: every Step owns a deep copy of its matrix
//   - Deterministic: same input, same Step sequence, every run
//   - Bounded: cofactor expansion refuses inputs above a size ceiling
//
// Under the hood, everything is organized under these subpackages:
//
//	fraction/    Fraction: exact rational value type and token parser
//	matrix/      Matrix, row operations, exact arithmetic, gonum bridge
//	trace/       Step snapshots and the append-only Recorder
//	elimination/ the single-step Engine and Classify
//	determinant/ Elimination, Cofactor, Sarrus, Echelon, Cramer
//	inverse/     Invert and CheckInvertible
//
// Quick example:
//
//	aug, _ := matrix.FromInts([][]int{{1, 1, 5}, {1, 1, 3}})
//	cls, steps, _ := elimination.Solve(aug)
//	// cls.Kind() == elimination.KindInconsistent, len(steps) == 4
//
// See examples/ for runnable programs.
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg

// Package elimination runs Gauss and Gauss-Jordan reduction one elementary
// row operation at a time and classifies the solution space of the result.
//
// 🚀 What is here?
//
//	Engine is a resumable state machine over a private copy of an augmented
//	matrix [A | b]. Each call to Step performs at most one elementary row
//	operation (swap, normalize, or clearing one entry) and returns exactly
//	one immutable trace.Step, so a UI can play back every arithmetic
//	operation individually. Classify reads a drained engine and returns a
//	Classification: Inconsistent, Unique or Infinite (particular solution,
//	free columns and null-space basis).
//
// ⚙️ Usage:
//
//	e := elimination.New(aug)              // Gauss-Jordan by default
//	for !e.IsTerminated() {
//	    step, _ := e.Step()
//	    render(step)
//	}
//	cls, err := elimination.Classify(e)
//
// Rules:
//   - Pivot search is first nonzero at or below the row cursor (exact
//     arithmetic needs no magnitude pivoting).
//   - A column without a pivot is recorded as free; the row cursor stays.
//   - Inconsistency (0 = c, c ≠ 0) is detected only by Classify, after
//     reduction is complete, never while stepping.
//
// Concurrency:
//
//	An Engine has single-owner mutation semantics and performs no locking;
//	callers sharing one across goroutines must serialise access.
package elimination

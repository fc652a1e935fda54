// SPDX-License-Identifier: MIT

package trace

import "github.com/katalvlaran/lvlalg/matrix"

// Recorder is an append-only step log. The zero value is ready to use.
// It is not safe for concurrent use; it belongs to a single producer.
type Recorder struct {
	steps []Step
}

// Record snapshots m and appends the step; the appended Step is returned.
func (r *Recorder) Record(kind Kind, label string, m *matrix.Matrix) Step {
	s := NewStep(kind, label, m)
	r.steps = append(r.steps, s)

	return s
}

// RecordPivot is Record focused on (row, col).
func (r *Recorder) RecordPivot(kind Kind, label string, m *matrix.Matrix, row, col int) Step {
	s := NewStep(kind, label, m).WithPivot(row, col)
	r.steps = append(r.steps, s)

	return s
}

// RecordColumn is Record focused on column col.
func (r *Recorder) RecordColumn(kind Kind, label string, m *matrix.Matrix, col int) Step {
	s := NewStep(kind, label, m).WithColumn(col)
	r.steps = append(r.steps, s)

	return s
}

// Append adds already-built steps (e.g. a sub-computation's log).
func (r *Recorder) Append(steps ...Step) {
	r.steps = append(r.steps, steps...)
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Last returns the most recent step.
func (r *Recorder) Last() (Step, bool) {
	if len(r.steps) == 0 {
		return Step{}, false
	}

	return r.steps[len(r.steps)-1], true
}

// Steps returns a copy of the log in recording order. Appending to or
// reordering the result does not affect the Recorder.
func (r *Recorder) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)

	return out
}

// CountKind returns how many recorded steps have kind k.
func CountKind(steps []Step, k Kind) int {
	n := 0
	for _, s := range steps {
		if s.kind == k {
			n++
		}
	}

	return n
}

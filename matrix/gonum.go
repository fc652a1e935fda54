// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

const opFloat64 = "Float64"

// Float64 converts m into a gonum *mat.Dense with the nearest float64 of each
// entry. The conversion is lossy and meant for presentation or plotting
// layers; exact results must be read from the Matrix itself.
//
// Errors:
//   - ErrBadShape for an empty matrix (gonum forbids zero-length dimensions).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Float64() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opFloat64, ErrBadShape)
	}
	buf := make([]float64, len(m.data))
	for k, v := range m.data {
		buf[k] = v.Float64()
	}

	return mat.NewDense(m.r, m.c, buf), nil
}

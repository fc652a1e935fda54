// Package matrix provides the rectangular container of exact fractions and the
// row-operation primitives shared by elimination, determinant and inverse.
//
// The matrix package provides:
//
//   - Matrix: row-major r×c storage of fraction.Fraction (zero rows/cols legal),
//     rectangular invariant enforced at construction (ErrDimensionMismatch).
//   - Row-operation primitives: FindPivot (first nonzero, not max magnitude),
//     SwapRows, ScaleRow, AddScaledRow. These are the arithmetic behind every
//     recorded elimination step.
//   - Exact arithmetic: Add, Sub, Mul, Transpose, Scale, MatVec, Augment,
//     SliceCols, Minor.
//   - Float64: a lossy bridge into gonum's *mat.Dense for presentation layers.
//
// An "augmented" matrix is a plain Matrix whose last column is read as the
// constant vector by elimination.Classify; it is a convention, not a type.
//
// See the examples in this package and in elimination for usage patterns.
package matrix

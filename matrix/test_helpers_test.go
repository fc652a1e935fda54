// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors, row ops and kernels.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/fraction"
	"github.com/katalvlaran/lvlalg/matrix"
)

// MustInts BUILDS an integer matrix or fails the test (fatal on error).
func MustInts(t *testing.T, rows [][]int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err, "FromInts(%v)", rows)

	return m
}

// MustParse BUILDS a matrix from fraction tokens or fails the test.
func MustParse(t *testing.T, rows [][]string) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Parse(rows)
	require.NoError(t, err, "Parse(%v)", rows)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix, i, j int) fraction.Fraction {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// Frac PARSES a single fraction token or fails the test.
func Frac(t *testing.T, tok string) fraction.Fraction {
	t.Helper()
	f, err := fraction.Parse(tok)
	require.NoError(t, err, "Parse(%q)", tok)

	return f
}

// RequireMatrixEqual ASSERTS exact equality, printing both matrices on failure.
func RequireMatrixEqual(t *testing.T, want, got *matrix.Matrix) {
	t.Helper()
	require.True(t, want.Equal(got), "want:\n%sgot:\n%s", want, got)
}

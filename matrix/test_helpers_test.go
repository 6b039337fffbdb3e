// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Small, deterministic fixtures shared by the format, cursor and
//     conversion tests.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mla/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type switches, forcing
// the generic (cursor) path in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustNew allocates an r×c matrix of format f or fails the test.
func MustNew(t *testing.T, f matrix.Format, r, c int) matrix.Matrix {
	t.Helper()
	m, err := matrix.New(f, r, c)
	require.NoError(t, err)

	return m
}

// MustSet writes v at (i, j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// MustAt reads (i, j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m equals want element-wise (exact float equality).
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "element (%d,%d)", i, j)
		}
	}
}

// fill writes every nonzero of want into m.
func fill(t *testing.T, m matrix.Matrix, want [][]float64) {
	t.Helper()
	for i := range want {
		for j, v := range want[i] {
			if v != 0 {
				MustSet(t, m, i, j, v)
			}
		}
	}
}

// generalFormats are the formats able to hold any pattern (Diagonal excluded).
func generalFormats() []matrix.Format {
	return []matrix.Format{
		matrix.FormatDense, matrix.FormatStaticDense, matrix.FormatCOO,
		matrix.FormatDOK, matrix.FormatCRS, matrix.FormatCCS,
	}
}

// pattern4x5 is a rectangular fixture with empty row 2 and empty column 3.
var pattern4x5 = [][]float64{
	{0, 1.5, 0, 0, 2},
	{3, 0, 0, 0, 0},
	{0, 0, 0, 0, 0},
	{0, -4, 5, 0, 6},
}

// ExpectPanic asserts that fn panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	require.Panics(t, fn)
}

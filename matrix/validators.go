// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape, bounds and permutation checks.
//  - Keep format files and kernels minimal by delegating guards here.
//  - Every failure is an *mla.Error carrying the caller's op tag, so errors.Is
//    on the root sentinels works at any depth.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidatePermutation allocates
//    (one bitmap of length n).
//
// Note:
//  - Each validator states what it assumes (e.g. no nil check).

package matrix

import (
	"github.com/katalvlaran/mla"
)

// checkShape rejects negative dimensions.
// Complexity: O(1).
func checkShape(op string, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return mla.Errorf(op, mla.ErrInvalidDimensions, "shape %dx%d has a negative extent", rows, cols)
	}

	return nil
}

// checkIndex rejects (i, j) outside [0,rows)×[0,cols).
// Complexity: O(1).
func checkIndex(op string, i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return mla.Errorf(op, mla.ErrOutOfRange, "(%d,%d) outside %dx%d", i, j, rows, cols)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilArgument if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return mla.Errorf("ValidateNotNil", mla.ErrNilArgument, "matrix is nil")
	}

	return nil
}

// ValidateSquare checks Rows == Cols. Assumes m != nil.
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return mla.Errorf("ValidateSquare", mla.ErrNonSquare, "shape %dx%d", m.Rows(), m.Cols())
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions. Assumes non-nil operands.
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return mla.Errorf("ValidateSameShape", mla.ErrDimensionMismatch,
			"%dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	return nil
}

// ValidatePermutation ensures order is a permutation of [0,n).
//
// Errors:
//   - ErrDimensionMismatch when len(order) != n.
//   - ErrInvalidPermutation on an out-of-range or repeated entry.
//
// Complexity: Time O(n), Space O(n).
func ValidatePermutation(order []int, n int) error {
	const op = "ValidatePermutation"
	if len(order) != n {
		return mla.Errorf(op, mla.ErrDimensionMismatch, "len(order)=%d != %d", len(order), n)
	}
	seen := make([]bool, n)
	for k, p := range order {
		if p < 0 || p >= n {
			return mla.Errorf(op, mla.ErrInvalidPermutation, "order[%d]=%d outside [0,%d)", k, p, n)
		}
		if seen[p] {
			return mla.Errorf(op, mla.ErrInvalidPermutation, "order[%d]=%d repeats", k, p)
		}
		seen[p] = true
	}

	return nil
}

// inversePermutation returns inv with inv[order[k]] = k. Assumes order is valid.
func inversePermutation(order []int) []int {
	inv := make([]int, len(order))
	for k, p := range order {
		inv[p] = k
	}

	return inv
}

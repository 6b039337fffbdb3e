// SPDX-License-Identifier: MIT
// Package mla: sentinel error set and the single precondition error type.
//
// All packages of the module return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No exported function panics on a
// user-triggered condition; panics are reserved for option constructors fed
// nonsensical constants (programmer error).

package mla

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mla: ..." for easy grepping across logs.
// Return sentinels through Errorf so the call site and violated invariant are
// attached; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates a negative row/column/size count.
	ErrInvalidDimensions = errors.New("mla: invalid dimensions")

	// ErrOutOfRange indicates that an index is outside [0,rows)×[0,cols) or [0,size).
	ErrOutOfRange = errors.New("mla: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("mla: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("mla: matrix is not square")

	// ErrReadOnlyElement signals a write to an element the storage format cannot
	// hold (an off-diagonal entry of a Diagonal matrix).
	ErrReadOnlyElement = errors.New("mla: element is not writable in this format")

	// ErrFixedShape signals a resize of a fixed-shape storage object.
	ErrFixedShape = errors.New("mla: storage has a fixed shape")

	// ErrNilArgument indicates that a nil matrix, vector or slice was passed.
	ErrNilArgument = errors.New("mla: nil argument")

	// ErrNotPositiveDefinite signals a non-positive (or NaN) pivot during Cholesky.
	ErrNotPositiveDefinite = errors.New("mla: matrix is not positive definite")

	// ErrInvalidPermutation signals a reorder vector that is not a permutation of [0,n).
	ErrInvalidPermutation = errors.New("mla: invalid permutation")

	// ErrCorruptStructure signals compressed arrays that violate the CRS/CCS invariants.
	ErrCorruptStructure = errors.New("mla: corrupt sparse structure")

	// ErrUnsupported signals an unknown format name or an unsupported file variant.
	ErrUnsupported = errors.New("mla: unsupported")

	// ErrParse signals malformed input text (Matrix Market files).
	ErrParse = errors.New("mla: parse error")

	// ErrSingular signals a zero pivot during LU or a zero diagonal during substitution.
	ErrSingular = errors.New("mla: matrix is singular")

	// ErrInvalidArgument signals a scalar argument outside its domain
	// (negative tolerance, negative iteration budget).
	ErrInvalidArgument = errors.New("mla: invalid argument")
)

// Error is the precondition-violation error raised by every package.
//   - Op names the operation that detected the violation ("Gemv", "CRS.Set").
//   - Detail names the violated invariant in human terms.
//   - Err is the sentinel matched by errors.Is.
type Error struct {
	Op     string
	Detail string
	Err    error
}

// Error renders "Op: Detail: sentinel", omitting an empty Detail.
func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s: %s: %v", e.Op, e.Detail, e.Err)
}

// Unwrap exposes the sentinel to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error for op wrapping sentinel, with a formatted detail.
// Complexity: O(len(format)).
//
// AI-Hints:
//   - Name the operand and the dimension in the detail, e.g.
//     Errorf("Gemv", ErrDimensionMismatch, "A.Cols()=%d != x.Size()=%d", c, n).
func Errorf(op string, sentinel error, format string, args ...any) error {
	return &Error{Op: op, Detail: fmt.Sprintf(format, args...), Err: sentinel}
}

// Wrap tags err with op, keeping the chain intact for errors.Is.
// Use only when err != nil.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

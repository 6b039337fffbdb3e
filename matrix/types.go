// SPDX-License-Identifier: MIT

// Package matrix: capability sets shared by every storage format.
// This file contains ONLY interfaces; concrete formats live in impl_*.go,
// errors come from the root mla package, options from options.go.
package matrix

// Matrix represents a two-dimensional float64 storage policy.
//
// Rows()/Cols() are always consistent with the internal representation after
// any mutating call returns successfully.
//
// Complexity notes: Rows/Cols/IsSquare are O(1); element access cost is
// format-dependent (see each impl_*.go quicksheet).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the value at (i, j); structural zeros read as 0.
	// Returns ErrOutOfRange outside [0,Rows())×[0,Cols()). Never mutates storage.
	At(i, j int) (float64, error)

	// Set stores v at (i, j). Sparse formats insert a slot when none exists.
	// Diagonal returns ErrReadOnlyElement for i != j.
	Set(i, j int, v float64) error

	// Update replaces the value at (i, j) with f(old): find-or-insert followed
	// by an in-place write. Replaces the mutable element reference.
	Update(i, j int, f func(old float64) float64) error

	// Resize changes the shape; contents are zeroed (destructive).
	Resize(rows, cols int) error

	// SetZero clears every element; sparse formats drop all slots.
	SetZero()

	// SetEye writes ones on the main diagonal (i < min(Rows, Cols)) and zeros elsewhere.
	SetEye()

	// IsSquare reports Rows() == Cols().
	IsSquare() bool

	// Cursor returns a new two-axis cursor positioned at (0, 0).
	// Call Reset to move it to the first structural element.
	Cursor() Cursor

	// Clone returns an independent deep copy with the same dynamic type.
	Clone() Matrix
}

// Sparse is implemented by formats that track stored slots.
type Sparse interface {
	Matrix

	// NNZ returns the number of stored slots (explicit zeros included).
	NNZ() int
}

// RowOriented is implemented by formats that can hand out a RowCursor.
type RowOriented interface {
	Matrix

	// RowCursor returns a row-scoped cursor positioned before the first row.
	RowCursor() RowCursor
}

// RowMajor is implemented by the flat row-major formats (Dense, StaticDense).
// Level-3 kernels accept only this capability.
type RowMajor interface {
	Matrix

	// RawData returns the row-major backing slice (offset i*Cols()+j), no copy.
	RawData() []float64
}

// Cursor is the uniform two-axis traversal contract.
//
// A Cursor is bound to exactly one matrix for its lifetime and must not outlive
// it or be used after a structural mutation of it. Boundary tests are strict:
// "at end" means the position advanced one past the last valid index, so
// callers check it before calling Element.
//
// Row-major traversal used by kernels:
//
//	c := m.Cursor()
//	for c.Reset(); !c.AtEndOfRows(); c.StartNextRowNN() {
//		for ; !c.AtEndOfCurrentRow(); c.IncrementColumn() {
//			use(c.CurrentRow(), c.CurrentColumn(), c.Element())
//		}
//	}
type Cursor interface {
	// Reset positions at the first structural element: (0,0) for dense and
	// diagonal formats, the first stored slot in row-major order for sparse
	// ones, or (0,0) when a sparse matrix stores nothing.
	Reset()

	// Element returns the value at the current position.
	Element() float64

	CurrentRow() int
	CurrentColumn() int

	// AtBeginningOfRow / AtBeginningOfColumn test column 0 / row 0.
	// CRS tests the column index for both, CCS the row index for both.
	AtBeginningOfRow() bool
	AtBeginningOfColumn() bool

	// AtEndOfCurrentRow is !(column < Cols()); AtEndOfCurrentColumn is !(row < Rows()).
	AtEndOfCurrentRow() bool
	AtEndOfCurrentColumn() bool

	// AtEndOfRows is !(row < Rows()); AtEndOfColumns is !(column < Cols()).
	AtEndOfRows() bool
	AtEndOfColumns() bool

	// StartCurrentRow moves to column 0 of the current row; StartCurrentColumn
	// to row 0 of the current column. The other axis is untouched.
	StartCurrentRow()
	StartCurrentColumn()

	// StartCurrentRowNN / StartCurrentColumnNN jump to the first stored element
	// of the current row / column, or one past the end when there is none.
	StartCurrentRowNN()
	StartCurrentColumnNN()

	// StartNextRow increments the row then starts it; StartNextColumn likewise.
	StartNextRow()
	StartNextColumn()

	// StartNextRowNN / StartNextColumnNN increment the axis then jump to its
	// first stored element.
	StartNextRowNN()
	StartNextColumnNN()

	// IncrementRow / IncrementColumn advance one step without skipping zeros.
	IncrementRow()
	IncrementColumn()
}

// RowCursor is a row-scoped cursor over stored elements of a RowOriented matrix.
//
// Protocol (the cursor starts before the first row):
//
//	rc := m.RowCursor()
//	for rc.HasNextNonNullRow() {
//		rc.StartNextNonNullRow()
//		for rc.HasNextNonNullRowElement() {
//			rc.NextNonNullRowElement()
//			use(rc.CurrentRow(), rc.CurrentColumn(), rc.Element())
//		}
//	}
//
// Within a row, elements are visited in strictly increasing column order.
// SetElement never changes structure, so it is safe during traversal.
type RowCursor interface {
	Element() float64
	SetElement(v float64) error
	CurrentRow() int
	CurrentColumn() int

	HasNextNonNullRowElement() bool
	NextNonNullRowElement()

	HasNextNonNullRow() bool
	StartNextNonNullRow()
}

// SPDX-License-Identifier: MIT

// Package vector provides the 1-D storage formats of the module: Dense (flat
// buffer) and SparseCS (sorted index/value parallel arrays), both exposing the
// same capability set and a forward Cursor used by the blas kernels.
//
// Ownership:
//   - Every Vector owns its buffer; Clone produces an independent value copy.
//   - A Cursor borrows its Vector. It must not outlive it and must not be used
//     after a structural mutation (Resize, SetZero, an inserting Set/Update).
//
// Complexity quicksheet:
//   - Dense:    At/Set/Update O(1); Cursor visits every index.
//   - SparseCS: At O(log nnz); inserting Set/Update O(nnz) (tail shift);
//     Cursor visits stored slots only.
package vector

// Vector is the capability set shared by every 1-D storage format.
type Vector interface {
	// Size returns the logical length.
	Size() int

	// At returns the value at i; structural zeros read as 0.
	// Returns ErrOutOfRange when i is outside [0,Size()). Never mutates storage.
	At(i int) (float64, error)

	// Set stores v at i. Sparse formats insert a slot when none exists.
	Set(i int, v float64) error

	// Update replaces the value at i with f(old). Sparse formats first insert a
	// zero-valued slot at the sorted position (find-or-insert), then apply f.
	Update(i int, f func(old float64) float64) error

	// Resize changes the length; contents are zeroed (destructive).
	Resize(n int) error

	// SetZero clears every element (sparse formats drop all slots).
	SetZero()

	// Cursor returns a fresh cursor positioned at the first stored element.
	Cursor() Cursor

	// Clone returns an independent deep copy with the same dynamic type.
	Clone() Vector
}

// Cursor walks the stored elements of one Vector in increasing index order.
//
// Protocol:
//
//	for c := v.Cursor(); !c.AtEnd(); c.Next() {
//		use(c.Current(), c.Element())
//	}
//
// Element and Current are only meaningful while AtEnd() is false.
type Cursor interface {
	// Reset positions the cursor at the first stored element.
	Reset()

	// Element returns the value at the current position.
	Element() float64

	// Current returns the logical index of the current position.
	Current() int

	// AtEnd reports whether the cursor moved past the last stored element.
	AtEnd() bool

	// Next advances to the next stored element (skipping structural zeros).
	Next()
}

// SPDX-License-Identifier: MIT

// Package vector - Dense storage (flat buffer) & safe accessors.
//
// Purpose:
//   - Contiguous float64 buffer; index i maps to data[i].
//   - Safe public surface: At/Set return errors instead of panicking.
//   - RawData exposes the buffer to kernel fast paths (blas).
//
// Complexity quicksheet:
//   - NewDense: O(n) zero-init; At/Set/Update: O(1); Clone: O(n).

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mla"
)

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxUpdate = "Update"
	ctxResize = "Resize"
)

// Dense is a flat, fully materialized vector.
type Dense struct {
	data []float64 // len == Size()
}

// Compile-time assertions.
var (
	_ Vector       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a zero vector of length n (n ≥ 0).
// Returns ErrInvalidDimensions for negative n.
// Complexity: Time O(n), Space O(n).
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, mla.Errorf("vector.NewDense", mla.ErrInvalidDimensions, "size %d < 0", n)
	}

	return &Dense{data: make([]float64, n)}, nil
}

// NewDenseFrom copies vals into a new Dense vector.
// Complexity: Time O(n), Space O(n).
func NewDenseFrom(vals []float64) *Dense {
	buf := make([]float64, len(vals))
	copy(buf, vals)

	return &Dense{data: buf}
}

// Size returns the length. O(1).
func (v *Dense) Size() int { return len(v.data) }

// RawData returns the backing slice (no copy). Writes through it mutate v.
//
// AI-Hints:
//   - Intended for kernel fast paths; do not retain across Resize.
func (v *Dense) RawData() []float64 { return v.data }

func (v *Dense) check(method string, i int) error {
	if i < 0 || i >= len(v.data) {
		return mla.Errorf("vector.Dense."+method, mla.ErrOutOfRange, "index %d not in [0,%d)", i, len(v.data))
	}

	return nil
}

// At returns data[i] or ErrOutOfRange.
func (v *Dense) At(i int) (float64, error) {
	if err := v.check(ctxAt, i); err != nil {
		return 0, err
	}

	return v.data[i], nil
}

// Set writes x into data[i] or returns ErrOutOfRange.
func (v *Dense) Set(i int, x float64) error {
	if err := v.check(ctxSet, i); err != nil {
		return err
	}
	v.data[i] = x

	return nil
}

// Update replaces data[i] with f(data[i]).
func (v *Dense) Update(i int, f func(old float64) float64) error {
	if err := v.check(ctxUpdate, i); err != nil {
		return err
	}
	v.data[i] = f(v.data[i])

	return nil
}

// Resize reallocates to length n; contents are zero afterwards.
// Reuses capacity when possible.
func (v *Dense) Resize(n int) error {
	if n < 0 {
		return mla.Errorf("vector.Dense."+ctxResize, mla.ErrInvalidDimensions, "size %d < 0", n)
	}
	if cap(v.data) >= n {
		v.data = v.data[:n]
		v.SetZero()

		return nil
	}
	v.data = make([]float64, n)

	return nil
}

// SetZero clears every element. O(n).
func (v *Dense) SetZero() {
	for i := range v.data {
		v.data[i] = 0
	}
}

// Clone returns a deep copy.
func (v *Dense) Clone() Vector { return NewDenseFrom(v.data) }

// Cursor returns a cursor visiting every index 0..n-1 (zeros included).
func (v *Dense) Cursor() Cursor { return &denseCursor{v: v} }

// String renders "[a, b, c]" for diagnostics.
func (v *Dense) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString("]")

	return b.String()
}

// denseCursor is a plain index walker.
type denseCursor struct {
	v   *Dense
	pos int
}

func (c *denseCursor) Reset()           { c.pos = 0 }
func (c *denseCursor) Element() float64 { return c.v.data[c.pos] }
func (c *denseCursor) Current() int     { return c.pos }
func (c *denseCursor) AtEnd() bool      { return c.pos >= len(c.v.data) }
func (c *denseCursor) Next()            { c.pos++ }

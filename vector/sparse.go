// SPDX-License-Identifier: MIT

// Package vector - SparseCS: compressed sparse vector.
//
// Representation:
//   - index[k] is the logical position of slot k; strictly increasing.
//   - values[k] is the value stored in slot k (len(values) == len(index)).
//   - n is the logical length; every index[k] ∈ [0,n).
//
// Mutation model:
//   - Read-only At never mutates and returns 0 for absent indices.
//   - Set/Update perform find-or-insert: a missing index gets a zero slot at its
//     sorted position (O(nnz) tail shift) before the write.
//   - Slot numbers returned by GetOrInsert are invalidated by the next insertion.

package vector

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/mla"
)

// SparseCS is a sorted index/value compressed vector.
type SparseCS struct {
	n      int
	index  []int
	values []float64
}

var _ Vector = (*SparseCS)(nil)

// NewSparseCS creates an empty (all structural zeros) vector of length n.
func NewSparseCS(n int) (*SparseCS, error) {
	if n < 0 {
		return nil, mla.Errorf("vector.NewSparseCS", mla.ErrInvalidDimensions, "size %d < 0", n)
	}

	return &SparseCS{n: n}, nil
}

// Size returns the logical length. O(1).
func (v *SparseCS) Size() int { return v.n }

// NNZ returns the number of stored slots (explicit zeros included).
func (v *SparseCS) NNZ() int { return len(v.index) }

// Indices returns the stored index array (no copy; read-only by contract).
func (v *SparseCS) Indices() []int { return v.index }

// Values returns the stored value array (no copy). Writing v.Values()[k]
// updates slot k in place without changing structure.
func (v *SparseCS) Values() []float64 { return v.values }

// find returns the slot holding i, or the insertion position when absent.
func (v *SparseCS) find(i int) (int, bool) {
	pos := sort.SearchInts(v.index, i)

	return pos, pos < len(v.index) && v.index[pos] == i
}

func (v *SparseCS) check(method string, i int) error {
	if i < 0 || i >= v.n {
		return mla.Errorf("vector.SparseCS."+method, mla.ErrOutOfRange, "index %d not in [0,%d)", i, v.n)
	}

	return nil
}

// At returns the stored value or 0 for a structural zero.
// Complexity: O(log nnz).
func (v *SparseCS) At(i int) (float64, error) {
	if err := v.check(ctxAt, i); err != nil {
		return 0, err
	}
	if pos, ok := v.find(i); ok {
		return v.values[pos], nil
	}

	return 0, nil
}

// GetOrInsert returns the slot for index i, inserting a zero slot when absent.
// MAIN DESCRIPTION:
//   - Index-based replacement for a mutable element reference.
//
// Implementation:
//   - Stage 1: binary search for i.
//   - Stage 2: when absent, shift the tails of index/values right by one.
//
// Returns:
//   - slot number valid until the next inserting call.
//
// Complexity:
//   - Time O(log nnz) when present, O(nnz) amortized when inserting.
func (v *SparseCS) GetOrInsert(i int) (int, error) {
	if err := v.check("GetOrInsert", i); err != nil {
		return 0, err
	}
	pos, ok := v.find(i)
	if !ok {
		v.index = slices.Insert(v.index, pos, i)
		v.values = slices.Insert(v.values, pos, 0)
	}

	return pos, nil
}

// Set stores x at i (find-or-insert). Storing 0 keeps an explicit zero slot.
func (v *SparseCS) Set(i int, x float64) error {
	slot, err := v.GetOrInsert(i)
	if err != nil {
		return mla.Wrap(ctxSet, err)
	}
	v.values[slot] = x

	return nil
}

// Update replaces the value at i with f(old) after find-or-insert.
func (v *SparseCS) Update(i int, f func(old float64) float64) error {
	slot, err := v.GetOrInsert(i)
	if err != nil {
		return mla.Wrap(ctxUpdate, err)
	}
	v.values[slot] = f(v.values[slot])

	return nil
}

// Resize sets the logical length to n and drops every slot.
func (v *SparseCS) Resize(n int) error {
	if n < 0 {
		return mla.Errorf("vector.SparseCS."+ctxResize, mla.ErrInvalidDimensions, "size %d < 0", n)
	}
	v.n = n
	v.SetZero()

	return nil
}

// SetZero drops every stored slot (capacity is kept).
func (v *SparseCS) SetZero() {
	v.index = v.index[:0]
	v.values = v.values[:0]
}

// Clone returns a deep copy.
func (v *SparseCS) Clone() Vector {
	return &SparseCS{
		n:      v.n,
		index:  slices.Clone(v.index),
		values: slices.Clone(v.values),
	}
}

// Cursor returns a cursor over stored slots in increasing index order.
func (v *SparseCS) Cursor() Cursor { return &sparseCursor{v: v} }

// String renders "n:{i:v, ...}" for diagnostics.
func (v *SparseCS) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d:{", v.n))
	for k, i := range v.index {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%d:%g", i, v.values[k]))
	}
	b.WriteString("}")

	return b.String()
}

type sparseCursor struct {
	v    *SparseCS
	slot int
}

func (c *sparseCursor) Reset()           { c.slot = 0 }
func (c *sparseCursor) Element() float64 { return c.v.values[c.slot] }
func (c *sparseCursor) Current() int     { return c.v.index[c.slot] }
func (c *sparseCursor) AtEnd() bool      { return c.slot >= len(c.v.index) }
func (c *sparseCursor) Next()            { c.slot++ }

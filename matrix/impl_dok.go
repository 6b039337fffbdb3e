// SPDX-License-Identifier: MIT

// Package matrix - DOK: dictionary-of-keys storage.
//
// Representation:
//   - slots maps (row, col) to its stored value; an explicit zero is a slot.
//
// Determinism:
//   - Map iteration order is random, so every exported visitor (Do) sorts
//     keys row-major first. Internal min-scans (cursor jumps) are order-free.
//
// Complexity quicksheet:
//   - At/Set/Update: O(1) expected; Do: O(nnz log nnz); relabeling ops: O(nnz).

package matrix

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/mla"
)

type dokKey struct{ row, col int }

// DOK is a hash-map sparse matrix, suited for random-access assembly.
type DOK struct {
	r, c  int
	slots map[dokKey]float64
}

var _ Sparse = (*DOK)(nil)

// NewDOK creates an empty rows×cols DOK matrix.
// Errors: mla.ErrInvalidDimensions.
func NewDOK(rows, cols int) (*DOK, error) {
	if err := checkShape("matrix.NewDOK", rows, cols); err != nil {
		return nil, err
	}

	return &DOK{r: rows, c: cols, slots: make(map[dokKey]float64)}, nil
}

func (m *DOK) Rows() int      { return m.r }
func (m *DOK) Cols() int      { return m.c }
func (m *DOK) IsSquare() bool { return m.r == m.c }
func (m *DOK) NNZ() int       { return len(m.slots) }

// At returns the stored value or 0. Never inserts.
func (m *DOK) At(i, j int) (float64, error) {
	if err := checkIndex("matrix.DOK."+ctxAt, i, j, m.r, m.c); err != nil {
		return 0, err
	}

	return m.slots[dokKey{i, j}], nil
}

// Set stores v at (i, j); storing 0 keeps an explicit zero slot.
func (m *DOK) Set(i, j int, v float64) error {
	if err := checkIndex("matrix.DOK."+ctxSet, i, j, m.r, m.c); err != nil {
		return err
	}
	m.slots[dokKey{i, j}] = v

	return nil
}

// Update stores f(old) at (i, j), creating the slot when absent.
func (m *DOK) Update(i, j int, f func(old float64) float64) error {
	if err := checkIndex("matrix.DOK."+ctxUpdate, i, j, m.r, m.c); err != nil {
		return err
	}
	k := dokKey{i, j}
	m.slots[k] = f(m.slots[k])

	return nil
}

func (m *DOK) Resize(rows, cols int) error {
	if err := checkShape("matrix.DOK."+ctxResize, rows, cols); err != nil {
		return err
	}
	m.r, m.c = rows, cols
	m.SetZero()

	return nil
}

func (m *DOK) SetZero() { clear(m.slots) }

func (m *DOK) SetEye() {
	clear(m.slots)
	for i := 0; i < min(m.r, m.c); i++ {
		m.slots[dokKey{i, i}] = 1
	}
}

func (m *DOK) Clone() Matrix {
	cp := make(map[dokKey]float64, len(m.slots))
	for k, v := range m.slots {
		cp[k] = v
	}

	return &DOK{r: m.r, c: m.c, slots: cp}
}

// sortedKeys returns the stored coordinates in row-major order.
func (m *DOK) sortedKeys() []dokKey {
	keys := make([]dokKey, 0, len(m.slots))
	for k := range m.slots {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b dokKey) int {
		if c := cmp.Compare(a.row, b.row); c != 0 {
			return c
		}
		return cmp.Compare(a.col, b.col)
	})

	return keys
}

// Do calls f for every stored slot in row-major order until f returns false.
// Complexity: O(nnz log nnz).
func (m *DOK) Do(f func(i, j int, v float64) bool) {
	for _, k := range m.sortedKeys() {
		if !f(k.row, k.col, m.slots[k]) {
			return
		}
	}
}

// eachUnordered visits stored slots in map order.
func (m *DOK) eachUnordered(f func(i, j int, v float64) bool) {
	for k, v := range m.slots {
		if !f(k.row, k.col, v) {
			return
		}
	}
}

func (m *DOK) Cursor() Cursor {
	return &scanCursor{
		grid:   newGrid(m.r, m.c),
		each:   m.eachUnordered,
		lookup: func(i, j int) float64 { return m.slots[dokKey{i, j}] },
	}
}

// relabel rebuilds the key set through f.
func (m *DOK) relabel(f func(k dokKey) dokKey) {
	next := make(map[dokKey]float64, len(m.slots))
	for k, v := range m.slots {
		next[f(k)] = v
	}
	m.slots = next
}

// PermuteRows exchanges rows r1 and r2.
// Errors: mla.ErrOutOfRange.
func (m *DOK) PermuteRows(r1, r2 int) error {
	if r1 < 0 || r1 >= m.r || r2 < 0 || r2 >= m.r {
		return mla.Errorf("matrix.DOK.PermuteRows", mla.ErrOutOfRange, "rows %d,%d outside [0,%d)", r1, r2, m.r)
	}
	m.relabel(func(k dokKey) dokKey { return dokKey{swapLabel(k.row, r1, r2), k.col} })

	return nil
}

// PermuteColumns exchanges columns c1 and c2.
// Errors: mla.ErrOutOfRange.
func (m *DOK) PermuteColumns(c1, c2 int) error {
	if c1 < 0 || c1 >= m.c || c2 < 0 || c2 >= m.c {
		return mla.Errorf("matrix.DOK.PermuteColumns", mla.ErrOutOfRange, "columns %d,%d outside [0,%d)", c1, c2, m.c)
	}
	m.relabel(func(k dokKey) dokKey { return dokKey{k.row, swapLabel(k.col, c1, c2)} })

	return nil
}

// SymmetricReorder relabels so that element (p, q) holds the old element
// (order[p], order[q]).
// Errors: mla.ErrNonSquare, mla.ErrDimensionMismatch, mla.ErrInvalidPermutation.
func (m *DOK) SymmetricReorder(order []int) error {
	const op = "matrix.DOK." + ctxReorder
	if err := ValidateSquare(m); err != nil {
		return mla.Wrap(op, err)
	}
	if err := ValidatePermutation(order, m.r); err != nil {
		return mla.Wrap(op, err)
	}
	inv := inversePermutation(order)
	m.relabel(func(k dokKey) dokKey { return dokKey{inv[k.row], inv[k.col]} })

	return nil
}

// SplitOutBottom keeps rows [0,k) and returns rows [k,Rows()) as a new DOK.
// Errors: mla.ErrOutOfRange when k ∉ [0,Rows()].
func (m *DOK) SplitOutBottom(k int) (*DOK, error) {
	if k < 0 || k > m.r {
		return nil, mla.Errorf("matrix.DOK.SplitOutBottom", mla.ErrOutOfRange, "split row %d outside [0,%d]", k, m.r)
	}
	out := &DOK{r: m.r - k, c: m.c, slots: make(map[dokKey]float64)}
	for key, v := range m.slots {
		if key.row >= k {
			out.slots[dokKey{key.row - k, key.col}] = v
			delete(m.slots, key)
		}
	}
	m.r = k

	return out, nil
}

// SplitOutRight keeps columns [0,k) and returns columns [k,Cols()) as a new DOK.
// Errors: mla.ErrOutOfRange when k ∉ [0,Cols()].
func (m *DOK) SplitOutRight(k int) (*DOK, error) {
	if k < 0 || k > m.c {
		return nil, mla.Errorf("matrix.DOK.SplitOutRight", mla.ErrOutOfRange, "split column %d outside [0,%d]", k, m.c)
	}
	out := &DOK{r: m.r, c: m.c - k, slots: make(map[dokKey]float64)}
	for key, v := range m.slots {
		if key.col >= k {
			out.slots[dokKey{key.row, key.col - k}] = v
			delete(m.slots, key)
		}
	}
	m.c = k

	return out, nil
}

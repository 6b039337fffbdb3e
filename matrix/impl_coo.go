// SPDX-License-Identifier: MIT

// Package matrix - COO: coordinate-list (triplet) storage.
//
// Representation:
//   - entries holds (row, col, value) triplets in insertion order; each
//     coordinate appears at most once.
//   - An explicit Set(i, j, 0) keeps a zero slot; SetZero drops every slot.
//
// Complexity quicksheet:
//   - At/Set/Update: O(nnz) linear find; append on insert.
//   - PermuteRows/PermuteColumns/SymmetricReorder/Split*: O(nnz).

package matrix

import (
	"github.com/katalvlaran/mla"
)

// Triplet is one stored COO slot.
type Triplet struct {
	Row, Col int
	Value    float64
}

// COO is an unordered coordinate-list sparse matrix, suited for assembly.
type COO struct {
	r, c    int
	entries []Triplet
}

var _ Sparse = (*COO)(nil)

// NewCOO creates an empty rows×cols COO matrix.
// Errors: mla.ErrInvalidDimensions.
func NewCOO(rows, cols int) (*COO, error) {
	if err := checkShape("matrix.NewCOO", rows, cols); err != nil {
		return nil, err
	}

	return &COO{r: rows, c: cols}, nil
}

func (m *COO) Rows() int      { return m.r }
func (m *COO) Cols() int      { return m.c }
func (m *COO) IsSquare() bool { return m.r == m.c }
func (m *COO) NNZ() int       { return len(m.entries) }

// Entries returns the stored triplets (no copy; read-only by contract).
func (m *COO) Entries() []Triplet { return m.entries }

// find returns the slot of (i, j) or -1.
func (m *COO) find(i, j int) int {
	for k := range m.entries {
		if m.entries[k].Row == i && m.entries[k].Col == j {
			return k
		}
	}

	return -1
}

// GetOrInsert returns the slot of (i, j), appending a zero slot when absent.
// Slot numbers stay valid until the next SetZero, Resize or Split.
func (m *COO) GetOrInsert(i, j int) (int, error) {
	if err := checkIndex("matrix.COO.GetOrInsert", i, j, m.r, m.c); err != nil {
		return 0, err
	}
	if k := m.find(i, j); k >= 0 {
		return k, nil
	}
	m.entries = append(m.entries, Triplet{Row: i, Col: j})

	return len(m.entries) - 1, nil
}

// At returns the stored value or 0. Never inserts.
func (m *COO) At(i, j int) (float64, error) {
	if err := checkIndex("matrix.COO."+ctxAt, i, j, m.r, m.c); err != nil {
		return 0, err
	}
	if k := m.find(i, j); k >= 0 {
		return m.entries[k].Value, nil
	}

	return 0, nil
}

func (m *COO) Set(i, j int, v float64) error {
	k, err := m.GetOrInsert(i, j)
	if err != nil {
		return mla.Wrap(ctxSet, err)
	}
	m.entries[k].Value = v

	return nil
}

func (m *COO) Update(i, j int, f func(old float64) float64) error {
	k, err := m.GetOrInsert(i, j)
	if err != nil {
		return mla.Wrap(ctxUpdate, err)
	}
	m.entries[k].Value = f(m.entries[k].Value)

	return nil
}

func (m *COO) Resize(rows, cols int) error {
	if err := checkShape("matrix.COO."+ctxResize, rows, cols); err != nil {
		return err
	}
	m.r, m.c = rows, cols
	m.SetZero()

	return nil
}

func (m *COO) SetZero() { m.entries = m.entries[:0] }

func (m *COO) SetEye() {
	m.SetZero()
	for i := 0; i < min(m.r, m.c); i++ {
		m.entries = append(m.entries, Triplet{Row: i, Col: i, Value: 1})
	}
}

func (m *COO) Clone() Matrix {
	cp := make([]Triplet, len(m.entries))
	copy(cp, m.entries)

	return &COO{r: m.r, c: m.c, entries: cp}
}

// Do calls f for every stored slot in insertion order until f returns false.
func (m *COO) Do(f func(i, j int, v float64) bool) {
	for _, t := range m.entries {
		if !f(t.Row, t.Col, t.Value) {
			return
		}
	}
}

func (m *COO) Cursor() Cursor {
	return &scanCursor{
		grid: newGrid(m.r, m.c),
		each: m.Do,
		lookup: func(i, j int) float64 {
			if k := m.find(i, j); k >= 0 {
				return m.entries[k].Value
			}
			return 0
		},
	}
}

// PermuteRows exchanges rows r1 and r2 by relabeling stored slots.
// Errors: mla.ErrOutOfRange.
func (m *COO) PermuteRows(r1, r2 int) error {
	if r1 < 0 || r1 >= m.r || r2 < 0 || r2 >= m.r {
		return mla.Errorf("matrix.COO.PermuteRows", mla.ErrOutOfRange, "rows %d,%d outside [0,%d)", r1, r2, m.r)
	}
	for k := range m.entries {
		m.entries[k].Row = swapLabel(m.entries[k].Row, r1, r2)
	}

	return nil
}

// PermuteColumns exchanges columns c1 and c2 by relabeling stored slots.
// Errors: mla.ErrOutOfRange.
func (m *COO) PermuteColumns(c1, c2 int) error {
	if c1 < 0 || c1 >= m.c || c2 < 0 || c2 >= m.c {
		return mla.Errorf("matrix.COO.PermuteColumns", mla.ErrOutOfRange, "columns %d,%d outside [0,%d)", c1, c2, m.c)
	}
	for k := range m.entries {
		m.entries[k].Col = swapLabel(m.entries[k].Col, c1, c2)
	}

	return nil
}

// SymmetricReorder relabels rows and columns so that element (p, q) holds the
// old element (order[p], order[q]).
// Errors: mla.ErrNonSquare, mla.ErrDimensionMismatch, mla.ErrInvalidPermutation.
func (m *COO) SymmetricReorder(order []int) error {
	const op = "matrix.COO." + ctxReorder
	if err := ValidateSquare(m); err != nil {
		return mla.Wrap(op, err)
	}
	if err := ValidatePermutation(order, m.r); err != nil {
		return mla.Wrap(op, err)
	}
	inv := inversePermutation(order)
	for k := range m.entries {
		m.entries[k].Row = inv[m.entries[k].Row]
		m.entries[k].Col = inv[m.entries[k].Col]
	}

	return nil
}

// SplitOutBottom keeps rows [0,k) in m and moves rows [k,Rows()) into a new
// (Rows()-k)×Cols() matrix, relabeled from row 0.
// Errors: mla.ErrOutOfRange when k ∉ [0,Rows()].
func (m *COO) SplitOutBottom(k int) (*COO, error) {
	if k < 0 || k > m.r {
		return nil, mla.Errorf("matrix.COO.SplitOutBottom", mla.ErrOutOfRange, "split row %d outside [0,%d]", k, m.r)
	}
	out := &COO{r: m.r - k, c: m.c}
	kept := m.entries[:0]
	for _, t := range m.entries {
		if t.Row >= k {
			out.entries = append(out.entries, Triplet{Row: t.Row - k, Col: t.Col, Value: t.Value})
			continue
		}
		kept = append(kept, t)
	}
	m.entries, m.r = kept, k

	return out, nil
}

// SplitOutRight keeps columns [0,k) in m and moves columns [k,Cols()) into a
// new Rows()×(Cols()-k) matrix, relabeled from column 0.
// Errors: mla.ErrOutOfRange when k ∉ [0,Cols()].
func (m *COO) SplitOutRight(k int) (*COO, error) {
	if k < 0 || k > m.c {
		return nil, mla.Errorf("matrix.COO.SplitOutRight", mla.ErrOutOfRange, "split column %d outside [0,%d]", k, m.c)
	}
	out := &COO{r: m.r, c: m.c - k}
	kept := m.entries[:0]
	for _, t := range m.entries {
		if t.Col >= k {
			out.entries = append(out.entries, Triplet{Row: t.Row, Col: t.Col - k, Value: t.Value})
			continue
		}
		kept = append(kept, t)
	}
	m.entries, m.c = kept, k

	return out, nil
}

// swapLabel maps a to b, b to a and leaves every other label alone.
func swapLabel(x, a, b int) int {
	switch x {
	case a:
		return b
	case b:
		return a
	}

	return x
}

// SPDX-License-Identifier: MIT

// Package matrix - CCS: compressed column storage.
//
// Purpose:
//   - Column-oriented sparse format; the exchange format of the direct-solver
//     backend (see Int64Arrays).
//   - Column j occupies slots colPtr[j]:colPtr[j+1]; rows inside a column are
//     strictly increasing.
//
// Complexity quicksheet:
//   - At: O(log column length); Set/Update: O(nnz + cols) on insert.
//   - Cursor row-major jumps scan the columns, O(cols · log).

package matrix

import (
	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/vector"
)

// CCS is a compressed-column sparse matrix.
type CCS struct {
	s compressed // major = cols, minor = rows
}

var _ Sparse = (*CCS)(nil)

// NewCCS creates an empty rows×cols CCS matrix.
// Errors: mla.ErrInvalidDimensions.
func NewCCS(rows, cols int) (*CCS, error) {
	if err := checkShape("matrix.NewCCS", rows, cols); err != nil {
		return nil, err
	}

	return &CCS{s: newCompressed(cols, rows)}, nil
}

// NewCCSFromArrays builds a CCS matrix from raw arrays, taking ownership.
// Errors: mla.ErrInvalidDimensions, mla.ErrCorruptStructure.
func NewCCSFromArrays(rows, cols int, colPtr, rowIdx []int, values []float64) (*CCS, error) {
	const op = "matrix.NewCCSFromArrays"
	if err := checkShape(op, rows, cols); err != nil {
		return nil, err
	}
	m := &CCS{s: compressed{nMajor: cols, nMinor: rows, ptr: colPtr, idx: rowIdx, val: values}}
	if err := m.s.validate(op); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *CCS) Rows() int      { return m.s.nMinor }
func (m *CCS) Cols() int      { return m.s.nMajor }
func (m *CCS) IsSquare() bool { return m.s.nMajor == m.s.nMinor }
func (m *CCS) NNZ() int       { return len(m.s.idx) }

// Arrays returns (colPtr, rowIdx, values) without copying.
func (m *CCS) Arrays() (colPtr, rowIdx []int, values []float64) {
	return m.s.ptr, m.s.idx, m.s.val
}

// Int64Arrays returns copies of the compressed arrays with 64-bit indices,
// the layout expected by external direct-solver libraries.
// Complexity: O(cols + nnz).
func (m *CCS) Int64Arrays() (colPtr, rowIdx []int64, values []float64) {
	colPtr = make([]int64, len(m.s.ptr))
	for k, p := range m.s.ptr {
		colPtr[k] = int64(p)
	}
	rowIdx = make([]int64, len(m.s.idx))
	for k, r := range m.s.idx {
		rowIdx[k] = int64(r)
	}
	values = make([]float64, len(m.s.val))
	copy(values, m.s.val)

	return colPtr, rowIdx, values
}

// Validate re-checks the structural invariants.
func (m *CCS) Validate() error { return m.s.validate("matrix.CCS.Validate") }

func (m *CCS) At(i, j int) (float64, error) {
	if err := checkIndex("matrix.CCS."+ctxAt, i, j, m.s.nMinor, m.s.nMajor); err != nil {
		return 0, err
	}

	return m.s.get(j, i), nil
}

// GetOrInsert returns the slot of (i, j), inserting a zero slot when absent.
func (m *CCS) GetOrInsert(i, j int) (int, error) {
	if err := checkIndex("matrix.CCS.GetOrInsert", i, j, m.s.nMinor, m.s.nMajor); err != nil {
		return 0, err
	}

	return m.s.getOrInsert(j, i), nil
}

func (m *CCS) Set(i, j int, v float64) error {
	k, err := m.GetOrInsert(i, j)
	if err != nil {
		return mla.Wrap(ctxSet, err)
	}
	m.s.val[k] = v

	return nil
}

func (m *CCS) Update(i, j int, f func(old float64) float64) error {
	k, err := m.GetOrInsert(i, j)
	if err != nil {
		return mla.Wrap(ctxUpdate, err)
	}
	m.s.val[k] = f(m.s.val[k])

	return nil
}

func (m *CCS) Resize(rows, cols int) error {
	if err := checkShape("matrix.CCS."+ctxResize, rows, cols); err != nil {
		return err
	}
	m.s.reshape(cols, rows)

	return nil
}

func (m *CCS) SetZero() { m.s.clearSlots() }
func (m *CCS) SetEye()  { m.s.eye() }

func (m *CCS) Clone() Matrix { return &CCS{s: m.s.clone()} }

// Column returns column j as a sparse vector of length Rows().
// Errors: mla.ErrOutOfRange.
func (m *CCS) Column(j int) (*vector.SparseCS, error) {
	if j < 0 || j >= m.s.nMajor {
		return nil, mla.Errorf("matrix.CCS."+ctxColumn, mla.ErrOutOfRange, "column %d outside [0,%d)", j, m.s.nMajor)
	}
	out, err := vector.NewSparseCS(m.s.nMinor)
	if err != nil {
		return nil, err
	}
	lo, hi := m.s.line(j)
	for k := lo; k < hi; k++ {
		if err = out.Set(m.s.idx[k], m.s.val[k]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// DoColumn calls f(i, v) for every stored slot of column j in increasing row
// order. Assumes j is in range.
func (m *CCS) DoColumn(j int, f func(i int, v float64)) {
	lo, hi := m.s.line(j)
	for k := lo; k < hi; k++ {
		f(m.s.idx[k], m.s.val[k])
	}
}

// PermuteRows exchanges rows r1 and r2.
// Errors: mla.ErrOutOfRange.
// Complexity: O(nnz).
func (m *CCS) PermuteRows(r1, r2 int) error {
	n := m.s.nMinor
	if r1 < 0 || r1 >= n || r2 < 0 || r2 >= n {
		return mla.Errorf("matrix.CCS.PermuteRows", mla.ErrOutOfRange, "rows %d,%d outside [0,%d)", r1, r2, n)
	}
	m.s.permuteMinor(r1, r2)

	return nil
}

// PermuteColumns exchanges columns c1 and c2.
// Errors: mla.ErrOutOfRange.
// Complexity: O(nnz + cols).
func (m *CCS) PermuteColumns(c1, c2 int) error {
	n := m.s.nMajor
	if c1 < 0 || c1 >= n || c2 < 0 || c2 >= n {
		return mla.Errorf("matrix.CCS.PermuteColumns", mla.ErrOutOfRange, "columns %d,%d outside [0,%d)", c1, c2, n)
	}
	m.s.permuteLines(c1, c2)

	return nil
}

func (m *CCS) Cursor() Cursor {
	return &ccsCursor{grid: newGrid(m.s.nMinor, m.s.nMajor), s: &m.s}
}

// ---------- cursor ----------

// ccsCursor keeps the row-major traversal contract; major lines are columns,
// so row jumps scan every column.
type ccsCursor struct {
	grid
	s *compressed
}

// AtBeginningOfRow and AtBeginningOfColumn both test the row index.
func (c *ccsCursor) AtBeginningOfRow() bool    { return c.row == 0 }
func (c *ccsCursor) AtBeginningOfColumn() bool { return c.row == 0 }

// Reset moves to the first stored slot in row-major order, or to (0,0) when
// nothing is stored.
func (c *ccsCursor) Reset() {
	c.row, c.col = 0, 0
	if first := c.s.minLeadingMinor(); first < c.nr {
		c.row = first
		c.StartCurrentRowNN()
	}
}

func (c *ccsCursor) Element() float64 {
	if !c.inside() {
		return 0
	}

	return c.s.get(c.col, c.row)
}

func (c *ccsCursor) StartCurrentRowNN()    { c.col = c.s.firstMajor(c.row) }
func (c *ccsCursor) StartCurrentColumnNN() { c.row = c.s.firstMinor(c.col) }
func (c *ccsCursor) StartNextRowNN()       { c.row++; c.StartCurrentRowNN() }
func (c *ccsCursor) StartNextColumnNN()    { c.col++; c.StartCurrentColumnNN() }

// SPDX-License-Identifier: MIT

// Package matrix - CRS: compressed row storage.
//
// Purpose:
//   - Row-oriented sparse format for kernels (Gemv, Syr, CG, Cholesky).
//   - Row i occupies slots rowPtr[i]:rowPtr[i+1]; columns inside a row are
//     strictly increasing, so RowCursor visits them in order.
//
// Complexity quicksheet:
//   - At: O(log row length); Set/Update: O(nnz + rows) on insert, O(log) otherwise.
//   - Cursor non-null row jump: O(1); column jump: O(rows · log).

package matrix

import (
	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/vector"
)

// CRS is a compressed-row sparse matrix.
type CRS struct {
	s compressed // major = rows, minor = cols
}

var (
	_ Sparse      = (*CRS)(nil)
	_ RowOriented = (*CRS)(nil)
)

// NewCRS creates an empty rows×cols CRS matrix.
// Errors: mla.ErrInvalidDimensions.
func NewCRS(rows, cols int) (*CRS, error) {
	if err := checkShape("matrix.NewCRS", rows, cols); err != nil {
		return nil, err
	}

	return &CRS{s: newCompressed(rows, cols)}, nil
}

// NewCRSFromArrays builds a CRS matrix from raw compressed arrays.
// MAIN DESCRIPTION:
//   - Takes ownership of rowPtr, colIdx and values (no copy).
//
// Errors:
//   - mla.ErrInvalidDimensions for a negative shape.
//   - mla.ErrCorruptStructure when the arrays break a CRS invariant.
//
// Complexity:
//   - Time O(rows + nnz) for validation.
func NewCRSFromArrays(rows, cols int, rowPtr, colIdx []int, values []float64) (*CRS, error) {
	const op = "matrix.NewCRSFromArrays"
	if err := checkShape(op, rows, cols); err != nil {
		return nil, err
	}
	m := &CRS{s: compressed{nMajor: rows, nMinor: cols, ptr: rowPtr, idx: colIdx, val: values}}
	if err := m.s.validate(op); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *CRS) Rows() int      { return m.s.nMajor }
func (m *CRS) Cols() int      { return m.s.nMinor }
func (m *CRS) IsSquare() bool { return m.s.nMajor == m.s.nMinor }
func (m *CRS) NNZ() int       { return len(m.s.idx) }

// Arrays returns (rowPtr, colIdx, values) without copying. Writing values[k]
// updates slot k in place; the index arrays are read-only by contract.
func (m *CRS) Arrays() (rowPtr, colIdx []int, values []float64) {
	return m.s.ptr, m.s.idx, m.s.val
}

// Validate re-checks the structural invariants.
// Errors: mla.ErrCorruptStructure.
func (m *CRS) Validate() error { return m.s.validate("matrix.CRS.Validate") }

func (m *CRS) At(i, j int) (float64, error) {
	if err := checkIndex("matrix.CRS."+ctxAt, i, j, m.s.nMajor, m.s.nMinor); err != nil {
		return 0, err
	}

	return m.s.get(i, j), nil
}

// GetOrInsert returns the slot of (i, j), inserting a zero slot when absent.
// The slot indexes the values array returned by Arrays and stays valid until
// the next inserting call.
func (m *CRS) GetOrInsert(i, j int) (int, error) {
	if err := checkIndex("matrix.CRS.GetOrInsert", i, j, m.s.nMajor, m.s.nMinor); err != nil {
		return 0, err
	}

	return m.s.getOrInsert(i, j), nil
}

func (m *CRS) Set(i, j int, v float64) error {
	k, err := m.GetOrInsert(i, j)
	if err != nil {
		return mla.Wrap(ctxSet, err)
	}
	m.s.val[k] = v

	return nil
}

func (m *CRS) Update(i, j int, f func(old float64) float64) error {
	k, err := m.GetOrInsert(i, j)
	if err != nil {
		return mla.Wrap(ctxUpdate, err)
	}
	m.s.val[k] = f(m.s.val[k])

	return nil
}

func (m *CRS) Resize(rows, cols int) error {
	if err := checkShape("matrix.CRS."+ctxResize, rows, cols); err != nil {
		return err
	}
	m.s.reshape(rows, cols)

	return nil
}

func (m *CRS) SetZero() { m.s.clearSlots() }
func (m *CRS) SetEye()  { m.s.eye() }

func (m *CRS) Clone() Matrix { return &CRS{s: m.s.clone()} }

// Row returns row i as a sparse vector of length Cols() holding the stored slots.
// Errors: mla.ErrOutOfRange.
// Complexity: O(row length).
func (m *CRS) Row(i int) (*vector.SparseCS, error) {
	if i < 0 || i >= m.s.nMajor {
		return nil, mla.Errorf("matrix.CRS."+ctxRow, mla.ErrOutOfRange, "row %d outside [0,%d)", i, m.s.nMajor)
	}
	out, err := vector.NewSparseCS(m.s.nMinor)
	if err != nil {
		return nil, err
	}
	lo, hi := m.s.line(i)
	for k := lo; k < hi; k++ {
		if err = out.Set(m.s.idx[k], m.s.val[k]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// PermuteRows exchanges rows r1 and r2.
// Errors: mla.ErrOutOfRange.
// Complexity: O(nnz + rows).
func (m *CRS) PermuteRows(r1, r2 int) error {
	n := m.s.nMajor
	if r1 < 0 || r1 >= n || r2 < 0 || r2 >= n {
		return mla.Errorf("matrix.CRS.PermuteRows", mla.ErrOutOfRange, "rows %d,%d outside [0,%d)", r1, r2, n)
	}
	m.s.permuteLines(r1, r2)

	return nil
}

// PermuteColumns exchanges columns c1 and c2.
// Errors: mla.ErrOutOfRange.
// Complexity: O(nnz).
func (m *CRS) PermuteColumns(c1, c2 int) error {
	n := m.s.nMinor
	if c1 < 0 || c1 >= n || c2 < 0 || c2 >= n {
		return mla.Errorf("matrix.CRS.PermuteColumns", mla.ErrOutOfRange, "columns %d,%d outside [0,%d)", c1, c2, n)
	}
	m.s.permuteMinor(c1, c2)

	return nil
}

func (m *CRS) Cursor() Cursor { return &crsCursor{grid: newGrid(m.s.nMajor, m.s.nMinor), s: &m.s} }

func (m *CRS) RowCursor() RowCursor { return &crsRowCursor{m: m, row: -1} }

// ---------- cursors ----------

type crsCursor struct {
	grid
	s *compressed
}

// AtBeginningOfRow and AtBeginningOfColumn both test the column index.
func (c *crsCursor) AtBeginningOfRow() bool    { return c.col == 0 }
func (c *crsCursor) AtBeginningOfColumn() bool { return c.col == 0 }

// Reset moves to the first stored slot, or to (0,0) when nothing is stored.
func (c *crsCursor) Reset() {
	c.row, c.col = 0, 0
	if first := c.s.nextLine(-1); first < c.nr {
		c.row = first
		c.col = c.s.firstMinor(first)
	}
}

func (c *crsCursor) Element() float64 {
	if !c.inside() {
		return 0
	}

	return c.s.get(c.row, c.col)
}

func (c *crsCursor) StartCurrentRowNN()    { c.col = c.s.firstMinor(c.row) }
func (c *crsCursor) StartCurrentColumnNN() { c.row = c.s.firstMajor(c.col) }
func (c *crsCursor) StartNextRowNN()       { c.row++; c.StartCurrentRowNN() }
func (c *crsCursor) StartNextColumnNN()    { c.col++; c.StartCurrentColumnNN() }

// crsRowCursor walks slots directly: k is the current slot, end bounds the row.
type crsRowCursor struct {
	m      *CRS
	row    int
	k, end int
}

func (c *crsRowCursor) Element() float64   { return c.m.s.val[c.k] }
func (c *crsRowCursor) CurrentRow() int    { return c.row }
func (c *crsRowCursor) CurrentColumn() int { return c.m.s.idx[c.k] }

// SetElement overwrites the current slot in place.
func (c *crsRowCursor) SetElement(v float64) error {
	if c.k < 0 || c.k >= c.end {
		return mla.Errorf("matrix.CRS.RowCursor.SetElement", mla.ErrOutOfRange, "no current element")
	}
	c.m.s.val[c.k] = v

	return nil
}

func (c *crsRowCursor) HasNextNonNullRowElement() bool { return c.k+1 < c.end }
func (c *crsRowCursor) NextNonNullRowElement()         { c.k++ }
func (c *crsRowCursor) HasNextNonNullRow() bool        { return c.m.s.nextLine(c.row) < c.m.s.nMajor }

func (c *crsRowCursor) StartNextNonNullRow() {
	c.row = c.m.s.nextLine(c.row)
	if c.row >= c.m.s.nMajor {
		c.k, c.end = 0, 0
		return
	}
	lo, hi := c.m.s.line(c.row)
	c.k, c.end = lo-1, hi
}

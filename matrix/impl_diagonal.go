// SPDX-License-Identifier: MIT

// Package matrix - Diagonal: stores only the main diagonal.
//
// Representation:
//   - d[i] holds element (i,i) for i < min(rows, cols); everything else is a
//     structural zero that reads as 0 and cannot be written.
//
// Complexity quicksheet:
//   - At/Set/Update: O(1); Clone: O(min(r,c)); Resize: O(min(r,c)).

package matrix

import (
	"github.com/katalvlaran/mla"
)

// Diagonal is a diagonal-only matrix.
type Diagonal struct {
	r, c int
	d    []float64 // len == min(r, c)
}

var (
	_ Sparse      = (*Diagonal)(nil)
	_ RowOriented = (*Diagonal)(nil)
)

// NewDiagonal creates a rows×cols zero diagonal matrix.
// Errors: mla.ErrInvalidDimensions.
func NewDiagonal(rows, cols int) (*Diagonal, error) {
	if err := checkShape("matrix.NewDiagonal", rows, cols); err != nil {
		return nil, err
	}

	return &Diagonal{r: rows, c: cols, d: make([]float64, min(rows, cols))}, nil
}

// NewDiagonalFrom builds a square n×n diagonal matrix from diag (copied).
func NewDiagonalFrom(diag []float64) *Diagonal {
	d := make([]float64, len(diag))
	copy(d, diag)

	return &Diagonal{r: len(diag), c: len(diag), d: d}
}

func (m *Diagonal) Rows() int      { return m.r }
func (m *Diagonal) Cols() int      { return m.c }
func (m *Diagonal) IsSquare() bool { return m.r == m.c }

// NNZ returns the diagonal length; every diagonal cell is stored.
func (m *Diagonal) NNZ() int { return len(m.d) }

// Diag returns the diagonal slice (no copy).
func (m *Diagonal) Diag() []float64 { return m.d }

// At returns d[i] on the diagonal and 0 elsewhere.
func (m *Diagonal) At(i, j int) (float64, error) {
	if err := checkIndex("matrix.Diagonal."+ctxAt, i, j, m.r, m.c); err != nil {
		return 0, err
	}
	if i != j {
		return 0, nil
	}

	return m.d[i], nil
}

// slot validates (i, j) for writing and returns the diagonal index.
func (m *Diagonal) slot(method string, i, j int) (int, error) {
	op := "matrix.Diagonal." + method
	if err := checkIndex(op, i, j, m.r, m.c); err != nil {
		return 0, err
	}
	if i != j {
		return 0, mla.Errorf(op, mla.ErrReadOnlyElement, "(%d,%d) is off the diagonal", i, j)
	}

	return i, nil
}

// Set writes the diagonal element (i,i). Off-diagonal writes fail with
// mla.ErrReadOnlyElement, whatever the value.
func (m *Diagonal) Set(i, j int, v float64) error {
	k, err := m.slot(ctxSet, i, j)
	if err != nil {
		return err
	}
	m.d[k] = v

	return nil
}

// Update replaces d[i] with f(d[i]); off-diagonal targets fail like Set.
func (m *Diagonal) Update(i, j int, f func(old float64) float64) error {
	k, err := m.slot(ctxUpdate, i, j)
	if err != nil {
		return err
	}
	m.d[k] = f(m.d[k])

	return nil
}

// Resize reshapes and zeroes the diagonal.
func (m *Diagonal) Resize(rows, cols int) error {
	if err := checkShape("matrix.Diagonal."+ctxResize, rows, cols); err != nil {
		return err
	}
	m.r, m.c = rows, cols
	n := min(rows, cols)
	if cap(m.d) >= n {
		m.d = m.d[:n]
		clear(m.d)
	} else {
		m.d = make([]float64, n)
	}

	return nil
}

func (m *Diagonal) SetZero() { clear(m.d) }

func (m *Diagonal) SetEye() {
	for i := range m.d {
		m.d[i] = 1
	}
}

func (m *Diagonal) Clone() Matrix {
	d := make([]float64, len(m.d))
	copy(d, m.d)

	return &Diagonal{r: m.r, c: m.c, d: d}
}

func (m *Diagonal) Cursor() Cursor { return &diagonalCursor{grid: newGrid(m.r, m.c), m: m} }

func (m *Diagonal) RowCursor() RowCursor { return &diagonalRowCursor{m: m, row: -1, visited: true} }

// ---------- cursors ----------

type diagonalCursor struct {
	grid
	m *Diagonal
}

func (c *diagonalCursor) Reset() { c.row, c.col = 0, 0 }

func (c *diagonalCursor) Element() float64 {
	if c.row != c.col || !c.inside() {
		return 0
	}

	return c.m.d[c.row]
}

// StartCurrentRowNN jumps to (row,row), or past the end of the row when the
// row has no diagonal cell.
func (c *diagonalCursor) StartCurrentRowNN() {
	if c.row < len(c.m.d) {
		c.col = c.row
		return
	}
	c.col = c.nc
}

func (c *diagonalCursor) StartCurrentColumnNN() {
	if c.col < len(c.m.d) {
		c.row = c.col
		return
	}
	c.row = c.nr
}

func (c *diagonalCursor) StartNextRowNN()    { c.row++; c.StartCurrentRowNN() }
func (c *diagonalCursor) StartNextColumnNN() { c.col++; c.StartCurrentColumnNN() }

// diagonalRowCursor visits exactly one element, (i,i), per stored row.
type diagonalRowCursor struct {
	m       *Diagonal
	row     int
	visited bool
}

func (c *diagonalRowCursor) Element() float64   { return c.m.d[c.row] }
func (c *diagonalRowCursor) CurrentRow() int    { return c.row }
func (c *diagonalRowCursor) CurrentColumn() int { return c.row }

func (c *diagonalRowCursor) SetElement(v float64) error {
	return c.m.Set(c.row, c.row, v)
}

func (c *diagonalRowCursor) HasNextNonNullRowElement() bool { return !c.visited }
func (c *diagonalRowCursor) NextNonNullRowElement()         { c.visited = true }
func (c *diagonalRowCursor) HasNextNonNullRow() bool        { return c.row+1 < len(c.m.d) }
func (c *diagonalRowCursor) StartNextNonNullRow()           { c.row++; c.visited = false }

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Expose RawData so blas fast paths can operate on the flat slice directly.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Update: O(1); Clone: O(r*c);
//     PermuteRows: O(c); PermuteColumns: O(r); SymmetricReorder: O(n²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/vector"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxUpdate  = "Update"  // method tag used in error wrappers
	ctxResize  = "Resize"  // method tag used in error wrappers
	ctxRow     = "Row"     // method tag used in error wrappers
	ctxColumn  = "Column"  // method tag used in error wrappers
	ctxPermute = "Permute" // PermuteRows / PermuteColumns
	ctxReorder = "SymmetricReorder"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf tags a sentinel with the Dense method and the offending coordinates.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., mla.ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer to wrap at the nearest detection site for precise coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return mla.Errorf("matrix.Dense."+method, err, "(%d,%d)", row, col)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero extents are legal.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ RowOriented  = (*Dense)(nil)
	_ RowMajor     = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - 0×N and N×0 shapes are legal (empty RHS, empty splits).
//
// Errors:
//   - mla.ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := checkShape("matrix.NewDense", rows, cols); err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies a row-major slice into a new rows×cols matrix.
// Errors: ErrInvalidDimensions (negative shape), ErrDimensionMismatch (len(vals) != rows*cols).
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, vals []float64) (*Dense, error) {
	const op = "matrix.NewDenseFrom"
	if err := checkShape(op, rows, cols); err != nil {
		return nil, err
	}
	if len(vals) != rows*cols {
		return nil, mla.Errorf(op, mla.ErrDimensionMismatch, "len(vals)=%d != %d*%d", len(vals), rows, cols)
	}
	buf := make([]float64, len(vals))
	copy(buf, vals)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports rows == cols.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// RawData exposes the row-major buffer (no copy). Kernels write through it.
func (m *Dense) RawData() []float64 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - Error is tagged with the caller's method context and coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, mla.ErrOutOfRange)
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Update replaces the value at (row, col) with f(old).
// Complexity: O(1) plus the cost of f.
func (m *Dense) Update(row, col int, f func(old float64) float64) error {
	off, err := m.indexOf(ctxUpdate, row, col)
	if err != nil {
		return err
	}
	m.data[off] = f(m.data[off])

	return nil
}

// Resize reshapes to rows×cols and zeroes every element.
// The backing buffer is reused when its capacity suffices.
// Complexity: O(rows*cols).
func (m *Dense) Resize(rows, cols int) error {
	if err := checkShape("matrix.Dense."+ctxResize, rows, cols); err != nil {
		return err
	}
	n := rows * cols
	if cap(m.data) >= n {
		m.data = m.data[:n]
		clear(m.data)
	} else {
		m.data = make([]float64, n)
	}
	m.r, m.c = rows, cols

	return nil
}

// SetZero clears every element in place.
func (m *Dense) SetZero() { clear(m.data) }

// SetEye writes the (possibly rectangular) identity.
func (m *Dense) SetEye() {
	clear(m.data)
	for i := 0; i < min(m.r, m.c); i++ {
		m.data[i*m.c+i] = 1
	}
}

// Clone returns a deep copy of the matrix. Returned dynamic type is *Dense.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row copies row i into a new dense vector.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int) (*vector.Dense, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, mla.ErrOutOfRange)
	}

	return vector.NewDenseFrom(m.data[i*m.c : (i+1)*m.c]), nil
}

// Column copies column j into a new dense vector.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) Column(j int) (*vector.Dense, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, mla.ErrOutOfRange)
	}
	col := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = m.data[i*m.c+j]
	}

	return vector.NewDenseFrom(col), nil
}

// PermuteRows swaps rows r1 and r2 in place.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) PermuteRows(r1, r2 int) error {
	if r1 < 0 || r1 >= m.r || r2 < 0 || r2 >= m.r {
		return denseErrorf(ctxPermute, r1, r2, mla.ErrOutOfRange)
	}
	a, b := m.data[r1*m.c:(r1+1)*m.c], m.data[r2*m.c:(r2+1)*m.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// PermuteColumns swaps columns c1 and c2 in place.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) PermuteColumns(c1, c2 int) error {
	if c1 < 0 || c1 >= m.c || c2 < 0 || c2 >= m.c {
		return denseErrorf(ctxPermute, c1, c2, mla.ErrOutOfRange)
	}
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		m.data[base+c1], m.data[base+c2] = m.data[base+c2], m.data[base+c1]
	}

	return nil
}

// SymmetricReorder applies the same permutation to rows and columns:
// afterwards element (p, q) holds the old element (order[p], order[q]).
// MAIN DESCRIPTION:
//   - Bandwidth-reducing relabeling (pair with reorder.CuthillMcKee).
//
// Errors:
//   - mla.ErrNonSquare, mla.ErrDimensionMismatch, mla.ErrInvalidPermutation.
//
// Complexity:
//   - Time O(n²), Space O(n²) (one scratch buffer).
func (m *Dense) SymmetricReorder(order []int) error {
	const op = "matrix.Dense." + ctxReorder
	if err := ValidateSquare(m); err != nil {
		return mla.Wrap(op, err)
	}
	if err := ValidatePermutation(order, m.r); err != nil {
		return mla.Wrap(op, err)
	}
	n := m.r
	out := make([]float64, n*n)
	var p, q int
	for p = 0; p < n; p++ {
		for q = 0; q < n; q++ {
			out[p*n+q] = m.data[order[p]*n+order[q]]
		}
	}
	m.data = out

	return nil
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Complexity: Time O(r*c), Space O(r*c) for formatting.
//
// AI-Hints:
//   - For large matrices prefer printing a few rows/cols or summarize.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Cursor returns a two-axis cursor visiting every cell (every cell is stored).
func (m *Dense) Cursor() Cursor { return &denseCursor{grid: newGrid(m.r, m.c), m: m} }

// RowCursor returns a row cursor over every cell, row by row.
func (m *Dense) RowCursor() RowCursor { return &denseRowCursor{m: m, row: -1, col: -1} }

// ---------- cursors ----------

type denseCursor struct {
	grid
	m *Dense
}

func (c *denseCursor) Reset()                { c.row, c.col = 0, 0 }
func (c *denseCursor) Element() float64      { return c.m.data[c.row*c.m.c+c.col] }
func (c *denseCursor) StartCurrentRowNN()    { c.col = 0 }
func (c *denseCursor) StartCurrentColumnNN() { c.row = 0 }
func (c *denseCursor) StartNextRowNN()       { c.row++; c.StartCurrentRowNN() }
func (c *denseCursor) StartNextColumnNN()    { c.col++; c.StartCurrentColumnNN() }

// denseRowCursor starts before the first row (row = -1) and before the first
// element of a row (col = -1).
type denseRowCursor struct {
	m        *Dense
	row, col int
}

func (c *denseRowCursor) Element() float64   { return c.m.data[c.row*c.m.c+c.col] }
func (c *denseRowCursor) CurrentRow() int    { return c.row }
func (c *denseRowCursor) CurrentColumn() int { return c.col }

func (c *denseRowCursor) SetElement(v float64) error {
	return c.m.Set(c.row, c.col, v)
}

func (c *denseRowCursor) HasNextNonNullRowElement() bool { return c.col+1 < c.m.c }
func (c *denseRowCursor) NextNonNullRowElement()         { c.col++ }
func (c *denseRowCursor) HasNextNonNullRow() bool        { return c.m.c > 0 && c.row+1 < c.m.r }
func (c *denseRowCursor) StartNextNonNullRow()           { c.row++; c.col = -1 }

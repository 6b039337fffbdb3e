// SPDX-License-Identifier: MIT

// Package matrix - StaticDense: row-major storage whose shape is fixed at
// construction. Behaves exactly like Dense except that Resize to any other
// shape fails with mla.ErrFixedShape.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/vector"
)

// StaticDense is a fixed-shape row-major matrix.
type StaticDense struct {
	d Dense
}

var (
	_ Matrix       = (*StaticDense)(nil)
	_ RowOriented  = (*StaticDense)(nil)
	_ RowMajor     = (*StaticDense)(nil)
	_ fmt.Stringer = (*StaticDense)(nil)
)

// NewStaticDense creates a rows×cols zero matrix whose shape can never change.
// Errors: mla.ErrInvalidDimensions.
func NewStaticDense(rows, cols int) (*StaticDense, error) {
	if err := checkShape("matrix.NewStaticDense", rows, cols); err != nil {
		return nil, err
	}

	return &StaticDense{d: Dense{r: rows, c: cols, data: make([]float64, rows*cols)}}, nil
}

func (m *StaticDense) Rows() int          { return m.d.r }
func (m *StaticDense) Cols() int          { return m.d.c }
func (m *StaticDense) IsSquare() bool     { return m.d.r == m.d.c }
func (m *StaticDense) RawData() []float64 { return m.d.data }
func (m *StaticDense) SetZero()           { m.d.SetZero() }
func (m *StaticDense) SetEye()            { m.d.SetEye() }
func (m *StaticDense) String() string     { return m.d.String() }

func (m *StaticDense) At(i, j int) (float64, error)        { return m.d.At(i, j) }
func (m *StaticDense) Set(i, j int, v float64) error       { return m.d.Set(i, j, v) }
func (m *StaticDense) Row(i int) (*vector.Dense, error)    { return m.d.Row(i) }
func (m *StaticDense) Column(j int) (*vector.Dense, error) { return m.d.Column(j) }

func (m *StaticDense) Update(i, j int, f func(old float64) float64) error {
	return m.d.Update(i, j, f)
}

// Resize zeroes the contents when the shape is unchanged; any other shape
// returns mla.ErrFixedShape and leaves the matrix untouched.
func (m *StaticDense) Resize(rows, cols int) error {
	if rows != m.d.r || cols != m.d.c {
		return mla.Errorf("matrix.StaticDense."+ctxResize, mla.ErrFixedShape,
			"%dx%d cannot become %dx%d", m.d.r, m.d.c, rows, cols)
	}
	m.d.SetZero()

	return nil
}

// Clone returns a deep copy with the same fixed shape.
func (m *StaticDense) Clone() Matrix {
	cp := m.d.Clone().(*Dense)

	return &StaticDense{d: *cp}
}

// Cursor visits every cell, like Dense.
func (m *StaticDense) Cursor() Cursor { return m.d.Cursor() }

// RowCursor visits every cell row by row, like Dense.
func (m *StaticDense) RowCursor() RowCursor { return m.d.RowCursor() }

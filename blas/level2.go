// SPDX-License-Identifier: MIT

// Package blas - Level-2 kernels (matrix/vector).
//
// Purpose:
//   - Gemv: y := alpha*A*x + beta*y for any Matrix and any Vector pair.
//   - Syr:  A := A + alpha*x*xᵀ, touching only pairs of stored x elements.
//
// Path selection in Gemv (first match wins):
//  1. matrix.RowMajor  - raw row slices dotted against x.
//  2. *matrix.CCS      - column scatter driven by x's stored elements.
//  3. COO / DOK        - single pass over stored triplets (Do).
//  4. RowOriented      - per-row merge of RowCursor against x's cursor.
//  5. anything else    - full Cursor walk.

package blas

import (
	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/matrix"
	"github.com/katalvlaran/mla/vector"
)

// tripletVisitor is satisfied by the assembly formats (COO, DOK).
type tripletVisitor interface {
	Do(f func(i, j int, v float64) bool)
}

// Gemv computes y := alpha*A*x + beta*y.
// MAIN DESCRIPTION:
//   - Row sums t_i = Σ_j A[i,j]*x_j are accumulated first, then every y_i is
//     written exactly once. With beta == 0 the old y is ignored (NaN in y does
//     not propagate).
//
// Behavior highlights:
//   - A *vector.Dense y whose size differs from A.Rows() is resized (its old
//     contents are then zero). Other y formats must match.
//   - Sparse y only gains a slot where the new value is nonzero.
//
// Errors:
//   - ErrNilArgument, ErrDimensionMismatch (A.Cols() != x.Size(), or
//     A.Rows() != y.Size() for non-Dense y).
//
// Complexity:
//   - Time O(stored(A) + n) on the sparse paths, O(r*c) on dense ones.
//   - Space O(r) scratch for the row sums.
func Gemv(alpha float64, a matrix.Matrix, x vector.Vector, beta float64, y vector.Vector) error {
	if a == nil {
		return mla.Errorf(opGemv, mla.ErrNilArgument, "matrix A is nil")
	}
	if err := checkVectors(opGemv, x, y); err != nil {
		return err
	}
	rows, cols := a.Rows(), a.Cols()
	if cols != x.Size() {
		return mla.Errorf(opGemv, mla.ErrDimensionMismatch, "A.Cols()=%d != x.Size()=%d", cols, x.Size())
	}
	if rows != y.Size() {
		dy, ok := y.(*vector.Dense)
		if !ok {
			return mla.Errorf(opGemv, mla.ErrDimensionMismatch, "A.Rows()=%d != y.Size()=%d", rows, y.Size())
		}
		if err := dy.Resize(rows); err != nil {
			return mla.Wrap(opGemv, err)
		}
	}

	t := rowProducts(a, x)

	if dy, ok := y.(*vector.Dense); ok {
		out := dy.RawData()
		for i := range out {
			if beta == 0 {
				out[i] = alpha * t[i]
			} else {
				out[i] = alpha*t[i] + beta*out[i]
			}
		}

		return nil
	}

	var (
		old, nv float64
		err     error
	)
	for i := 0; i < rows; i++ {
		if old, err = y.At(i); err != nil {
			return mla.Wrap(opGemv, err)
		}
		nv = alpha * t[i]
		if beta != 0 {
			nv += beta * old
		}
		if nv == 0 && old == 0 {
			continue // keep structural zeros structural
		}
		if err = y.Set(i, nv); err != nil {
			return mla.Wrap(opGemv, err)
		}
	}

	return nil
}

// rowProducts returns t with t[i] = Σ_j A[i,j]*x_j. Shapes are pre-validated.
func rowProducts(a matrix.Matrix, x vector.Vector) []float64 {
	rows, cols := a.Rows(), a.Cols()
	t := make([]float64, rows)
	var i int

	switch m := a.(type) {
	case matrix.RowMajor:
		raw := m.RawData()
		if dx, ok := x.(*vector.Dense); ok {
			xs := dx.RawData()
			var (
				j, off int
				sum    float64
			)
			for i = 0; i < rows; i++ {
				off = i * cols
				sum = 0
				for j = 0; j < cols; j++ {
					sum += raw[off+j] * xs[j]
				}
				t[i] = sum
			}

			return t
		}
		for i = 0; i < rows; i++ {
			t[i] = dotDense(raw[i*cols:(i+1)*cols], x.Cursor())
		}

		return t

	case *matrix.CCS:
		var xv float64
		scatter := func(r int, v float64) { t[r] += v * xv }
		for c := x.Cursor(); !c.AtEnd(); c.Next() {
			if xv = c.Element(); xv != 0 {
				m.DoColumn(c.Current(), scatter)
			}
		}

		return t

	case tripletVisitor:
		xs := denseView(x)
		m.Do(func(r, c int, v float64) bool {
			t[r] += v * xs[c]
			return true
		})

		return t

	case matrix.RowOriented:
		rc := m.RowCursor()
		xc := x.Cursor()
		for rc.HasNextNonNullRow() {
			rc.StartNextNonNullRow()
			t[rc.CurrentRow()] = mergeRow(rc, xc)
		}

		return t
	}

	xs := denseView(x)
	matrix.Walk(a.Cursor(), func(r, c int, v float64) bool {
		t[r] += v * xs[c]
		return true
	})

	return t
}

// mergeRow intersects the current row of rc with the stored elements of x.
// Both streams are sorted by column, so xc only ever moves forward.
func mergeRow(rc matrix.RowCursor, xc vector.Cursor) float64 {
	var (
		sum float64
		col int
	)
	xc.Reset()
	for rc.HasNextNonNullRowElement() {
		rc.NextNonNullRowElement()
		col = rc.CurrentColumn()
		for !xc.AtEnd() && xc.Current() < col {
			xc.Next()
		}
		if xc.AtEnd() {
			break
		}
		if xc.Current() == col {
			sum += rc.Element() * xc.Element()
		}
	}

	return sum
}

// denseView returns x as a flat slice; Dense vectors are shared, not copied.
func denseView(x vector.Vector) []float64 {
	if d, ok := x.(*vector.Dense); ok {
		return d.RawData()
	}
	xs := make([]float64, x.Size())
	for c := x.Cursor(); !c.AtEnd(); c.Next() {
		xs[c.Current()] = c.Element()
	}

	return xs
}

// Syr computes the symmetric rank-1 update A := A + alpha*x*xᵀ.
// MAIN DESCRIPTION:
//   - Outer loop over stored x_i, inner loop over stored x_j with j ≥ i;
//     each product updates (i,j) and, off the diagonal, (j,i) in one pass.
//   - Products equal to zero are skipped, so sparse A gains no zero slots.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare, ErrDimensionMismatch (A.Rows() != x.Size()),
//     ErrReadOnlyElement from a Diagonal A when x has two stored nonzeros.
//
// Complexity:
//   - Time O(k²) updates (k = stored elements of x), each costing the format's
//     Update; O(k²) flat adds for row-major A.
func Syr(alpha float64, x vector.Vector, a matrix.Matrix) error {
	if err := checkVectors(opSyr, x); err != nil {
		return err
	}
	if a == nil {
		return mla.Errorf(opSyr, mla.ErrNilArgument, "matrix A is nil")
	}
	if !a.IsSquare() {
		return mla.Errorf(opSyr, mla.ErrNonSquare, "A is %dx%d", a.Rows(), a.Cols())
	}
	n := a.Rows()
	if n != x.Size() {
		return mla.Errorf(opSyr, mla.ErrDimensionMismatch, "A.Rows()=%d != x.Size()=%d", n, x.Size())
	}
	if alpha == 0 {
		return nil
	}

	var (
		idx  []int
		vals []float64
	)
	for c := x.Cursor(); !c.AtEnd(); c.Next() {
		idx = append(idx, c.Current())
		vals = append(vals, c.Element())
	}

	var (
		p, q, i, j int
		d          float64
	)
	if rm, ok := a.(matrix.RowMajor); ok {
		raw := rm.RawData()
		for p = range idx {
			i = idx[p]
			for q = p; q < len(idx); q++ {
				j = idx[q]
				d = alpha * vals[p] * vals[q]
				raw[i*n+j] += d
				if i != j {
					raw[j*n+i] += d
				}
			}
		}

		return nil
	}

	add := func(old float64) float64 { return old + d }
	for p = range idx {
		i = idx[p]
		for q = p; q < len(idx); q++ {
			j = idx[q]
			if d = alpha * vals[p] * vals[q]; d == 0 {
				continue
			}
			if err := a.Update(i, j, add); err != nil {
				return mla.Wrap(opSyr, err)
			}
			if i != j {
				if err := a.Update(j, i, add); err != nil {
					return mla.Wrap(opSyr, err)
				}
			}
		}
	}

	return nil
}

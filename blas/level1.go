// SPDX-License-Identifier: MIT

// Package blas - Level-1 kernels (vector/vector).
//
// Purpose:
//   - Dot: two-cursor merge by index; zero-allocation when one side is Dense.
//   - Axpy/Scale: in-place updates that only touch stored elements of x.
//   - Asum/Nrm2: reductions over stored elements.
//
// Complexity quicksheet (n = Size, k = stored elements):
//   - Dot: O(kx + ky) merge, O(k) with a Dense side, O(n) both Dense.
//   - Axpy: O(kx) into Dense y, O(kx·ky) into sparse y (inserting slots).
//   - Scale/Asum/Nrm2: O(k).

package blas

import (
	"math"

	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/vector"
)

// ---------- operation tags ----------

const (
	opDot   = "blas.Dot"
	opAxpy  = "blas.Axpy"
	opScale = "blas.Scale"
	opAsum  = "blas.Asum"
	opNrm2  = "blas.Nrm2"
	opGemv  = "blas.Gemv"
	opSyr   = "blas.Syr"
	opGemm  = "blas.Gemm"
	opSyrk  = "blas.Syrk"
)

// checkVectors rejects nil operands; names are "x", "y", ... in argument order.
func checkVectors(op string, vs ...vector.Vector) error {
	for k, v := range vs {
		if v == nil {
			return mla.Errorf(op, mla.ErrNilArgument, "vector operand #%d is nil", k)
		}
	}

	return nil
}

// Dot returns xᵀy.
// MAIN DESCRIPTION:
//   - Walks both cursors in increasing index order. Matching indices
//     contribute their product and advance both; a trailing index advances
//     its own cursor only. Structural zeros are never visited.
//
// Implementation:
//   - Both *vector.Dense: straight loop over the raw buffers.
//   - One *vector.Dense: walk the other cursor and index the raw buffer.
//   - Otherwise: generic merge.
//
// Errors:
//   - ErrNilArgument, ErrDimensionMismatch (x.Size() != y.Size()).
//
// Complexity:
//   - Time O(kx + ky), Space O(1).
func Dot(x, y vector.Vector) (float64, error) {
	if err := checkVectors(opDot, x, y); err != nil {
		return 0, err
	}
	if x.Size() != y.Size() {
		return 0, mla.Errorf(opDot, mla.ErrDimensionMismatch, "x.Size()=%d != y.Size()=%d", x.Size(), y.Size())
	}

	dx, okX := x.(*vector.Dense)
	dy, okY := y.(*vector.Dense)
	switch {
	case okX && okY:
		var (
			i   int
			sum float64
			a   = dx.RawData()
			b   = dy.RawData()
		)
		for i = range a {
			sum += a[i] * b[i]
		}

		return sum, nil
	case okX:
		return dotDense(dx.RawData(), y.Cursor()), nil
	case okY:
		return dotDense(dy.RawData(), x.Cursor()), nil
	}

	return dotMerge(x.Cursor(), y.Cursor()), nil
}

// dotDense accumulates raw[i]*v over the stored elements of c.
func dotDense(raw []float64, c vector.Cursor) float64 {
	var sum float64
	for ; !c.AtEnd(); c.Next() {
		sum += raw[c.Current()] * c.Element()
	}

	return sum
}

// dotMerge is the generic sorted-stream intersection.
func dotMerge(cx, cy vector.Cursor) float64 {
	var (
		sum    float64
		ix, iy int
	)
	for !cx.AtEnd() && !cy.AtEnd() {
		ix, iy = cx.Current(), cy.Current()
		switch {
		case ix == iy:
			sum += cx.Element() * cy.Element()
			cx.Next()
			cy.Next()
		case ix < iy:
			cx.Next()
		default:
			cy.Next()
		}
	}

	return sum
}

// Axpy computes y := a*x + y in place.
// Only stored elements of x are read; a sparse y gains a slot for every
// stored index of x it did not hold yet.
// Errors: ErrNilArgument, ErrDimensionMismatch.
// Complexity: O(kx) for Dense y.
func Axpy(a float64, x, y vector.Vector) error {
	if err := checkVectors(opAxpy, x, y); err != nil {
		return err
	}
	if x.Size() != y.Size() {
		return mla.Errorf(opAxpy, mla.ErrDimensionMismatch, "x.Size()=%d != y.Size()=%d", x.Size(), y.Size())
	}
	if a == 0 {
		return nil
	}

	if dy, ok := y.(*vector.Dense); ok {
		out := dy.RawData()
		if dx, ok := x.(*vector.Dense); ok {
			for i, v := range dx.RawData() {
				out[i] += a * v
			}

			return nil
		}
		for c := x.Cursor(); !c.AtEnd(); c.Next() {
			out[c.Current()] += a * c.Element()
		}

		return nil
	}

	// x aliased to y already holds every slot, so no insert can move x's cursor.
	var v float64
	for c := x.Cursor(); !c.AtEnd(); c.Next() {
		v = a * c.Element()
		if err := y.Update(c.Current(), func(old float64) float64 { return old + v }); err != nil {
			return mla.Wrap(opAxpy, err)
		}
	}

	return nil
}

// Scale computes x := a*x over stored elements; structural zeros stay zero.
// Errors: ErrNilArgument.
// Complexity: O(k).
func Scale(a float64, x vector.Vector) error {
	if err := checkVectors(opScale, x); err != nil {
		return err
	}

	switch v := x.(type) {
	case *vector.Dense:
		scaleSlice(a, v.RawData())

		return nil
	case *vector.SparseCS:
		scaleSlice(a, v.Values())

		return nil
	}

	// Update on an existing slot never inserts, so the cursor stays valid.
	for c := x.Cursor(); !c.AtEnd(); c.Next() {
		if err := x.Update(c.Current(), func(old float64) float64 { return a * old }); err != nil {
			return mla.Wrap(opScale, err)
		}
	}

	return nil
}

func scaleSlice(a float64, buf []float64) {
	for i := range buf {
		buf[i] *= a
	}
}

// Asum returns Σ|x_i| over stored elements.
// Errors: ErrNilArgument.
func Asum(x vector.Vector) (float64, error) {
	if err := checkVectors(opAsum, x); err != nil {
		return 0, err
	}

	var sum float64
	if d, ok := x.(*vector.Dense); ok {
		for _, v := range d.RawData() {
			sum += math.Abs(v)
		}

		return sum, nil
	}
	for c := x.Cursor(); !c.AtEnd(); c.Next() {
		sum += math.Abs(c.Element())
	}

	return sum, nil
}

// Nrm2 returns the Euclidean norm ‖x‖₂.
// Implementation:
//   - Scaled sum of squares (LAPACK dnrm2 recurrence), so entries near
//     math.MaxFloat64 do not overflow and tiny entries do not underflow.
//
// Errors: ErrNilArgument.
// Complexity: O(k).
func Nrm2(x vector.Vector) (float64, error) {
	if err := checkVectors(opNrm2, x); err != nil {
		return 0, err
	}

	var (
		scale = 0.0
		ssq   = 1.0
		absv  float64
		r     float64
	)
	for c := x.Cursor(); !c.AtEnd(); c.Next() {
		if c.Element() == 0 {
			continue
		}
		absv = math.Abs(c.Element())
		if scale < absv {
			r = scale / absv
			ssq = 1 + ssq*r*r
			scale = absv
		} else {
			r = absv / scale
			ssq += r * r
		}
	}
	if scale == 0 {
		return 0, nil
	}

	return scale * math.Sqrt(ssq), nil
}

// SPDX-License-Identifier: MIT

// Package blas - Level-3 kernels (matrix/matrix).
//
// Both kernels are dense-only: every operand is a matrix.RowMajor
// (*matrix.Dense or *matrix.StaticDense) and is accessed through RawData.
//
// Determinism:
//   - Fixed loop orders; Gemm runs i→k→j over row-major buffers and skips
//     zero A[i,k], Syrk accumulates each inner product left to right.

package blas

import (
	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/matrix"
)

func checkRowMajor(op string, ms ...matrix.RowMajor) error {
	for k, m := range ms {
		if m == nil {
			return mla.Errorf(op, mla.ErrNilArgument, "matrix operand #%d is nil", k)
		}
	}

	return nil
}

// scaleInPlace multiplies buf by beta; beta == 0 overwrites (NaN-safe).
func scaleInPlace(beta float64, buf []float64) {
	switch beta {
	case 1:
	case 0:
		clear(buf)
	default:
		scaleSlice(beta, buf)
	}
}

// Gemm computes C := alpha*A*B + beta*C.
// MAIN DESCRIPTION:
//   - Validates A.Cols()==B.Rows(), C.Rows()==A.Rows(), C.Cols()==B.Cols().
//   - Scales C by beta first, then adds alpha*A[i,k]*B[k,j] row by row.
//
// Errors:
//   - ErrNilArgument, ErrDimensionMismatch (naming the offending pair).
//
// Complexity:
//   - Time O(rows(A)·cols(A)·cols(B)), Space O(1).
//
// AI-Hints:
//   - C must not alias A or B; the kernel reads A and B while writing C.
func Gemm(alpha float64, a, b matrix.RowMajor, beta float64, c matrix.RowMajor) error {
	if err := checkRowMajor(opGemm, a, b, c); err != nil {
		return err
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	switch {
	case aCols != b.Rows():
		return mla.Errorf(opGemm, mla.ErrDimensionMismatch, "A.Cols()=%d != B.Rows()=%d", aCols, b.Rows())
	case c.Rows() != aRows:
		return mla.Errorf(opGemm, mla.ErrDimensionMismatch, "C.Rows()=%d != A.Rows()=%d", c.Rows(), aRows)
	case c.Cols() != bCols:
		return mla.Errorf(opGemm, mla.ErrDimensionMismatch, "C.Cols()=%d != B.Cols()=%d", c.Cols(), bCols)
	}

	da, db, dc := a.RawData(), b.RawData(), c.RawData()
	scaleInPlace(beta, dc)
	if alpha == 0 {
		return nil
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetC int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetC = i * bCols
		for k = 0; k < aCols; k++ {
			av = alpha * da[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				dc[rowOffsetC+j] += av * db[rowOffsetB+j]
			}
		}
	}

	return nil
}

// Syrk computes the symmetric rank-k update C := alpha*A*Aᵀ + beta*C.
// MAIN DESCRIPTION:
//   - For every i and every j ≥ i the inner product s = ⟨A[i,:], A[j,:]⟩ is
//     computed once; C[i,j] and its mirror C[j,i] each receive alpha*s on top
//     of their own beta-scaled value.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare (C), ErrDimensionMismatch (A.Rows() != C.Rows()).
//
// Complexity:
//   - Time O(n²·k/2) for A n×k, Space O(1).
func Syrk(alpha float64, a matrix.RowMajor, beta float64, c matrix.RowMajor) error {
	if err := checkRowMajor(opSyrk, a, c); err != nil {
		return err
	}
	if !c.IsSquare() {
		return mla.Errorf(opSyrk, mla.ErrNonSquare, "C is %dx%d", c.Rows(), c.Cols())
	}
	n, k := a.Rows(), a.Cols()
	if n != c.Rows() {
		return mla.Errorf(opSyrk, mla.ErrDimensionMismatch, "A.Rows()=%d != C.Rows()=%d", n, c.Rows())
	}

	da, dc := a.RawData(), c.RawData()
	scaleInPlace(beta, dc)
	if alpha == 0 {
		return nil
	}

	var (
		i, j, p    int
		s          float64
		rowI, rowJ []float64
	)
	for i = 0; i < n; i++ {
		rowI = da[i*k : (i+1)*k]
		for j = i; j < n; j++ {
			rowJ = da[j*k : (j+1)*k]
			s = 0
			for p = 0; p < k; p++ {
				s += rowI[p] * rowJ[p]
			}
			s *= alpha
			dc[i*n+j] += s
			if i != j {
				dc[j*n+i] += s
			}
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package solvers - Cholesky factorization A = L·Lᵀ and triangular solves.
//
// Purpose:
//   - Cholesky:         dense recurrence for any square Matrix (row-major fast path).
//   - CholeskyCRS:      the same recurrence on CRS rows, merging two sorted
//     column lists per inner product; L is returned as CRS.
//   - CholeskyDiagonal: elementwise square root.
//   - ForwardSubstitution / BackSubstitution: L·y = b, then Lᵀ·x = y.
//
// Only the lower triangle of A (including the diagonal) is read; symmetry is
// assumed, not checked. A pivot S(j) that is not strictly positive (or NaN)
// stops the factorization with ErrNotPositiveDefinite.

package solvers

import (
	"math"

	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/matrix"
	"github.com/katalvlaran/mla/vector"
)

const (
	opCholesky      = "solvers.Cholesky"
	opCholeskyCRS   = "solvers.CholeskyCRS"
	opCholeskyDiag  = "solvers.CholeskyDiagonal"
	opForward       = "solvers.ForwardSubstitution"
	opBack          = "solvers.BackSubstitution"
	opSolveCholesky = "solvers.SolveCholesky"
)

func notPD(op string, j int, s float64) error {
	return mla.Errorf(op, mla.ErrNotPositiveDefinite, "pivot S(%d)=%g", j, s)
}

// Cholesky factors a symmetric positive-definite A into a dense lower
// triangular L with A = L·Lᵀ.
// MAIN DESCRIPTION:
//   - For each column j: S(j) = A[j,j] - Σ_{k<j} L[j,k]²; L[j,j] = √S(j);
//     then L[i,j] = (A[i,j] - Σ_{k<j} L[i,k]·L[j,k]) / L[j,j] for i > j.
//
// Implementation:
//   - matrix.RowMajor A is read from its flat buffer; other formats via At.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare, ErrNotPositiveDefinite.
//
// Complexity:
//   - Time O(n³/3), Space O(n²) for L.
func Cholesky(a matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, mla.Wrap(opCholesky, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, mla.Wrap(opCholesky, err)
	}

	n := a.Rows()
	l, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, mla.Wrap(opCholesky, err)
	}
	ld := l.RawData()

	at := func(i, j int) (float64, error) { return a.At(i, j) }
	if rm, ok := a.(matrix.RowMajor); ok {
		raw := rm.RawData()
		at = func(i, j int) (float64, error) { return raw[i*n+j], nil }
	}

	var (
		i, j, k int
		s, ljj  float64
		rowI    []float64
		rowJ    []float64
	)
	for j = 0; j < n; j++ {
		rowJ = ld[j*n : j*n+j]
		if s, err = at(j, j); err != nil {
			return nil, mla.Wrap(opCholesky, err)
		}
		for k = range rowJ {
			s -= rowJ[k] * rowJ[k]
		}
		if !(s > 0) {
			return nil, notPD(opCholesky, j, s)
		}
		ljj = math.Sqrt(s)
		ld[j*n+j] = ljj

		for i = j + 1; i < n; i++ {
			if s, err = at(i, j); err != nil {
				return nil, mla.Wrap(opCholesky, err)
			}
			rowI = ld[i*n : i*n+j]
			for k = range rowI {
				s -= rowI[k] * rowJ[k]
			}
			ld[i*n+j] = s / ljj
		}
	}

	return l, nil
}

// CholeskyCRS factors a CRS matrix row by row and returns L as CRS.
// MAIN DESCRIPTION:
//   - Row i of L is built left to right. For j < i:
//     L[i,j] = (A[i,j] - ⟨L[i,:j], L[j,:j]⟩) / L[j,j], where the inner
//     product merges the two sorted column lists. Entries that come out
//     exactly zero are not stored.
//   - The diagonal closes the row: L[i,i] = √(A[i,i] - ‖L[i,:i]‖²).
//
// Behavior highlights:
//   - Fill-in is stored as it appears; the result satisfies the CRS
//     invariants and is validated on construction.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare, ErrNotPositiveDefinite.
//
// Complexity:
//   - Time O(n² + Σ merge lengths), Space O(nnz(L)).
func CholeskyCRS(a *matrix.CRS) (*matrix.CRS, error) {
	if a == nil {
		return nil, mla.Errorf(opCholeskyCRS, mla.ErrNilArgument, "matrix is nil")
	}
	if !a.IsSquare() {
		return nil, mla.Errorf(opCholeskyCRS, mla.ErrNonSquare, "A is %dx%d", a.Rows(), a.Cols())
	}

	n := a.Rows()
	aPtr, aIdx, aVal := a.Arrays()
	var (
		rowPtr = make([]int, 1, n+1)
		colIdx []int
		vals   []float64
		diag   = make([]float64, n)
	)

	var (
		i, j, lo, p, end int
		aij, s           float64
	)
	for i = 0; i < n; i++ {
		lo = len(colIdx)
		p, end = aPtr[i], aPtr[i+1]
		for j = 0; j < i; j++ {
			for p < end && aIdx[p] < j {
				p++
			}
			aij = 0
			if p < end && aIdx[p] == j {
				aij = aVal[p]
			}
			if aij == 0 && len(colIdx) == lo {
				continue // nothing to subtract yet and nothing to start from
			}
			s = aij - mergeDot(colIdx[lo:], vals[lo:], colIdx[rowPtr[j]:rowPtr[j+1]], vals[rowPtr[j]:rowPtr[j+1]])
			if s != 0 {
				colIdx = append(colIdx, j)
				vals = append(vals, s/diag[j])
			}
		}

		for p < end && aIdx[p] < i {
			p++
		}
		s = 0
		if p < end && aIdx[p] == i {
			s = aVal[p]
		}
		for _, v := range vals[lo:] {
			s -= v * v
		}
		if !(s > 0) {
			return nil, notPD(opCholeskyCRS, i, s)
		}
		diag[i] = math.Sqrt(s)
		colIdx = append(colIdx, i)
		vals = append(vals, diag[i])
		rowPtr = append(rowPtr, len(colIdx))
	}

	l, err := matrix.NewCRSFromArrays(n, n, rowPtr, colIdx, vals)
	if err != nil {
		return nil, mla.Wrap(opCholeskyCRS, err)
	}

	return l, nil
}

// mergeDot is the sparse inner product of two sorted (index, value) lists.
func mergeDot(ia []int, va []float64, ib []int, vb []float64) float64 {
	var (
		p, q int
		sum  float64
	)
	for p < len(ia) && q < len(ib) {
		switch {
		case ia[p] == ib[q]:
			sum += va[p] * vb[q]
			p++
			q++
		case ia[p] < ib[q]:
			p++
		default:
			q++
		}
	}

	return sum
}

// CholeskyDiagonal returns L = diag(√d_i).
// Errors: ErrNilArgument, ErrNonSquare, ErrNotPositiveDefinite.
func CholeskyDiagonal(a *matrix.Diagonal) (*matrix.Diagonal, error) {
	if a == nil {
		return nil, mla.Errorf(opCholeskyDiag, mla.ErrNilArgument, "matrix is nil")
	}
	if !a.IsSquare() {
		return nil, mla.Errorf(opCholeskyDiag, mla.ErrNonSquare, "A is %dx%d", a.Rows(), a.Cols())
	}

	d := a.Diag()
	out := make([]float64, len(d))
	for i, v := range d {
		if !(v > 0) {
			return nil, notPD(opCholeskyDiag, i, v)
		}
		out[i] = math.Sqrt(v)
	}

	return matrix.NewDiagonalFrom(out), nil
}

// checkTriangular validates a square L and vectors of its size.
func checkTriangular(op string, l matrix.Matrix, in, out *vector.Dense) error {
	return checkSystem(op, l, out, in)
}

// ForwardSubstitution solves L·y = b for lower triangular L.
// Entries above the diagonal are ignored. y may alias b.
// Errors: ErrNilArgument, ErrNonSquare, ErrDimensionMismatch,
// ErrSingular (zero diagonal entry).
// Complexity: O(nnz(L)) for CRS and Diagonal, O(n²) otherwise.
func ForwardSubstitution(l matrix.Matrix, b, y *vector.Dense) error {
	if err := checkTriangular(opForward, l, b, y); err != nil {
		return err
	}
	n := b.Size()
	bs, ys := b.RawData(), y.RawData()

	var (
		i, k int
		s, d float64
		err  error
	)
	switch m := l.(type) {
	case *matrix.Diagonal:
		for i, d = range m.Diag() {
			if d == 0 {
				return mla.Errorf(opForward, mla.ErrSingular, "L[%d,%d]=0", i, i)
			}
			ys[i] = bs[i] / d
		}

		return nil

	case *matrix.CRS:
		ptr, idx, val := m.Arrays()
		for i = 0; i < n; i++ {
			s, d = bs[i], 0
			for k = ptr[i]; k < ptr[i+1] && idx[k] <= i; k++ {
				if idx[k] == i {
					d = val[k]
					break
				}
				s -= val[k] * ys[idx[k]]
			}
			if d == 0 {
				return mla.Errorf(opForward, mla.ErrSingular, "L[%d,%d]=0", i, i)
			}
			ys[i] = s / d
		}

		return nil
	}

	var lik float64
	for i = 0; i < n; i++ {
		s = bs[i]
		for k = 0; k < i; k++ {
			if lik, err = l.At(i, k); err != nil {
				return mla.Wrap(opForward, err)
			}
			s -= lik * ys[k]
		}
		if d, err = l.At(i, i); err != nil {
			return mla.Wrap(opForward, err)
		}
		if d == 0 {
			return mla.Errorf(opForward, mla.ErrSingular, "L[%d,%d]=0", i, i)
		}
		ys[i] = s / d
	}

	return nil
}

// BackSubstitution solves Lᵀ·x = y for lower triangular L, reading L by rows:
// once x_i is final, L[i,k]·x_i is removed from every x_k with k < i.
// Entries above the diagonal are ignored. x may alias y.
// Errors: ErrNilArgument, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
// Complexity: O(nnz(L)) for CRS and Diagonal, O(n²) otherwise.
func BackSubstitution(l matrix.Matrix, y, x *vector.Dense) error {
	if err := checkTriangular(opBack, l, y, x); err != nil {
		return err
	}
	n := y.Size()
	xs := x.RawData()
	if x != y {
		copy(xs, y.RawData())
	}

	var (
		i, k   int
		d, lik float64
		err    error
	)
	switch m := l.(type) {
	case *matrix.Diagonal:
		for i, d = range m.Diag() {
			if d == 0 {
				return mla.Errorf(opBack, mla.ErrSingular, "L[%d,%d]=0", i, i)
			}
			xs[i] /= d
		}

		return nil

	case *matrix.CRS:
		ptr, idx, val := m.Arrays()
		var hi int
		for i = n - 1; i >= 0; i-- {
			d = 0
			hi = ptr[i]
			for hi < ptr[i+1] && idx[hi] < i {
				hi++
			}
			if hi < ptr[i+1] && idx[hi] == i {
				d = val[hi]
			}
			if d == 0 {
				return mla.Errorf(opBack, mla.ErrSingular, "L[%d,%d]=0", i, i)
			}
			xs[i] /= d
			for k = ptr[i]; k < hi; k++ {
				xs[idx[k]] -= val[k] * xs[i]
			}
		}

		return nil
	}

	for i = n - 1; i >= 0; i-- {
		if d, err = l.At(i, i); err != nil {
			return mla.Wrap(opBack, err)
		}
		if d == 0 {
			return mla.Errorf(opBack, mla.ErrSingular, "L[%d,%d]=0", i, i)
		}
		xs[i] /= d
		for k = 0; k < i; k++ {
			if lik, err = l.At(i, k); err != nil {
				return mla.Wrap(opBack, err)
			}
			xs[k] -= lik * xs[i]
		}
	}

	return nil
}

// SolveCholesky factors A with the variant matching its format (CRS,
// Diagonal, otherwise dense) and solves A·x = b by forward then back
// substitution. b is not modified.
// Errors: as Cholesky* plus ErrDimensionMismatch for x or b.
func SolveCholesky(a matrix.Matrix, x, b *vector.Dense) error {
	if err := checkSystem(opSolveCholesky, a, x, b); err != nil {
		return err
	}

	var (
		l   matrix.Matrix
		err error
	)
	switch m := a.(type) {
	case *matrix.CRS:
		l, err = CholeskyCRS(m)
	case *matrix.Diagonal:
		l, err = CholeskyDiagonal(m)
	default:
		l, err = Cholesky(a)
	}
	if err != nil {
		return mla.Wrap(opSolveCholesky, err)
	}

	if err = ForwardSubstitution(l, b, x); err != nil {
		return mla.Wrap(opSolveCholesky, err)
	}
	if err = BackSubstitution(l, x, x); err != nil {
		return mla.Wrap(opSolveCholesky, err)
	}

	return nil
}

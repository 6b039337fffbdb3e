// SPDX-License-Identifier: MIT

// Package solvers - direct solve of a CCS system through a Backend.
//
// Purpose:
//   - Hand the three CCS arrays (column pointers, row indices, values) to an
//     opaque factorization routine, with 64-bit index arrays as external
//     sparse solvers expect.
//   - Map any backend failure to StatusFailure instead of an error.
//
// LUBackend is the built-in pure-Go backend: the CCS arrays are scattered
// into a dense buffer and factored by Doolittle LU without pivoting.

package solvers

import (
	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/matrix"
	"github.com/katalvlaran/mla/vector"
)

const opLU = "solvers.LUBackend"

// Backend factors and solves one n×n system given in compressed-column form.
//   - colPtr has n+1 entries; rows of column j are rowIdx[colPtr[j]:colPtr[j+1]].
//   - b is read-only; x (len n) receives the solution.
//
// Returning a non-nil error marks the solve as failed; x is then unspecified.
type Backend interface {
	Solve(n int, colPtr, rowIdx []int64, values, b, x []float64) error
}

// LUBackend solves by dense Doolittle LU (unit-diagonal L, upper U) with no
// pivoting; a zero pivot U[i,i] fails with ErrSingular.
// Complexity: Time O(n³), Space O(n²). Suited to small and moderate n.
type LUBackend struct{}

var _ Backend = LUBackend{}

// Solve implements Backend.
func (LUBackend) Solve(n int, colPtr, rowIdx []int64, values, b, x []float64) error {
	if len(colPtr) != n+1 || len(b) != n || len(x) != n || len(rowIdx) != len(values) {
		return mla.Errorf(opLU, mla.ErrDimensionMismatch,
			"n=%d len(colPtr)=%d len(b)=%d len(x)=%d", n, len(colPtr), len(b), len(x))
	}

	// Scatter CCS into a row-major buffer; LU is computed in place
	// (strict lower part holds L, upper part holds U).
	lu := make([]float64, n*n)
	var (
		i, j, k int
		p       int64
	)
	for j = 0; j < n; j++ {
		for p = colPtr[j]; p < colPtr[j+1]; p++ {
			i = int(rowIdx[p])
			if i < 0 || i >= n {
				return mla.Errorf(opLU, mla.ErrCorruptStructure, "row index %d outside [0,%d)", i, n)
			}
			lu[i*n+j] = values[p]
		}
	}

	var (
		sum, pivot float64
		baseI      int
		baseJ      int
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += lu[baseI+k] * lu[k*n+j]
			}
			lu[baseI+j] -= sum
		}

		pivot = lu[baseI+i]
		if pivot == 0 {
			return mla.Errorf(opLU, mla.ErrSingular, "zero pivot U[%d,%d]", i, i)
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			sum = 0
			for k = 0; k < i; k++ {
				sum += lu[baseJ+k] * lu[k*n+i]
			}
			lu[baseJ+i] = (lu[baseJ+i] - sum) / pivot
		}
	}

	// L·y = b (unit diagonal), y stored in x
	for i = 0; i < n; i++ {
		sum = b[i]
		baseI = i * n
		for k = 0; k < i; k++ {
			sum -= lu[baseI+k] * x[k]
		}
		x[i] = sum
	}
	// U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		baseI = i * n
		for k = i + 1; k < n; k++ {
			sum -= lu[baseI+k] * x[k]
		}
		x[i] = sum / lu[baseI+i]
	}

	return nil
}

// Direct solves A·x = b for a CCS matrix through the configured Backend
// (WithBackend; LUBackend by default).
// MAIN DESCRIPTION:
//   - Exports A's arrays with 64-bit indices, calls Backend.Solve on a scratch
//     copy of x, and commits the solution only on success.
//
// Behavior highlights:
//   - Backend errors give StatusFailure with Result.Err set; x is unchanged.
//   - Success gives StatusConverged with Iterations == 0.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare, ErrDimensionMismatch (preconditions only).
func Direct(a *matrix.CCS, x, b *vector.Dense, opts ...Option) (Result, error) {
	if a == nil {
		return Result{}, mla.Errorf(opDirect, mla.ErrNilArgument, "matrix A is nil")
	}
	if err := checkSystem(opDirect, a, x, b); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts...)

	n := a.Rows()
	colPtr, rowIdx, values := a.Int64Arrays()
	out := make([]float64, n)
	if err := o.backend.Solve(n, colPtr, rowIdx, values, b.RawData(), out); err != nil {
		o.logger.Warn().Err(err).Int("n", n).Str("solver", "direct").Msg("backend failed")

		return Result{Status: StatusFailure, Err: err}, nil
	}
	copy(x.RawData(), out)
	o.logger.Info().Int("n", n).Int("nnz", a.NNZ()).Str("solver", "direct").Msg("solved")

	return Result{Status: StatusConverged}, nil
}

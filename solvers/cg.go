// SPDX-License-Identifier: MIT

// Package solvers composes the blas kernels into complete solves of A·x = b:
//   - CG: Conjugate Gradient for symmetric positive-definite A in any format.
//   - Cholesky family: A = L·Lᵀ for dense, CRS and diagonal A, followed by
//     forward and back substitution.
//   - Direct: factorization of a CCS matrix through a pluggable Backend.
//
// Precondition violations are returned as errors (mla sentinels).
// Running out of iterations or a backend failure is reported through
// Result.Status instead, so callers can retry with other settings.
package solvers

import (
	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/blas"
	"github.com/katalvlaran/mla/matrix"
	"github.com/katalvlaran/mla/vector"
)

const (
	opCG     = "solvers.CG"
	opDirect = "solvers.Direct"
)

// checkSystem validates A square, A.Cols()==b.Size() and x.Size()==b.Size().
func checkSystem(op string, a matrix.Matrix, x, b *vector.Dense) error {
	switch {
	case a == nil:
		return mla.Errorf(op, mla.ErrNilArgument, "matrix A is nil")
	case x == nil || b == nil:
		return mla.Errorf(op, mla.ErrNilArgument, "x or b is nil")
	case !a.IsSquare():
		return mla.Errorf(op, mla.ErrNonSquare, "A is %dx%d", a.Rows(), a.Cols())
	case a.Cols() != b.Size():
		return mla.Errorf(op, mla.ErrDimensionMismatch, "A.Cols()=%d != b.Size()=%d", a.Cols(), b.Size())
	case x.Size() != b.Size():
		return mla.Errorf(op, mla.ErrDimensionMismatch, "x.Size()=%d != b.Size()=%d", x.Size(), b.Size())
	}

	return nil
}

// CG solves A·x = b by Conjugate Gradient, updating x in place.
// MAIN DESCRIPTION:
//   - r := b - A·x, p := r, rr := rᵀr; then per step
//     Ap := A·p, α := rr / pᵀAp, x += α·p, r -= α·Ap, rr' := rᵀr;
//     stop when rr' < delta, else p := r + (rr'/rr)·p.
//
// Behavior highlights:
//   - delta bounds the SQUARED residual norm: pass tol² for a norm tolerance.
//   - x is the starting guess (warm start); a zero x starts from r = b.
//   - If the starting residual already satisfies rr < delta the result is
//     StatusConverged with Iterations == 0 and x untouched.
//   - pᵀAp <= 0 means A is not positive definite along p: StatusFailure with
//     Err wrapping ErrNotPositiveDefinite.
//   - maxIter steps without convergence: StatusExceeded (not an error).
//
// Errors:
//   - ErrNilArgument, ErrNonSquare, ErrDimensionMismatch,
//     ErrInvalidArgument (delta < 0 or NaN, maxIter < 0).
//
// Complexity:
//   - Per step one Gemv plus O(n) vector work; Space O(n) for r, p, Ap.
//
// AI-Hints:
//   - Pick a storage format with a cheap Gemv (CRS, CCS, Dense) for A.
//   - Attach WithLogger(l) with l at Debug level to trace rr per step.
func CG(a matrix.Matrix, x, b *vector.Dense, delta float64, maxIter int, opts ...Option) (Result, error) {
	if err := checkSystem(opCG, a, x, b); err != nil {
		return Result{}, err
	}
	if !(delta >= 0) {
		return Result{}, mla.Errorf(opCG, mla.ErrInvalidArgument, "delta=%g must be >= 0", delta)
	}
	if maxIter < 0 {
		return Result{}, mla.Errorf(opCG, mla.ErrInvalidArgument, "maxIter=%d must be >= 0", maxIter)
	}
	o := gatherOptions(opts...)
	log := o.logger.With().Str("solver", "cg").Int("n", b.Size()).Logger()

	n := b.Size()
	r := b.Clone().(*vector.Dense)
	if err := blas.Gemv(-1, a, x, 1, r); err != nil {
		return Result{}, mla.Wrap(opCG, err)
	}
	p := r.Clone().(*vector.Dense)
	ap, err := vector.NewDense(n)
	if err != nil {
		return Result{}, mla.Wrap(opCG, err)
	}

	rr, _ := blas.Dot(r, r)
	res := Result{Status: StatusInit, Residual: rr}
	if rr < delta {
		res.Status = StatusConverged
		log.Info().Int("iterations", 0).Float64("rr", rr).Msg("converged at start")

		return res, nil
	}

	var (
		pAp, alpha, rrNew float64
		it                int
	)
	res.Status = StatusIterating
	for it = 1; it <= maxIter; it++ {
		if err = blas.Gemv(1, a, p, 0, ap); err != nil {
			return res, mla.Wrap(opCG, err)
		}
		pAp, _ = blas.Dot(p, ap)
		if !(pAp > 0) {
			res.Status = StatusFailure
			res.Iterations = it
			res.Err = mla.Errorf(opCG, mla.ErrNotPositiveDefinite, "pᵀAp=%g at step %d", pAp, it)
			log.Warn().Err(res.Err).Int("iterations", it).Msg("breakdown")

			return res, nil
		}
		alpha = rr / pAp

		_ = blas.Axpy(alpha, p, x)
		_ = blas.Axpy(-alpha, ap, r)
		rrNew, _ = blas.Dot(r, r)
		log.Debug().Int("iteration", it).Float64("rr", rrNew).Float64("alpha", alpha).Msg("step")

		res.Iterations = it
		res.Residual = rrNew
		if rrNew < delta {
			res.Status = StatusConverged
			log.Info().Int("iterations", it).Float64("rr", rrNew).Msg("converged")

			return res, nil
		}

		// p := r + (rr'/rr)·p
		_ = blas.Scale(rrNew/rr, p)
		_ = blas.Axpy(1, r, p)
		rr = rrNew
	}

	res.Status = StatusExceeded
	log.Warn().Int("iterations", maxIter).Float64("rr", rr).Float64("delta", delta).Msg("iteration budget exhausted")

	return res, nil
}

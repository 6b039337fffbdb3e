// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mla/blas"
	"github.com/katalvlaran/mla/internal/config"
	"github.com/katalvlaran/mla/internal/logging"
	"github.com/katalvlaran/mla/matrix"
	"github.com/katalvlaran/mla/mmio"
	"github.com/katalvlaran/mla/reorder"
	"github.com/katalvlaran/mla/solvers"
	"github.com/katalvlaran/mla/vector"
)

// Outcome is the summary of one solved system.
type Outcome struct {
	Name       string
	Status     solvers.Status
	Iterations int
	Residual   float64 // ‖b - A·x‖₂ of the committed x
	Bandwidth  int     // of A as solved (after reordering, if any)
	X          []float64
}

// run solves every system of cfg with at most cfg.Workers in flight.
// Each goroutine owns its matrices and vectors and writes only its own slot
// of the result slices.
// A failing system does not cancel the others; their errors are joined.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) ([]Outcome, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	var (
		outcomes = make([]Outcome, len(cfg.Systems))
		errs     = make([]error, len(cfg.Systems))
	)
	for i, sys := range cfg.Systems {
		i, sys := i, sys
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sl := log.With().Str("system", sys.Name).Str("job", logging.ShortID()).Logger()
			out, err := solveSystem(sys, sl)
			if err != nil {
				sl.Error().Err(err).Msg("system failed")
				errs[i] = fmt.Errorf("%s: %w", sys.Name, err)
			}
			outcomes[i] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	return outcomes, errors.Join(errs...)
}

// solveSystem loads A into a DOK, optionally reorders it, converts it to the
// configured format and solves A·x = rhs·1.
func solveSystem(sys config.SystemConfig, log zerolog.Logger) (Outcome, error) {
	out := Outcome{Name: sys.Name, Status: solvers.StatusInit}

	dok, err := matrix.NewDOK(1, 1)
	if err != nil {
		return out, err
	}
	h, err := mmio.ReadFile(sys.Matrix, dok)
	if err != nil {
		return out, err
	}
	if !dok.IsSquare() {
		return out, fmt.Errorf("matrix is %dx%d, not square", h.Rows, h.Cols)
	}
	n := h.Rows
	log.Debug().Int("n", n).Int("nnz", dok.NNZ()).Str("symmetry", h.Symmetry.String()).Msg("loaded")

	var order []int
	if sys.Reorder {
		if order, err = reorder.CuthillMcKee(dok); err != nil {
			return out, err
		}
		if err = dok.SymmetricReorder(order); err != nil {
			return out, err
		}
	}
	if out.Bandwidth, err = reorder.Bandwidth(dok); err != nil {
		return out, err
	}

	f, err := matrix.ParseFormat(sys.Format)
	if err != nil {
		return out, err
	}
	a, err := matrix.New(f, n, n)
	if err != nil {
		return out, err
	}
	if err = matrix.Convert(a, dok); err != nil {
		return out, err
	}

	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = sys.RHS
	}
	b := vector.NewDenseFrom(rhs)
	x, err := vector.NewDense(n)
	if err != nil {
		return out, err
	}

	var res solvers.Result
	switch sys.Solver {
	case "cg":
		res, err = solvers.CG(a, x, b, sys.Tolerance*sys.Tolerance, sys.MaxIterations, solvers.WithLogger(log))
	case "cholesky":
		res = solvers.Result{Status: solvers.StatusConverged}
		err = solvers.SolveCholesky(a, x, b)
	case "lu":
		ccs, ok := a.(*matrix.CCS)
		if !ok {
			return out, fmt.Errorf("solver lu needs ccs storage, got %s", f)
		}
		res, err = solvers.Direct(ccs, x, b, solvers.WithLogger(log))
	default:
		return out, fmt.Errorf("unknown solver %q", sys.Solver)
	}
	if err != nil {
		return out, err
	}
	out.Status = res.Status
	out.Iterations = res.Iterations
	if !res.OK() {
		if res.Err != nil {
			return out, res.Err
		}
		return out, fmt.Errorf("solver stopped with status %s after %d iterations", res.Status, res.Iterations)
	}

	// r := b - A·x
	r := b.Clone().(*vector.Dense)
	if err = blas.Gemv(-1, a, x, 1, r); err != nil {
		return out, err
	}
	if out.Residual, err = blas.Nrm2(r); err != nil {
		return out, err
	}

	out.X = x.RawData()
	if order != nil {
		// order[new] = old
		orig := make([]float64, n)
		for k, old := range order {
			orig[old] = out.X[k]
		}
		out.X = orig
	}

	log.Info().
		Str("solver", sys.Solver).
		Str("format", f.String()).
		Str("status", res.Status.String()).
		Int("iterations", res.Iterations).
		Float64("residual", out.Residual).
		Int("bandwidth", out.Bandwidth).
		Msg("solved")

	return out, nil
}

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/internal/config"
	"github.com/katalvlaran/mla/solvers"
)

// A = [[4,1,0],[1,3,1],[0,1,2]], A·x = 1 has x = [2/9, 1/9, 4/9].
const tridiag = `%%MatrixMarket matrix coordinate real symmetric
% lower triangle only
3 3 5
1 1 4
2 1 1
2 2 3
3 2 1
3 3 2
`

const indefinite = `%%MatrixMarket matrix coordinate real general
2 2 4
1 1 1
1 2 2
2 1 2
2 2 1
`

var tridiagX = []float64{2.0 / 9, 1.0 / 9, 4.0 / 9}

func writeMatrix(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func system(name, path, solver, format string) config.SystemConfig {
	s := config.SystemConfig{Name: name, Matrix: path, Solver: solver, Format: format}
	config.SystemDefaults(&s)

	return s
}

func TestSolveSystem_AllSolvers(t *testing.T) {
	path := writeMatrix(t, "tridiag.mtx", tridiag)

	cases := []config.SystemConfig{
		system("cg-crs", path, "cg", "crs"),
		system("cg-dok", path, "cg", "dok"),
		system("cg-coo", path, "cg", "coo"),
		system("cholesky-dense", path, "cholesky", "dense"),
		system("cholesky-crs", path, "cholesky", "crs"),
		system("lu-ccs", path, "lu", "ccs"),
	}
	for _, sys := range cases {
		t.Run(sys.Name, func(t *testing.T) {
			out, err := solveSystem(sys, zerolog.Nop())
			require.NoError(t, err)
			require.Equal(t, solvers.StatusConverged, out.Status)
			require.InDeltaSlice(t, tridiagX, out.X, 1e-7)
			require.Less(t, out.Residual, 1e-6)
			require.Equal(t, 1, out.Bandwidth)
		})
	}
}

func TestSolveSystem_ReorderMapsSolutionBack(t *testing.T) {
	sys := system("reordered", writeMatrix(t, "tridiag.mtx", tridiag), "cg", "crs")
	sys.Reorder = true

	out, err := solveSystem(sys, zerolog.Nop())
	require.NoError(t, err)
	require.InDeltaSlice(t, tridiagX, out.X, 1e-7)
}

func TestSolveSystem_RHSScalesSolution(t *testing.T) {
	sys := system("scaled", writeMatrix(t, "tridiag.mtx", tridiag), "lu", "ccs")
	sys.RHS = 9

	out, err := solveSystem(sys, zerolog.Nop())
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 1, 4}, out.X, 1e-12)
}

func TestSolveSystem_Failures(t *testing.T) {
	_, err := solveSystem(system("missing", filepath.Join(t.TempDir(), "none.mtx"), "cg", "crs"), zerolog.Nop())
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := writeMatrix(t, "indefinite.mtx", indefinite)
	_, err = solveSystem(system("chol", bad, "cholesky", "dense"), zerolog.Nop())
	require.ErrorIs(t, err, mla.ErrNotPositiveDefinite)

	cg := system("cg-budget", writeMatrix(t, "tridiag.mtx", tridiag), "cg", "crs")
	cg.MaxIterations = 1
	out, err := solveSystem(cg, zerolog.Nop())
	require.Error(t, err)
	require.Equal(t, solvers.StatusExceeded, out.Status)

	rect := writeMatrix(t, "rect.mtx", "%%MatrixMarket matrix coordinate real general\n2 3 1\n1 1 1\n")
	_, err = solveSystem(system("rect", rect, "cg", "crs"), zerolog.Nop())
	require.Error(t, err)
}

func TestRun_JoinsFailuresAndKeepsGoing(t *testing.T) {
	good := writeMatrix(t, "tridiag.mtx", tridiag)
	bad := writeMatrix(t, "indefinite.mtx", indefinite)
	cfg := &config.Config{
		Workers: 2,
		Systems: []config.SystemConfig{
			system("a", good, "cg", "crs"),
			system("b", bad, "cholesky", "dense"),
			system("c", good, "lu", "ccs"),
		},
	}

	outcomes, err := run(context.Background(), cfg, zerolog.Nop())
	require.ErrorIs(t, err, mla.ErrNotPositiveDefinite)
	require.Contains(t, err.Error(), "b: ")
	require.Len(t, outcomes, 3)
	require.Equal(t, solvers.StatusConverged, outcomes[0].Status)
	require.Equal(t, solvers.StatusConverged, outcomes[2].Status)
	require.InDeltaSlice(t, tridiagX, outcomes[2].X, 1e-9)

	cfg.Systems = cfg.Systems[:1]
	_, err = run(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := &config.Config{
		Workers: 1,
		Systems: []config.SystemConfig{system("a", writeMatrix(t, "tridiag.mtx", tridiag), "cg", "crs")},
	}

	_, err := run(ctx, cfg, zerolog.Nop())
	require.ErrorIs(t, err, context.Canceled)
}

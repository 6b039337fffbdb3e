// SPDX-License-Identifier: MIT

// Command mlasolve solves a batch of sparse linear systems described by a
// YAML file (see internal/config), loading every matrix from a Matrix Market
// file and solving the systems concurrently.
//
//	mlasolve -config mlasolve.yaml
//
// The exit status is 1 when any system fails to load or solve.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/mla/internal/config"
	"github.com/katalvlaran/mla/internal/logging"
	"github.com/katalvlaran/mla/solvers"
)

func main() {
	path := flag.String("config", "", "path of the YAML batch file (default $MLA_CONFIG_PATH or ./mlasolve.yaml)")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mlasolve:", err)
		os.Exit(2)
	}

	logging.Init(logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Caller:    cfg.Log.Caller,
		Timestamp: true,
	})
	runID := logging.NewRunID()
	log := logging.WithRun(runID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.ContextWithRunID(ctx, runID)

	log.Info().Int("systems", len(cfg.Systems)).Int("workers", cfg.Workers).Msg("batch started")
	outcomes, err := run(ctx, cfg, logging.Ctx(ctx))

	solved := 0
	for _, o := range outcomes {
		if o.Status == solvers.StatusConverged {
			solved++
		}
	}
	ev := log.Info()
	if err != nil {
		ev = log.Error().Err(err)
	}
	ev.Int("solved", solved).Int("systems", len(outcomes)).Msg("batch finished")

	if err != nil {
		stop()
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT

// Package solvers: functional configuration shared by CG and Direct.
//   - WithLogger injects a zerolog.Logger (default: zerolog.Nop()).
//   - WithBackend swaps the factorization used by Direct (default: LUBackend).
package solvers

import "github.com/rs/zerolog"

const panicNilBackend = "solvers: WithBackend: backend must not be nil"

// Option mutates internal options; last writer wins.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	logger  zerolog.Logger
	backend Backend
}

// WithLogger routes per-iteration Debug events and the final summary to l.
// The solvers never touch the global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithBackend selects the factorization used by Direct.
// Panics when b is nil (programmer error).
func WithBackend(b Backend) Option {
	if b == nil {
		panic(panicNilBackend)
	}

	return func(o *Options) { o.backend = b }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		logger:  zerolog.Nop(),
		backend: LUBackend{},
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

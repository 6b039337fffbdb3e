// SPDX-License-Identifier: MIT

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const runIDKey contextKey = "run_id"

// NewRunID returns a fresh run identifier (a v4 UUID) for one CLI invocation.
func NewRunID() string {
	return uuid.New().String()
}

// ShortID returns the first 8 characters of a new UUID, enough to tell
// concurrent systems of one run apart in the log.
func ShortID() string {
	return uuid.New().String()[:8]
}

// ContextWithRunID stores id in ctx.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext returns the stored run id or "".
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}

	return ""
}

// WithRun returns a child of the global logger carrying run_id.
func WithRun(id string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return log.With().Str("run_id", id).Logger()
}

// Ctx returns the global logger with the run id of ctx attached, if any.
func Ctx(ctx context.Context) zerolog.Logger {
	if id := RunIDFromContext(ctx); id != "" {
		return WithRun(id)
	}

	return Logger()
}

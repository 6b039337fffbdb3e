package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mla/internal/logging"
)

func lastEvent(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var ev map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &ev))

	return ev
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	require.Equal(t, "info", cfg.Level)
	require.Equal(t, "json", cfg.Format)
	require.True(t, cfg.Timestamp)
	require.False(t, cfg.Caller)
	require.NotNil(t, cfg.Output)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"DEBUG":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		" error ":  zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
		"":         zerolog.InfoLevel,
		"bogus":    zerolog.InfoLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, logging.ParseLevel(in), "level %q", in)
	}
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "warn", Format: "json", Output: &buf})
	t.Cleanup(func() { logging.Init(logging.DefaultConfig()) })

	l := logging.Logger()
	l.Info().Msg("dropped")
	require.Zero(t, buf.Len())

	l.Warn().Str("k", "v").Msg("kept")
	ev := lastEvent(t, &buf)
	require.Equal(t, "kept", ev["message"])
	require.Equal(t, "warn", ev["level"])
	require.Equal(t, "v", ev["k"])
	require.NotContains(t, ev, "time")
}

func TestInit_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "info", Timestamp: true, Output: &buf})
	t.Cleanup(func() { logging.Init(logging.DefaultConfig()) })

	c := logging.WithComponent("solver")
	c.Info().Msg("hello")
	ev := lastEvent(t, &buf)
	require.Contains(t, ev, "time")
	require.Equal(t, "solver", ev["component"])
}

func TestRunID(t *testing.T) {
	id := logging.NewRunID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	require.NotEqual(t, id, logging.NewRunID())
	require.Len(t, logging.ShortID(), 8)

	ctx := context.Background()
	require.Empty(t, logging.RunIDFromContext(ctx))
	ctx = logging.ContextWithRunID(ctx, id)
	require.Equal(t, id, logging.RunIDFromContext(ctx))

	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "info", Output: &buf})
	t.Cleanup(func() { logging.Init(logging.DefaultConfig()) })

	l := logging.Ctx(ctx)
	l.Info().Msg("tagged")
	require.Equal(t, id, lastEvent(t, &buf)["run_id"])

	l = logging.Ctx(context.Background())
	l.Info().Msg("untagged")
	require.NotContains(t, lastEvent(t, &buf), "run_id")
}

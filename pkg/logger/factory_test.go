package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("configured from strings", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(logger.ParseLevel("warn")),
			logger.WithFormat(logger.ParseFormat("JSON")),
		).With(logger.Command("check"))

		log.Info("dropped")
		log.Warn("kept", logger.Schema("login"))

		entries := decodeEntries(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "WARN", entries[0]["level"])
		assert.Equal(t, "kept", entries[0]["msg"])
		assert.Equal(t, "check", entries[0]["command"])
		assert.Equal(t, "login", entries[0]["schema"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.ParseFormat("text")))
		log.Info("record is valid", logger.Schema("login"))

		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, `msg="record is valid"`)
		assert.Contains(t, out, "schema=login")
	})

	t.Run("violations summary", func(t *testing.T) {
		t.Parallel()

		s := validator.New[string, validator.NoContext]("username")
		validator.Field(s, "username", func(v string) string { return v }, validator.Length(3, 20))

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("service", "rulekit")))
		log.Info("record rejected", logger.Violations(s.Validate("ek")))

		entries := decodeEntries(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "rulekit", entries[0]["service"])
		summary, ok := entries[0]["violations"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 1, summary["count"], 0)
		assert.Equal(t, []any{"username"}, summary["fields"])
	})
}

func TestWithContextAttrs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))

	ctx := logger.WithContextAttrs(context.Background(), logger.Kind("register"))
	ctx = logger.WithContextAttrs(ctx, logger.Lang("id"))
	assert.Len(t, logger.ContextAttrs(ctx), 2)
	assert.Equal(t, ctx, logger.WithContextAttrs(ctx))

	log.InfoContext(ctx, "record rejected", logger.Error(errors.New("database is full")))
	log.Info("no context")
	log.With(logger.Command("check")).WithGroup("batch").InfoContext(ctx, "batch validated", logger.Count(3))

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 3)

	assert.Equal(t, "register", entries[0]["kind"])
	assert.Equal(t, "id", entries[0]["lang"])
	assert.Equal(t, "database is full", entries[0]["error"])

	assert.NotContains(t, entries[1], "kind")

	assert.Equal(t, "check", entries[2]["command"])
	grouped, ok := entries[2]["batch"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "register", grouped["kind"])
	assert.InDelta(t, 3, grouped["count"], 0)
}

func TestSetAsDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "default", entries[0]["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

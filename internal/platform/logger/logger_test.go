// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts back the default logger replaced by Setup.
func restoreDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupWithWriter(t *testing.T) {
	restoreDefault(t)
	buf := &logger.TestLogBuffer{}

	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "info", Port: 3001}, buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Debug("hidden message")
	l.Info("visible message", "key", "value")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1, "debug entries should be filtered at info level")
	assert.Equal(t, "visible message", entries[0]["msg"])
	assert.Equal(t, "value", entries[0]["key"])
	assert.Same(t, l, slog.Default(), "Setup should install the logger as default")
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	restoreDefault(t)
	buf := &logger.TestLogBuffer{}

	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "invalid_level"}, buf)
	require.NoError(t, err)

	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
	logger.AssertLogContains(t, buf, "invalid log level configured")
	logger.AssertLogContains(t, buf, "invalid_level")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		valid    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"Error", slog.LevelError, true},
		{"fatal", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			level, ok := logger.ParseLevel(tc.input)
			assert.Equal(t, tc.expected, level)
			assert.Equal(t, tc.valid, ok)
		})
	}
}

func TestContextLogger(t *testing.T) {
	l, buf := logger.GetTestLogger(t)
	fallback := slog.New(slog.NewJSONHandler(&logger.TestLogBuffer{}, nil))

	ctx := context.Background()
	assert.Same(t, fallback, logger.FromContextOrDefault(ctx, fallback))
	assert.NotNil(t, logger.FromContext(ctx))

	ctx = logger.WithLogger(ctx, l)
	assert.Same(t, l, logger.FromContextOrDefault(ctx, fallback))

	ctx = logger.WithRequestID(ctx, "abc123")
	assert.Equal(t, "abc123", logger.RequestIDFromContext(ctx))

	logger.FromContext(ctx).Info("with trace")
	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc123", entries[0]["trace_id"])
}

func TestRequestIDFromEmptyContext(t *testing.T) {
	assert.Empty(t, logger.RequestIDFromContext(context.Background()))
}

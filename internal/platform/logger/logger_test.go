package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/taskwell-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_RespectsLevel(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l, err := logger.Setup(logger.LoggerConfig{Level: "warn", Output: buf})
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("dropped")
	l.Warn("kept", "component", "test")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "test", entries[0]["component"])

	// Setup installs the logger as the default.
	slog.Error("via default")
	logger.AssertLogContains(t, buf, "via default")
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l, err := logger.Setup(logger.LoggerConfig{Level: "verbose", Output: buf})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		level slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"fatal", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}
	for _, tc := range tests {
		level, ok := logger.ParseLevel(tc.in)
		assert.Equal(t, tc.level, level, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}

func TestFromContext(t *testing.T) {
	requestLogger, buf := logger.GetTestLogger(t)
	fallback, fallbackBuf := logger.GetTestLogger(t)

	ctx := logger.WithContext(context.Background(), requestLogger.With("trace_id", "abc"))
	logger.FromContextOrDefault(ctx, fallback).Info("from request")
	logger.FromContextOrDefault(context.Background(), fallback).Info("from fallback")

	logger.AssertLogContains(t, buf, `"trace_id":"abc"`)
	logger.AssertLogContains(t, fallbackBuf, "from fallback")
	assert.NotContains(t, fallbackBuf.String(), "from request")

	assert.Equal(t, slog.Default(), logger.FromContext(context.Background()))
	assert.Equal(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
}

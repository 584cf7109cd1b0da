package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/nshelest/mesto-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		enabled  slog.Level
		disabled slog.Level
		hasLower bool
	}{
		{name: "debug", logLevel: "debug", enabled: slog.LevelDebug},
		{name: "info", logLevel: "info", enabled: slog.LevelInfo, disabled: slog.LevelDebug, hasLower: true},
		{name: "warn", logLevel: "warn", enabled: slog.LevelWarn, disabled: slog.LevelInfo, hasLower: true},
		{name: "error", logLevel: "error", enabled: slog.LevelError, disabled: slog.LevelWarn, hasLower: true},
		{name: "uppercase is accepted", logLevel: "WARN", enabled: slog.LevelWarn, disabled: slog.LevelInfo, hasLower: true},
		{name: "unknown falls back to info", logLevel: "verbose", enabled: slog.LevelInfo, disabled: slog.LevelDebug, hasLower: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 3000, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)

			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tt.enabled))
			if tt.hasLower {
				assert.False(t, logger.Enabled(ctx, tt.disabled))
			}
		})
	}

	t.Run("sets the process default", func(t *testing.T) {
		logger, err := Setup(config.ServerConfig{Port: 3000, LogLevel: "info"})
		require.NoError(t, err)
		assert.Same(t, logger, slog.Default())
	})
}

func TestContextLogger(t *testing.T) {
	scoped := slog.Default().With("request_id", "abc123")

	t.Run("round trip", func(t *testing.T) {
		ctx := WithLogger(context.Background(), scoped)
		assert.Same(t, scoped, FromContext(ctx))
	})

	t.Run("empty context yields the default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("fallback prefers the supplied default", func(t *testing.T) {
		fallback := slog.Default().With("component", "test")
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
		assert.Same(t, scoped, FromContextOrDefault(WithLogger(context.Background(), scoped), fallback))
	})

	t.Run("nil fallback yields the default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
	})
}

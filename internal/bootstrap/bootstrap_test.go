package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go-roster/internal/config"
	"go-roster/internal/shared/apperror"
	"go-roster/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "roster.log")

		logger, err := NewLogger(config.LogConfig{Level: "debug", Format: "json", Output: path}, false)
		require.NoError(t, err)
		logger.Debug("hello")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"hello"`)
	})

	t.Run("level filters", func(t *testing.T) {
		logger, err := NewLogger(config.LogConfig{Level: "warn", Format: "console", Output: "stderr"}, false)
		require.NoError(t, err)

		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := NewLogger(config.LogConfig{Level: "loud", Format: "console", Output: "stderr"}, false)

		require.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})
}

func TestZapAuditLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := NewZapAuditLogger(zap.New(core))
	ctx := contextutil.WithSessionID(context.Background(), "s-1")

	audit.Log(ctx, AuditLog{Action: "EXPORT", Message: "written", Meta: map[string]any{"path": "results/a.json"}})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, "EXPORT", fields["action"])
	assert.Equal(t, "s-1", fields["session_id"])
}

func TestSignalContext(t *testing.T) {
	ctx, stop := SignalContext(context.Background(), NewZapAuditLogger(zap.NewNop()))
	require.NoError(t, ctx.Err())

	stop()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("json production logger", func(t *testing.T) {
		l, err := New(&Config{Level: "info", Format: "json"})
		assert.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("console logger honors level", func(t *testing.T) {
		l, err := New(&Config{Level: "warn", Format: "console"})
		assert.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		l, err := New(&Config{Level: "verbose", Format: "json"})
		assert.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestNewCLI(t *testing.T) {
	l, err := NewCLI("debug")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

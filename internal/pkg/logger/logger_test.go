package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		l, err := New("development", "debug")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Production", func(t *testing.T) {
		l, err := New("production", "info")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zap.DebugLevel))
		assert.True(t, l.Core().Enabled(zap.InfoLevel))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		l, err := New("production", "invalid_level")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.InfoLevel))
	})
}

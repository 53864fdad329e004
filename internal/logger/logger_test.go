package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	log, err := New("debug", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	log, err = New("warn", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("loud", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

package logger

import (
	"testing"

	"github.com/mager/cadence/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestProvideLoggerLevel(t *testing.T) {
	log, err := ProvideLogger(config.Config{LogLevel: "warn"})
	require.NoError(t, err)

	assert.False(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestProvideLoggerBadLevel(t *testing.T) {
	_, err := ProvideLogger(config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestNewTestLogger(t *testing.T) {
	log, recorded := NewTestLogger()
	log.Infow("hello", "k", "v")

	entries := recorded.FilterMessage("hello").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
}

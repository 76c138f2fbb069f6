package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("ERROR"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestZapLogger_WithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.With("operation", "flight_by_id").Info("query finished", "rows", 1)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "query finished", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "flight_by_id", fields["operation"])
	assert.EqualValues(t, 1, fields["rows"])
}

func TestNewNopLogger(t *testing.T) {
	log := NewNopLogger()
	log.Info("discarded", "k", "v")
	assert.NoError(t, log.Sync())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.False(t, cfg.QueryHistoryEnabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("READ_TIMEOUT", "15")
	t.Setenv("DB_SLOW_QUERY_THRESHOLD", "750ms")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/flights")
	t.Setenv("QUERY_HISTORY_ENABLED", "true")
	t.Setenv("MONGODB_DSN", "mongodb://mongo:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 750*time.Millisecond, cfg.SlowQueryThreshold)
	assert.Equal(t, "postgres://u:p@db:5432/flights", cfg.PostgresURI)
	assert.True(t, cfg.QueryHistoryEnabled)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_HistoryRequiresMongoURI(t *testing.T) {
	t.Setenv("QUERY_HISTORY_ENABLED", "true")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_IdleConnsCannotExceedOpen(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "2")
	t.Setenv("DB_MAX_IDLE_CONNS", "4")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("SOME_DURATION", "not-a-duration")
	assert.Equal(t, time.Minute, getEnvAsDuration("SOME_DURATION", time.Minute))

	t.Setenv("SOME_DURATION", "2m")
	assert.Equal(t, 2*time.Minute, getEnvAsDuration("SOME_DURATION", time.Minute))
}

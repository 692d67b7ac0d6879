package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/config"
)

func TestAppConfig(t *testing.T) {
	t.Setenv("RULEKIT_LOG_FORMAT", "json")
	t.Setenv("RULEKIT_CAPACITY_SOURCE", "redis")
	t.Setenv("RULEKIT_CAPACITY_MAX_USERS", "25")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	config.ResetCache()

	var cfg config.AppConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, config.SourceRedis, cfg.Capacity.Source)
	assert.Equal(t, int64(25), cfg.Capacity.MaxUsers)
	assert.Equal(t, "rulekit:users:total", cfg.Capacity.RedisKey)
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.ConnectionURL)
	assert.Equal(t, 3, cfg.Postgres.RetryAttempts)
	assert.NoError(t, cfg.Validate())
}

func TestAppConfig_Validate(t *testing.T) {
	cfg := config.AppConfig{Capacity: config.CapacityConfig{Source: "mongo"}}
	assert.ErrorIs(t, cfg.Validate(), config.ErrUnknownCapacitySource)
}

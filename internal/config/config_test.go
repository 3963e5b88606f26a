package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Client.ReadTimeout)
	assert.Equal(t, 50.0, cfg.Client.RateLimitRPS)
	assert.Equal(t, 10, cfg.Client.RateLimitBurst)
	assert.Equal(t, "X-Request-Id", cfg.Client.RequestIDHeader)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Logger.Development)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "2.5")
	t.Setenv("HTTP_RATE_LIMIT_RPS", "5")
	t.Setenv("HTTP_RATE_LIMIT_BURST", "3")
	t.Setenv("HTTP_REQUEST_ID_HEADER", "X-Invocation-Id")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 2500*time.Millisecond, cfg.Client.ReadTimeout)
	assert.Equal(t, 5.0, cfg.Client.RateLimitRPS)
	assert.Equal(t, 3, cfg.Client.RateLimitBurst)
	assert.Equal(t, "X-Invocation-Id", cfg.Client.RequestIDHeader)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.Development)
}

func TestLoadFromEnv_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-number")
	t.Setenv("HTTP_RATE_LIMIT_BURST", "also-not")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Client.ReadTimeout)
	assert.Equal(t, 10, cfg.Client.RateLimitBurst)
}

func TestLoadFromEnv_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "-1")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_READ_TIMEOUT")
}

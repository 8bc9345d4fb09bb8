package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNightlyConfigDefaults(t *testing.T) {
	for _, k := range []string{"HOTEL_TIMEZONE", "NIGHTLY_RUN_AT", "NIGHTLY_ENABLED", "AUTO_CANCEL_AFTER", "NO_SHOW_WINDOW", "NO_SHOW_FEE_RATE"} {
		t.Setenv(k, "")
	}
	cfg, err := LoadNightlyConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, uint(19), cfg.Hour)
	assert.Equal(t, uint(0), cfg.Minute)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 12*time.Hour, cfg.AutoCancelAfter)
	assert.Equal(t, 24*time.Hour, cfg.NoShowWindow)
	assert.Equal(t, "0.5", cfg.NoShowFeeRate.String())
}

func TestLoadNightlyConfigOverrides(t *testing.T) {
	t.Setenv("HOTEL_TIMEZONE", "Asia/Colombo")
	t.Setenv("NIGHTLY_RUN_AT", "23:45")
	t.Setenv("NIGHTLY_ENABLED", "off")
	t.Setenv("AUTO_CANCEL_AFTER", "6h")
	t.Setenv("NO_SHOW_FEE_RATE", "0.25")

	cfg, err := LoadNightlyConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, uint(23), cfg.Hour)
	assert.Equal(t, uint(45), cfg.Minute)
	assert.Equal(t, "Asia/Colombo", cfg.Location.String())
	assert.Equal(t, 6*time.Hour, cfg.AutoCancelAfter)
	assert.Equal(t, "0.25", cfg.NoShowFeeRate.String())
}

func TestLoadNightlyConfigRejectsBadValues(t *testing.T) {
	tests := []struct{ key, value string }{
		{"HOTEL_TIMEZONE", "Mars/Olympus"},
		{"NIGHTLY_RUN_AT", "7pm"},
		{"NO_SHOW_FEE_RATE", "1.5"},
		{"NO_SHOW_FEE_RATE", "half"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadNightlyConfig()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "1m")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, 5*time.Minute, cfg.TTL)
}

func TestCacheConfigMethods(t *testing.T) {
	t.Setenv("CACHE_METHODS", " get, head ,")
	t.Setenv("CACHE_TTL", "nonsense")

	cfg := LoadCacheConfig()
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, cfg.Methods)
	assert.Equal(t, time.Second, cfg.TTL)
}

func TestAMQPURLPrefersRabbitMQURL(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "amqp://a/")
	t.Setenv("AMQP_URL", "amqp://b/")
	assert.Equal(t, "amqp://a/", amqpURL())

	t.Setenv("RABBITMQ_URL", "")
	assert.Equal(t, "amqp://b/", amqpURL())
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HOTEL_TEST_A=from-file\nHOTEL_TEST_B=from-file\n"), 0o600))
	t.Setenv("HOTEL_TEST_A", "from-env")
	t.Setenv("HOTEL_TEST_B", "")
	require.NoError(t, os.Unsetenv("HOTEL_TEST_B"))

	LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "from-env", os.Getenv("HOTEL_TEST_A"))
	assert.Equal(t, "from-file", os.Getenv("HOTEL_TEST_B"))
}

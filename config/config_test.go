package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BLACKSCAN_RECOGNITION_BASE_URL", "https://oracle.example.com")
	t.Setenv("BLACKSCAN_RECOGNITION_API_KEY", "oracle-key")
	t.Setenv("BLACKSCAN_TYPESENSE_HOST", "https://search.example.com")
	t.Setenv("BLACKSCAN_TYPESENSE_API_KEY", "search-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "https://oracle.example.com", cfg.Recognition.BaseURL)
	assert.Equal(t, "oracle-key", cfg.Recognition.APIKey)
	assert.Equal(t, 3, cfg.Recognition.MaxAttempts)
	assert.Equal(t, 60, cfg.Recognition.RequestsPerMinute)
	assert.Equal(t, 0.7, cfg.Recognition.MinOCRQuality)
	assert.Equal(t, 5, cfg.Recognition.MinOCRWords)
	assert.Equal(t, 0.7, cfg.Recognition.MinTextConfidence)
	assert.Equal(t, 0.002, cfg.Recognition.TextModelCost)
	assert.Equal(t, 0.015, cfg.Recognition.VisionModelCost)

	assert.Equal(t, "https://search.example.com", cfg.Typesense.Host)
	assert.Equal(t, "products", cfg.Typesense.Collection)

	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)

	assert.Equal(t, 0.3, cfg.Matching.MinConfidenceThreshold)
	assert.Equal(t, 20, cfg.Matching.SearchLimit)
	assert.False(t, cfg.Matching.EnableDebugLogging)
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BLACKSCAN_SERVER_PORT", "9090")
	t.Setenv("BLACKSCAN_SERVER_ENVIRONMENT", "production")
	t.Setenv("BLACKSCAN_RECOGNITION_MAX_ATTEMPTS", "5")
	t.Setenv("BLACKSCAN_MATCHING_MIN_CONFIDENCE", "0.5")
	t.Setenv("BLACKSCAN_CACHE_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, 5, cfg.Recognition.MaxAttempts)
	assert.Equal(t, 0.5, cfg.Matching.MinConfidenceThreshold)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing recognition base URL", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLACKSCAN_RECOGNITION_BASE_URL", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recognition base URL")
	})

	t.Run("missing recognition API key", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLACKSCAN_RECOGNITION_API_KEY", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recognition API key")
	})

	t.Run("missing typesense host", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLACKSCAN_TYPESENSE_HOST", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "typesense host")
	})

	t.Run("missing typesense API key", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLACKSCAN_TYPESENSE_API_KEY", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "typesense API key")
	})

	t.Run("confidence threshold out of range", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLACKSCAN_MATCHING_MIN_CONFIDENCE", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "min_confidence")
	})
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobfill")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("GROQ_BASE_URL", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "https://api.groq.com/openai", cfg.GroqBaseURL)
	assert.Equal(t, 10, cfg.RateLimitRPS)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobfill")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("RATE_LIMIT_RPS", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "gsk_test", cfg.GroqAPIKey)
	assert.Equal(t, 25, cfg.RateLimitRPS)
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")
	assert.Equal(t, 10, getEnvInt("RATE_LIMIT_RPS", 10))
}

package app

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("NATAL_BOT_TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("NATAL_BOT_ASTRO_API_BASE_URL", "https://astro.example.com")
}

func TestNewEnvConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := NewEnvConfig("natal_bot")
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 12*time.Second, cfg.Nominatim.Timeout)
	assert.InDelta(t, 1.0, cfg.Nominatim.RateLimit, 1e-9)
	assert.Equal(t, 30, cfg.Telegram.PollingTimeout)
	assert.False(t, cfg.Telegram.IsWebhookEnabled())
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Alerter.IsConfigured())
}

func TestNewEnvConfig_MissingToken(t *testing.T) {
	t.Setenv("NATAL_BOT_ASTRO_API_BASE_URL", "https://astro.example.com")
	t.Setenv("NATAL_BOT_TELEGRAM_BOT_TOKEN", "")
	require.NoError(t, os.Unsetenv("NATAL_BOT_TELEGRAM_BOT_TOKEN"))

	_, err := NewEnvConfig("natal_bot")
	require.Error(t, err)
}

func TestNewEnvConfig_WebhookWithoutURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NATAL_BOT_TELEGRAM_USE_WEBHOOK", "true")
	t.Setenv("NATAL_BOT_TELEGRAM_WEBHOOK_URL", "")

	_, err := NewEnvConfig("natal_bot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook_url")
}

func TestNewEnvConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NATAL_BOT_SESSION_TTL", "30m")
	t.Setenv("NATAL_BOT_TELEGRAM_USE_WEBHOOK", "1")
	t.Setenv("NATAL_BOT_TELEGRAM_WEBHOOK_URL", "https://bot.example.com")
	t.Setenv("NATAL_BOT_ALERTER_BOT_TOKEN", "456:def")
	t.Setenv("NATAL_BOT_ALERTER_CHAT_ID", "-100123")

	cfg, err := NewEnvConfig("natal_bot")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.Telegram.IsWebhookEnabled())
	assert.True(t, cfg.Alerter.IsConfigured())
}

func TestConfig_ValidateSessionTTL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NATAL_BOT_SESSION_TTL", "0s")

	_, err := NewEnvConfig("natal_bot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session_ttl")
}

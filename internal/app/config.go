package app

import (
	"fmt"
	"time"

	server "github.com/admin/tg-bots/natal-bot/internal/adapters/primary/http"
	alerterAdapter "github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/alerter"
	astroApi "github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/astroApi"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/nominatim"
	redisAdapter "github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/storage/redis"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/natal-bot/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Log        *logger.Config         `envconfig:"LOG"`
	Server     *server.Config         `envconfig:"APISERVER"`
	Telegram   *telegram.Config       `envconfig:"TELEGRAM"`
	Nominatim  *nominatim.Config      `envconfig:"NOMINATIM"`
	AstroAPI   *astroApi.Config       `envconfig:"ASTRO_API"`
	Redis      *redisAdapter.Config   `envconfig:"REDIS"`
	Alerter    *alerterAdapter.Config `envconfig:"ALERTER"`
	SessionTTL time.Duration          `envconfig:"SESSION_TTL" default:"24h"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate проверки, которые envconfig не выражает тегами
func (c *Config) Validate() error {
	if c.Telegram.IsWebhookEnabled() && c.Telegram.WebhookURL == "" {
		return fmt.Errorf("telegram webhook_url is required when use_webhook is true")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", c.SessionTTL)
	}
	if c.Nominatim.RateLimit <= 0 {
		return fmt.Errorf("nominatim rate_limit must be positive, got %v", c.Nominatim.RateLimit)
	}
	return nil
}

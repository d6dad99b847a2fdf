package astroApi

import "time"

type Config struct {
	BaseURL    string        `envconfig:"BASE_URL" required:"true"`
	ApiVersion string        `envconfig:"VERSION" default:"api/v5"`
	ApiKey     string        `envconfig:"API_KEY"`
	SkipSSL    string        `envconfig:"SKIP_SSL"` // Railway требует строки вместо bool
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"20s"`
	Retries    int           `envconfig:"RETRIES" default:"0"` // повторы только для 5xx и сетевых ошибок
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}

package nominatim

import "time"

type Config struct {
	BaseURL   string        `envconfig:"BASE_URL" default:"https://nominatim.openstreetmap.org"`
	Email     string        `envconfig:"EMAIL" default:"your-email@example.com"` // политика Nominatim требует контакт в User-Agent
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"12s"`
	RateLimit float64       `envconfig:"RATE_LIMIT" default:"1"` // запросов в секунду
	Language  string        `envconfig:"LANGUAGE" default:"en"`
}

func (c *Config) UserAgent() string {
	return "NatalChartBot/1.0 (" + c.Email + ")"
}

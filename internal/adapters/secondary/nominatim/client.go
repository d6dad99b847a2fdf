package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

const (
	searchEndpoint = "search"
	defaultTimeout = 12 * time.Second
)

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client - клиент геокодера OpenStreetMap Nominatim
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	limiter    *rate.Limiter
	Log        *slog.Logger
}

// NewClient создаёт клиент Nominatim.
// Публичный инстанс разрешает не больше 1 запроса в секунду, поэтому запросы проходят через лимитер.
func NewClient(cfg *Config, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, 1),
		Log:     log,
	}
}

// buildURL собирает URL поиска
func (c *Client) buildURL(query string) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	if c.cfg.Language != "" {
		params.Set("accept-language", c.cfg.Language)
	}

	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + searchEndpoint + "?" + params.Encode()
}

// Geocode ищет лучшее совпадение для текста места.
// Весь вызов, включая ожидание лимитера, ограничен таймаутом из конфига.
func (c *Client) Geocode(ctx context.Context, query string) (domain.GeocodeResult, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.HTTPClient.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return domain.GeocodeResult{}, false, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(query), nil)
	if err != nil {
		return domain.GeocodeResult{}, false, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.cfg.UserAgent())
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return domain.GeocodeResult{}, false, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.GeocodeResult{}, false, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("nominatim returned non-200 status",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return domain.GeocodeResult{}, false, fmt.Errorf("nominatim error [status=%d]: %s", resp.StatusCode, truncateString(string(body), 500))
	}

	var results []SearchResult
	if err := json.Unmarshal(body, &results); err != nil {
		c.Log.Debug("failed to unmarshal nominatim response",
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return domain.GeocodeResult{}, false, fmt.Errorf("nominatim unmarshal failed: %w", err)
	}

	if len(results) == 0 {
		return domain.GeocodeResult{}, false, nil
	}

	return toGeocodeResult(results[0])
}

func toGeocodeResult(r SearchResult) (domain.GeocodeResult, bool, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return domain.GeocodeResult{}, false, fmt.Errorf("invalid latitude %q: %w", r.Lat, err)
	}

	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return domain.GeocodeResult{}, false, fmt.Errorf("invalid longitude %q: %w", r.Lon, err)
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return domain.GeocodeResult{}, false, fmt.Errorf("coordinates out of range: lat=%f lon=%f", lat, lon)
	}

	return domain.GeocodeResult{
		GeoPoint: domain.GeoPoint{Lat: lat, Lon: lon},
		Address:  r.DisplayName,
	}, true, nil
}

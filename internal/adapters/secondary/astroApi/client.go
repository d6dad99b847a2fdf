package astroApi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"
)

const natalChartEndpoint = "charts/natal"

const (
	defaultTimeout = 20 * time.Second
	retryBaseDelay = 300 * time.Millisecond
	previewLen     = 200
)

// StatusError ответ API с кодом не 200
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("astro API error [status=%d]: %s", e.StatusCode, e.Body)
}

// retryable 5xx и 429 имеет смысл повторить, 4xx нет
func (e *StatusError) retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Client клиент астрологического API (эфемериды Swiss Ephemeris)
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
	retryDelay time.Duration
}

// NewClient создаёт новый клиент для работы с астро-API
func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := &http.Transport{}
	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		Log:        log,
		retryDelay: retryBaseDelay,
	}
}

// CalculateNatalChart рассчитывает натальную карту. Временные сбои API
// повторяются с растущей паузой, пока не кончатся попытки или контекст.
func (c *Client) CalculateNatalChart(ctx context.Context, req NatalChartRequest) (*NatalChartResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= max(c.cfg.Retries, 0); attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<(attempt-1))
			c.Log.Debug("retrying astro API request", "attempt", attempt+1, "delay", delay, "error", lastErr)

			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("astro API request cancelled: %w", errors.Join(ctx.Err(), lastErr))
			case <-time.After(delay):
			}
		}

		body, err := c.post(ctx, natalChartEndpoint, payload)
		if err == nil {
			return decodeChart(body, c.Log)
		}

		lastErr = err
		if !isTransient(ctx, err) {
			break
		}
	}

	return nil, lastErr
}

func (c *Client) post(ctx context.Context, endpoint string, payload []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(endpoint), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.ApiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("astro API returned non-200 status",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), previewLen),
		)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncateString(string(body), 500)}
	}

	return body, nil
}

func decodeChart(body []byte, log *slog.Logger) (*NatalChartResponse, error) {
	var chartResp NatalChartResponse
	if err := json.Unmarshal(body, &chartResp); err != nil {
		log.Debug("failed to unmarshal astro API response",
			"error", err,
			"body_preview", truncateString(string(body), previewLen),
		)
		return nil, fmt.Errorf("astro API unmarshal failed: %w", err)
	}

	chartResp.RawJSON = string(body)
	return &chartResp, nil
}

// isTransient сетевые ошибки и 5xx повторяем, отмену контекста и 4xx нет
func isTransient(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.retryable()
	}
	return true
}

// buildURL собирает полный URL из BaseURL, ApiVersion и endpoint
func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + path.Join(c.cfg.ApiVersion, endpoint)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

package telegram

import (
	"context"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// UpdateHandler функция для обработки обновлений от Telegram
type UpdateHandler func(ctx context.Context, update *domain.Update) error

const (
	defaultPollingTimeout = 30
	retryDelay            = 5 * time.Second
)

// Poller реализует long polling для получения обновлений от Telegram
type Poller struct {
	timeout      int
	handler      UpdateHandler
	lastUpdateID int64
	log          *slog.Logger
	pollClient   *Client // отдельный HTTP клиент с увеличенным таймаутом для polling
	retryDelay   time.Duration
}

func NewPoller(client *Client, config *Config, handler UpdateHandler, log *slog.Logger) *Poller {
	pollingTimeout := config.PollingTimeout
	if pollingTimeout <= 0 {
		pollingTimeout = defaultPollingTimeout
	}

	// HTTP таймаут = polling timeout + запас (10 секунд)
	pollClient := *client
	pollClient.httpClient = &http.Client{
		Timeout: time.Duration(pollingTimeout+10) * time.Second,
	}

	return &Poller{
		timeout:    pollingTimeout,
		handler:    handler,
		log:        log,
		pollClient: &pollClient,
		retryDelay: retryDelay,
	}
}

// getUpdatesRequest параметры getUpdates
type getUpdatesRequest struct {
	Offset         int64    `json:"offset"`
	Timeout        int      `json:"timeout"`
	AllowedUpdates []string `json:"allowed_updates"`
}

// Start блокирует до отмены ctx
func (p *Poller) Start(ctx context.Context) error {
	p.log.Info("starting telegram polling", "timeout", p.timeout)

	for {
		select {
		case <-ctx.Done():
			p.log.Info("polling stopped")
			return ctx.Err()
		default:
		}

		updates, err := p.getUpdates(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}

			// 409 - конфликт (другой экземпляр бота или webhook активен)
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.Code == 409 {
				p.log.Warn("telegram API conflict - another bot instance or webhook is active",
					"description", apiErr.Description,
				)
			} else {
				p.log.Error("failed to get updates", "error", err)
			}

			// Ждём перед повтором
			select {
			case <-ctx.Done():
			case <-time.After(p.retryDelay):
			}
			continue
		}

		for i := range updates {
			update := &updates[i]

			if update.UpdateID >= p.lastUpdateID {
				p.lastUpdateID = update.UpdateID + 1
			}

			if err := p.handler(ctx, update); err != nil {
				p.log.Error("failed to handle update",
					"error", err,
					"update_id", update.UpdateID,
				)
				// Продолжаем обработку следующих обновлений
			}
		}
	}
}

// getUpdates получает обновления от Telegram API
func (p *Poller) getUpdates(ctx context.Context) ([]domain.Update, error) {
	req := getUpdatesRequest{
		Offset:         p.lastUpdateID,
		Timeout:        p.timeout,
		AllowedUpdates: allowedUpdates,
	}

	var updates []domain.Update
	if err := p.pollClient.call(ctx, "getUpdates", req, &updates); err != nil {
		return nil, err
	}

	return updates, nil
}

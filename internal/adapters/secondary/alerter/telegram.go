package alerter

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/telegram"
)

// maxAlertRunes лимит Telegram на текст сообщения
const maxAlertRunes = 4096

// Client шлёт алерты в служебный чат (или топик форума) через отдельного бота.
// Транспорт общий с основным ботом: это тот же Bot API.
type Client struct {
	telegramClient  *telegram.Client
	chatID          int64
	messageThreadID *int64
	log             *slog.Logger
}

// NewClient возвращает nil, если алертер не настроен
func NewClient(cfg *Config, log *slog.Logger) *Client {
	if !cfg.IsConfigured() {
		return nil
	}

	return &Client{
		telegramClient:  telegram.NewClient(cfg.BotToken, log),
		chatID:          cfg.ChatID,
		messageThreadID: cfg.MessageThreadID,
		log:             log,
	}
}

// SendAlert отправляет алерт. Длинный текст (например, тело ответа провайдера
// в причине ошибки) обрезается до лимита Telegram.
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil || c.telegramClient == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	req := telegram.SendMessageRequest{
		ChatID:          c.chatID,
		MessageThreadID: c.messageThreadID,
		Text:            truncateRunes(message, maxAlertRunes),
	}

	if _, err := c.telegramClient.SendMessageWithRequest(ctx, req); err != nil {
		c.log.Warn("failed to send alert",
			"error", err,
			"chat_id", c.chatID,
			"message_thread_id", c.messageThreadID,
		)
		return fmt.Errorf("failed to send alert: %w", err)
	}

	c.log.Debug("alert sent", "chat_id", c.chatID)
	return nil
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

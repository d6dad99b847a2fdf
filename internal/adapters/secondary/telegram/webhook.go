package telegram

import (
	"context"
	"fmt"
)

// SetWebhookRequest запрос на установку webhook
type SetWebhookRequest struct {
	URL                string   `json:"url"`
	SecretToken        string   `json:"secret_token,omitempty"`
	AllowedUpdates     []string `json:"allowed_updates,omitempty"`
	DropPendingUpdates bool     `json:"drop_pending_updates,omitempty"`
}

// allowedUpdates типы обновлений, которые обрабатывает бот
var allowedUpdates = []string{"message", "callback_query"}

// SetWebhook регистрирует webhook. Telegram будет присылать secret в
// заголовке X-Telegram-Bot-Api-Secret-Token.
func (c *Client) SetWebhook(ctx context.Context, url, secret string) error {
	req := SetWebhookRequest{
		URL:            url,
		SecretToken:    secret,
		AllowedUpdates: allowedUpdates,
	}

	if err := c.call(ctx, "setWebhook", req, nil); err != nil {
		return fmt.Errorf("setWebhook: %w", err)
	}

	c.log.Info("webhook set successfully", "url", url)
	return nil
}

// DeleteWebhook удаляет webhook (нужно вызывать перед запуском polling)
func (c *Client) DeleteWebhook(ctx context.Context) error {
	req := struct {
		DropPendingUpdates bool `json:"drop_pending_updates"`
	}{
		DropPendingUpdates: true,
	}

	if err := c.call(ctx, "deleteWebhook", req, nil); err != nil {
		return fmt.Errorf("deleteWebhook: %w", err)
	}

	c.log.Info("webhook deleted successfully")
	return nil
}

package telegram

import (
	"context"
	"fmt"
)

// EditMessageTextRequest запрос на замену текста сообщения
type EditMessageTextRequest struct {
	ChatID             int64               `json:"chat_id"`
	MessageID          int64               `json:"message_id"`
	Text               string              `json:"text"`
	ParseMode          string              `json:"parse_mode,omitempty"`
	LinkPreviewOptions *LinkPreviewOptions `json:"link_preview_options,omitempty"`
}

// LinkPreviewOptions настройки превью ссылок
type LinkPreviewOptions struct {
	IsDisabled bool `json:"is_disabled"`
}

// EditMessageText заменяет текст сообщения (Markdown, без превью ссылок).
// Inline клавиатура сообщения при этом убирается.
func (c *Client) EditMessageText(ctx context.Context, chatID int64, messageID int64, text string) error {
	req := EditMessageTextRequest{
		ChatID:             chatID,
		MessageID:          messageID,
		Text:               text,
		ParseMode:          parseModeMarkdown,
		LinkPreviewOptions: &LinkPreviewOptions{IsDisabled: true},
	}

	if err := c.call(ctx, "editMessageText", req, nil); err != nil {
		return fmt.Errorf("editMessageText in chat %d: %w", chatID, err)
	}

	c.log.Debug("message edited successfully",
		"chat_id", chatID,
		"message_id", messageID,
	)
	return nil
}

package natal

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// Ошибки отправки уже залогированы сервисом Telegram

func (s *Service) sendMessage(ctx context.Context, chatID int64, text string) error {
	return s.TelegramClient.SendMessage(ctx, chatID, text)
}

func (s *Service) sendMarkdown(ctx context.Context, chatID int64, text string) error {
	return s.TelegramClient.SendMessageWithMarkdown(ctx, chatID, text)
}

func (s *Service) sendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard *domain.InlineKeyboard) error {
	return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, text, keyboard)
}

func (s *Service) editMessage(ctx context.Context, chatID int64, messageID int64, text string) error {
	return s.TelegramClient.EditMessageText(ctx, chatID, messageID, text)
}

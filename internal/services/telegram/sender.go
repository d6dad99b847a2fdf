package telegram

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// SendMessage отправляет текстовое сообщение пользователю
func (s *Service) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := s.TelegramClient.SendMessage(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send message",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// SendMessageWithMarkdown отправляет текстовое сообщение с Markdown форматированием
func (s *Service) SendMessageWithMarkdown(ctx context.Context, chatID int64, text string) error {
	if err := s.TelegramClient.SendMessageWithMarkdown(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send message with markdown",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send message with markdown: %w", err)
	}

	return nil
}

// SendMessageWithKeyboard отправляет сообщение с клавиатурой
func (s *Service) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard *domain.InlineKeyboard) error {
	if err := s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, text, keyboard); err != nil {
		s.Log.Error("failed to send message with keyboard",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send message with keyboard: %w", err)
	}

	return nil
}

// EditMessageText заменяет текст ранее отправленного сообщения
func (s *Service) EditMessageText(ctx context.Context, chatID int64, messageID int64, text string) error {
	if err := s.TelegramClient.EditMessageText(ctx, chatID, messageID, text); err != nil {
		s.Log.Error("failed to edit message",
			"error", err,
			"chat_id", chatID,
			"message_id", messageID,
		)
		return fmt.Errorf("failed to edit message: %w", err)
	}

	return nil
}

// AnswerCallbackQuery отправляет ответ на callback query
func (s *Service) AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error {
	if err := s.TelegramClient.AnswerCallbackQuery(ctx, callbackID, text, showAlert); err != nil {
		s.Log.Error("failed to answer callback query",
			"error", err,
			"callback_id", callbackID,
		)
		return fmt.Errorf("failed to answer callback query: %w", err)
	}

	return nil
}

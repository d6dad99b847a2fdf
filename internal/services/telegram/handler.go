package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

const privateChat = "private"

// HandleUpdate Основной метод для обработки всех типов обновлений
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}
	if s.BotService == nil {
		return fmt.Errorf("bot service is not set")
	}

	switch {
	case update.Message != nil:
		return s.HandleMessage(ctx, update.Message, update.UpdateID)
	case update.CallbackQuery != nil:
		return s.HandleCallbackQuery(ctx, update.CallbackQuery, update.UpdateID)
	}

	return nil
}

// HandleMessage обрабатывает входящее сообщение - роутинг в usecase
func (s *Service) HandleMessage(ctx context.Context, message *domain.Message, updateID int64) error {
	if message == nil {
		return fmt.Errorf("message is nil")
	}

	if message.From != nil && message.From.IsBot {
		s.Log.Debug("ignoring message from bot", "update_id", updateID)
		return nil
	}

	if message.Chat == nil || message.Chat.Type != privateChat {
		chatType := ""
		if message.Chat != nil {
			chatType = message.Chat.Type
		}
		s.Log.Warn("ignoring message from group/chat",
			"update_id", updateID,
			"chat_type", chatType,
		)
		return nil
	}

	if message.Text == nil {
		return nil
	}

	text := *message.Text
	if IsCommand(text) {
		return s.BotService.HandleCommand(ctx, message.Chat.ID, ParseCommand(text))
	}

	return s.BotService.HandleText(ctx, message.Chat.ID, text)
}

// HandleCallbackQuery нажатие inline кнопки
func (s *Service) HandleCallbackQuery(ctx context.Context, query *domain.CallbackQuery, updateID int64) error {
	if query.Message == nil || query.Message.Chat == nil {
		s.Log.Debug("ignoring callback without message", "update_id", updateID)
		return nil
	}

	if query.Message.Chat.Type != privateChat {
		s.Log.Warn("ignoring callback from group/chat",
			"update_id", updateID,
			"chat_type", query.Message.Chat.Type,
		)
		return nil
	}

	return s.BotService.HandleCallback(ctx, query)
}

func ParseCommand(text string) string {
	text = strings.TrimPrefix(text, "/")

	if idx := strings.Index(text, "@"); idx != -1 {
		text = text[:idx]
	}

	if idx := strings.Index(text, " "); idx != -1 {
		text = text[:idx]
	}

	return strings.ToLower(text)
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}

package telegram

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IClient интерфейс для клиента Telegram API
type IClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMarkdown(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard *domain.InlineKeyboard) error
	EditMessageText(ctx context.Context, chatID int64, messageID int64, text string) error
	AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error
}

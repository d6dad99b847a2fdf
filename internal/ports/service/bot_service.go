package service

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IBotService интерфейс для бизнес-логики бота
type IBotService interface {
	HandleCommand(ctx context.Context, chatID int64, command string) error
	HandleText(ctx context.Context, chatID int64, text string) error
	HandleCallback(ctx context.Context, query *domain.CallbackQuery) error
}

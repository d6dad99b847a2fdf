package repository

import (
	"context"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// ISessionRepo хранилище диалогов по chat_id
type ISessionRepo interface {
	Get(ctx context.Context, chatID int64) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, chatID int64) error
	DeleteIdle(ctx context.Context, idleSince time.Time) (int, error)
}

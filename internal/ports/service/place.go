package service

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IPlaceResolver место -> координаты, адрес и IANA зона.
// Любая неудача возвращает ошибку, оборачивающую domain.ErrPlaceNotResolved.
type IPlaceResolver interface {
	Resolve(ctx context.Context, text string) (domain.ResolvedPlace, error)
}

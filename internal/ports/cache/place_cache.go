package cache

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IPlaceCache кэш разрешённых мест по нормализованному тексту запроса.
// Записи не истекают и не инвалидируются в течение жизни процесса.
type IPlaceCache interface {
	Get(ctx context.Context, key string) (domain.ResolvedPlace, bool)
	Set(ctx context.Context, key string, place domain.ResolvedPlace)
	Len() int
}

package service

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IChartEngine расчёт натальной карты на момент UTC
type IChartEngine interface {
	Compute(ctx context.Context, instant domain.UTCInstant, lat, lon float64) (*domain.Chart, error)
}

package service

import (
	"context"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IEphemerisService интерфейс расчёта положений точек карты
type IEphemerisService interface {
	CalculatePositions(
		ctx context.Context,
		at time.Time,
		place domain.GeoPoint,
		points []domain.Point,
		houseSystem domain.HouseSystem,
	) ([]domain.PointPosition, error)
}

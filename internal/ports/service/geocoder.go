package service

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IGeocoder интерфейс провайдера геокодинга.
// found=false без ошибки означает, что место не найдено.
type IGeocoder interface {
	Geocode(ctx context.Context, query string) (result domain.GeocodeResult, found bool, err error)
}

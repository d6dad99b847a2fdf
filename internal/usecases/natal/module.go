// Package natal диалог сбора данных рождения и выдача натальной карты
package natal

import (
	"log/slog"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/ports/repository"
	"github.com/admin/tg-bots/natal-bot/internal/ports/service"
)

// Service бизнес-логика бота натальных карт
type Service struct {
	SessionRepo    repository.ISessionRepo
	PlaceResolver  service.IPlaceResolver
	ChartEngine    service.IChartEngine
	TelegramClient service.ITelegramService
	AlerterService service.IAlerterService // nil, если алерты не нужны
	Log            *slog.Logger

	now func() time.Time
}

// New создаёт новый сервис бизнес-логики бота
func New(
	sessionRepo repository.ISessionRepo,
	placeResolver service.IPlaceResolver,
	chartEngine service.IChartEngine,
	telegramClient service.ITelegramService,
	alerterService service.IAlerterService,
	log *slog.Logger,
) *Service {
	return &Service{
		SessionRepo:    sessionRepo,
		PlaceResolver:  placeResolver,
		ChartEngine:    chartEngine,
		TelegramClient: telegramClient,
		AlerterService: alerterService,
		Log:            log,
		now:            time.Now,
	}
}

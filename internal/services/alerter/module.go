package alerter

import (
	"context"
	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/alerter"
	"github.com/admin/tg-bots/natal-bot/internal/ports/service"
)

type sender interface {
	SendAlert(ctx context.Context, message string) error
}

// Service реализует IAlerterService. Без настроенного клиента алерт только пишется в лог.
type Service struct {
	sender sender // nil, если алертер не настроен
	source string
	log    *slog.Logger
}

// New source подписывает алерты, чтобы в общем чате было видно, какой бот упал
func New(client *alerter.Client, source string, log *slog.Logger) service.IAlerterService {
	s := &Service{
		source: source,
		log:    log,
	}
	if client != nil {
		s.sender = client
	}
	return s
}

func (s *Service) SendAlert(ctx context.Context, message string) error {
	if s.sender == nil {
		s.log.Warn("alert (alerter not configured)", "message", message)
		return nil
	}

	if s.source != "" {
		message = "[" + s.source + "] " + message
	}
	return s.sender.SendAlert(ctx, message)
}

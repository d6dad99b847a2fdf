package telegram

import (
	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/ports/service"
	"github.com/admin/tg-bots/natal-bot/internal/ports/telegram"
)

// Service роутит обновления Telegram в usecase и отправляет ответы
type Service struct {
	BotService     service.IBotService
	TelegramClient telegram.IClient
	Log            *slog.Logger
}

func New(
	telegramClient telegram.IClient,
	log *slog.Logger,
) *Service {
	return &Service{
		TelegramClient: telegramClient,
		Log:            log,
	}
}

// SetBotService устанавливает usecase. Usecase сам отправляет сообщения
// через этот сервис, поэтому связываются они после создания обоих.
func (s *Service) SetBotService(botService service.IBotService) {
	s.BotService = botService
}

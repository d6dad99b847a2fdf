package natal

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
)

func (s *Service) HandleCommand(ctx context.Context, chatID int64, command string) error {
	switch command {
	case "start":
		return s.HandleStart(ctx, chatID)
	case "help":
		return s.sendMessage(ctx, chatID, texts.Help)
	case "cancel":
		return s.HandleCancel(ctx, chatID)
	default:
		return s.sendMarkdown(ctx, chatID, texts.FormatUnknownCommand(command))
	}
}

// HandleStart начинает диалог заново, даже если предыдущий не закончен
func (s *Service) HandleStart(ctx context.Context, chatID int64) error {
	session := domain.NewSession(chatID, s.now())
	if err := s.SessionRepo.Save(ctx, session); err != nil {
		s.Log.Error("failed to save session",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.Log.Debug("dialogue started", "chat_id", chatID)
	return s.sendMarkdown(ctx, chatID, texts.Welcome)
}

// HandleCancel обрабатывает команду /cancel
func (s *Service) HandleCancel(ctx context.Context, chatID int64) error {
	if err := s.SessionRepo.Delete(ctx, chatID); err != nil {
		s.Log.Error("failed to delete session",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return s.sendMessage(ctx, chatID, texts.Cancelled)
}

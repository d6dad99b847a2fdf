package natal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
)

// HandleCallback кнопки подтверждения: ok - считаем карту, edit - заново с даты
func (s *Service) HandleCallback(ctx context.Context, query *domain.CallbackQuery) error {
	if query == nil || query.Message == nil || query.Message.Chat == nil {
		return fmt.Errorf("callback query without message")
	}

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	data := ""
	if query.Data != nil {
		data = *query.Data
	}

	answer := ""
	if data == texts.CallbackConfirm {
		answer = texts.Calculating
	}
	// ответ на callback только убирает «часики» у кнопки, его ошибка не критична
	if err := s.TelegramClient.AnswerCallbackQuery(ctx, query.ID, answer, false); err != nil {
		s.Log.Warn("failed to answer callback query",
			"error", err,
			"chat_id", chatID,
		)
	}

	session, err := s.SessionRepo.Get(ctx, chatID)
	if errors.Is(err, domain.ErrSessionNotFound) || (err == nil && session.State != domain.StateAwaitingConfirmation) {
		// кнопки от старого или завершённого диалога
		return s.sendMessage(ctx, chatID, texts.NoSession)
	}
	if err != nil {
		s.Log.Error("failed to get session",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to get session: %w", err)
	}

	switch data {
	case texts.CallbackEdit:
		return s.handleEdit(ctx, session, messageID)
	case texts.CallbackConfirm:
		return s.handleConfirm(ctx, session, messageID)
	default:
		s.Log.Debug("unknown callback data", "data", data, "chat_id", chatID)
		return nil
	}
}

func (s *Service) handleEdit(ctx context.Context, session *domain.Session, messageID int64) error {
	session.Restart(s.now())
	if err := s.saveSession(ctx, session); err != nil {
		return err
	}

	return s.editMessage(ctx, session.ChatID, messageID, texts.EditRestart)
}

// handleConfirm считает карту и заменяет ей сообщение с подтверждением.
// Диалог заканчивается в любом случае, повторить можно через /start.
func (s *Service) handleConfirm(ctx context.Context, session *domain.Session, messageID int64) error {
	// удаляем до расчёта, чтобы повторное нажатие не запустило второй расчёт
	if err := s.SessionRepo.Delete(ctx, session.ChatID); err != nil {
		s.Log.Error("failed to delete session",
			"error", err,
			"chat_id", session.ChatID,
		)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	requestID := uuid.New()

	text, err := s.buildChart(ctx, session)
	if err != nil {
		s.Log.Error("failed to build natal chart",
			"error", err,
			"request_id", requestID,
			"chat_id", session.ChatID,
		)
		s.sendAlertOrLog(ctx, requestID, session, err)

		if sendErr := s.sendMessage(ctx, session.ChatID, texts.ChartError); sendErr != nil {
			return sendErr
		}
		return domain.WrapBusinessError(err)
	}

	s.Log.Info("natal chart sent",
		"request_id", requestID,
		"chat_id", session.ChatID,
		"timezone", session.Place.Timezone,
	)

	return s.editMessage(ctx, session.ChatID, messageID, text)
}

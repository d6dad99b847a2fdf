package natal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/pkg/birthtime"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
)

// HandleText обрабатывает ответ на текущий шаг диалога
func (s *Service) HandleText(ctx context.Context, chatID int64, text string) error {
	session, err := s.SessionRepo.Get(ctx, chatID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return s.sendMessage(ctx, chatID, texts.NoSession)
	}
	if err != nil {
		s.Log.Error("failed to get session",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to get session: %w", err)
	}

	switch session.State {
	case domain.StateAwaitingDate:
		return s.handleDate(ctx, session, text)
	case domain.StateAwaitingTime:
		return s.handleTime(ctx, session, text)
	case domain.StateAwaitingPlace:
		return s.handlePlace(ctx, session, text)
	case domain.StateAwaitingConfirmation:
		return s.sendMessage(ctx, chatID, texts.UseButtons)
	default:
		return fmt.Errorf("unexpected dialogue state %s", session.State)
	}
}

func (s *Service) handleDate(ctx context.Context, session *domain.Session, text string) error {
	date, ok := birthtime.ParseDate(text)
	if !ok {
		return s.sendMessage(ctx, session.ChatID, texts.InvalidDate)
	}

	session.Birth.Date = date
	session.Advance(domain.StateAwaitingTime, s.now())
	if err := s.saveSession(ctx, session); err != nil {
		return err
	}

	return s.sendMarkdown(ctx, session.ChatID, texts.AskTime)
}

func (s *Service) handleTime(ctx context.Context, session *domain.Session, text string) error {
	clock, ok := birthtime.ParseTime(text)
	if !ok {
		return s.sendMessage(ctx, session.ChatID, texts.InvalidTime)
	}

	session.Birth.Time = clock
	session.Advance(domain.StateAwaitingPlace, s.now())
	if err := s.saveSession(ctx, session); err != nil {
		return err
	}

	return s.sendMarkdown(ctx, session.ChatID, texts.AskPlace)
}

// handlePlace резолвит место; при неудаче шаг повторяется
func (s *Service) handlePlace(ctx context.Context, session *domain.Session, text string) error {
	placeText := strings.TrimSpace(text)

	place, err := s.PlaceResolver.Resolve(ctx, placeText)
	if err != nil {
		s.Log.Info("place not resolved",
			"error", err,
			"chat_id", session.ChatID,
		)
		return s.sendMarkdown(ctx, session.ChatID, texts.PlaceNotFound)
	}

	session.Birth.Place = placeText
	session.Place = &place
	session.Advance(domain.StateAwaitingConfirmation, s.now())
	if err := s.saveSession(ctx, session); err != nil {
		return err
	}

	summary := texts.FormatConfirmation(session.Birth.Date, session.Birth.Time, place)
	return s.sendMessageWithKeyboard(ctx, session.ChatID, summary, texts.ConfirmKeyboard())
}

func (s *Service) saveSession(ctx context.Context, session *domain.Session) error {
	if err := s.SessionRepo.Save(ctx, session); err != nil {
		s.Log.Error("failed to save session",
			"error", err,
			"chat_id", session.ChatID,
			"state", session.State.String(),
		)
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

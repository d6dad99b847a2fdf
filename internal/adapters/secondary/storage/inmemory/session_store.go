package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/ports/repository"
)

// SessionStore in-memory хранилище диалогов по chat_id.
// Наружу отдаются копии, чтобы разные апдейты не делили один указатель.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
}

// NewSessionStore создаёт пустое хранилище диалогов
func NewSessionStore() repository.ISessionRepo {
	return &SessionStore{
		sessions: make(map[int64]domain.Session),
	}
}

// Get возвращает копию диалога или domain.ErrSessionNotFound
func (s *SessionStore) Get(_ context.Context, chatID int64) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[chatID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return copySession(session), nil
}

// Save сохраняет диалог, заменяя предыдущий
func (s *SessionStore) Save(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ChatID] = *copySession(*session)
	return nil
}

// Delete удаляет диалог, если он есть
func (s *SessionStore) Delete(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
	return nil
}

// DeleteIdle удаляет диалоги без активности с idleSince, возвращает их число
func (s *SessionStore) DeleteIdle(_ context.Context, idleSince time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for chatID, session := range s.sessions {
		if session.UpdatedAt.Before(idleSince) {
			delete(s.sessions, chatID)
			removed++
		}
	}
	return removed, nil
}

func copySession(s domain.Session) *domain.Session {
	if s.Place != nil {
		place := *s.Place
		s.Place = &place
	}
	return &s
}

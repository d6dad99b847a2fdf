package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/ports/repository"
)

const (
	sessionExpirerName     = "session-expirer"
	sessionExpirerInterval = 10 * time.Minute
)

// SessionExpirer удаляет диалоги, брошенные на полпути
type SessionExpirer struct {
	sessions repository.ISessionRepo
	ttl      time.Duration
	log      *slog.Logger
	now      func() time.Time
}

func NewSessionExpirer(sessions repository.ISessionRepo, ttl time.Duration, log *slog.Logger) *SessionExpirer {
	return &SessionExpirer{
		sessions: sessions,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

func (j *SessionExpirer) Name() string {
	return sessionExpirerName
}

// NextRun каждые 10 минут, по границе интервала
func (j *SessionExpirer) NextRun(now time.Time) time.Time {
	return now.Truncate(sessionExpirerInterval).Add(sessionExpirerInterval)
}

// Run удаляет сессии, не обновлявшиеся дольше ttl
func (j *SessionExpirer) Run(ctx context.Context) error {
	idleSince := j.now().Add(-j.ttl)

	removed, err := j.sessions.DeleteIdle(ctx, idleSince)
	if err != nil {
		return fmt.Errorf("failed to delete idle sessions: %w", err)
	}

	if removed > 0 {
		j.log.Info("idle sessions expired",
			"removed", removed,
			"idle_since", idleSince,
		)
	}
	return nil
}

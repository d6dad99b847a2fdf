package natal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

const infoString = "❌ Ошибка расчёта натальной карты\n\n"

// sendAlertOrLog отправляет алерт в Telegram канал, не падает если алертер не настроен
func (s *Service) sendAlertOrLog(ctx context.Context, requestID uuid.UUID, session *domain.Session, cause error) {
	if s.AlerterService == nil {
		return
	}

	if err := s.AlerterService.SendAlert(ctx, formatAlertMessage(requestID, session, cause)); err != nil {
		s.Log.Warn("failed to send alert (non-critical)",
			"error", err,
			"request_id", requestID,
		)
	}
}

func formatAlertMessage(requestID uuid.UUID, session *domain.Session, cause error) string {
	var builder strings.Builder
	builder.WriteString(infoString)
	builder.WriteString(fmt.Sprintf("🆔 Request ID: %s\n", requestID))
	builder.WriteString(fmt.Sprintf("💬 Chat ID: %d\n", session.ChatID))
	builder.WriteString(fmt.Sprintf("📅 %s %s\n", session.Birth.Date, session.Birth.Time))
	if session.Place != nil {
		builder.WriteString(fmt.Sprintf("📍 %s (%.4f, %.4f)\n", session.Place.Timezone, session.Place.Lat, session.Place.Lon))
	}
	builder.WriteString(fmt.Sprintf("\n%v", cause))
	return builder.String()
}

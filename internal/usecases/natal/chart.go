package natal

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/pkg/birthtime"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/chart"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
)

// buildChart местное время -> UTC -> карта -> текст сообщения
func (s *Service) buildChart(ctx context.Context, session *domain.Session) (string, error) {
	if session.Place == nil {
		return "", fmt.Errorf("session has no resolved place")
	}
	place := session.Place

	instant, err := birthtime.ToUTC(session.Birth.Date, session.Birth.Time, place.Timezone)
	if err != nil {
		return "", fmt.Errorf("failed to convert birth time to UTC: %w", err)
	}

	natalChart, err := s.ChartEngine.Compute(ctx, instant, place.Lat, place.Lon)
	if err != nil {
		return "", err
	}

	points := chart.SummarizePoints(natalChart)
	aspects := chart.SummarizeAspects(natalChart)

	s.Log.Debug("natal chart computed",
		"chat_id", session.ChatID,
		"utc", instant.String(),
		"aspects", len(aspects),
	)

	return texts.FormatChart(points, aspects), nil
}

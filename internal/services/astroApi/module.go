package astroApi

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	astroApiAdapter "github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/astroApi"
	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/ports/service"
)

// apiPointNames имена точек в API, если отличаются от наших
var apiPointNames = map[domain.Point]string{
	domain.PointMidheaven: "Medium_Coeli",
}

// Service реализует IEphemerisService поверх астро-API
type Service struct {
	client *astroApiAdapter.Client
}

// New создаёт новый сервис эфемерид
func New(client *astroApiAdapter.Client) service.IEphemerisService {
	return &Service{
		client: client,
	}
}

// CalculatePositions возвращает долготы и дома для всех запрошенных точек.
// Если хотя бы одной точки нет в ответе, это ошибка: частичная карта не нужна.
func (s *Service) CalculatePositions(
	ctx context.Context,
	at time.Time,
	place domain.GeoPoint,
	points []domain.Point,
	houseSystem domain.HouseSystem,
) ([]domain.PointPosition, error) {
	at = at.UTC()

	activePoints := make([]string, 0, len(points))
	for _, p := range points {
		activePoints = append(activePoints, apiName(p))
	}

	req := astroApiAdapter.NatalChartRequest{
		Subject: astroApiAdapter.Person{
			Name: "User", // Имя не важно для API
			BirthData: astroApiAdapter.BirthData{
				Year:      at.Year(),
				Month:     int(at.Month()),
				Day:       at.Day(),
				Hour:      at.Hour(),
				Minute:    at.Minute(),
				Second:    at.Second(),
				Latitude:  place.Lat,
				Longitude: place.Lon,
				Timezone:  "UTC",
			},
		},
		Options: astroApiAdapter.ChartOptions{
			HouseSystem:  string(houseSystem),
			ZodiacType:   "Tropic",
			ActivePoints: activePoints,
			Precision:    6,
		},
	}

	resp, err := s.client.CalculateNatalChart(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate natal chart: %w", err)
	}

	if resp.Status != "" && resp.Status != "success" {
		return nil, fmt.Errorf("astro API returned error: status=%s, code=%d, message=%s",
			resp.Status, resp.Code, resp.Message)
	}

	if resp.Data == nil {
		return nil, fmt.Errorf("astro API returned empty data")
	}

	byName := make(map[string]astroApiAdapter.PlanetPosition, len(resp.Data.Planets))
	for _, p := range resp.Data.Planets {
		byName[strings.ToLower(p.Name)] = p
	}

	positions := make([]domain.PointPosition, 0, len(points))
	for _, point := range points {
		raw, ok := byName[strings.ToLower(apiName(point))]
		if !ok {
			return nil, fmt.Errorf("point %s is missing in astro API response", point)
		}

		lon, err := longitude(raw)
		if err != nil {
			return nil, fmt.Errorf("point %s: %w", point, err)
		}

		house := raw.House
		if point.IsAngle() {
			house = 0
		}

		positions = append(positions, domain.PointPosition{
			Point:     point,
			Longitude: lon,
			House:     house,
		})
	}

	return positions, nil
}

func apiName(p domain.Point) string {
	if name, ok := apiPointNames[p]; ok {
		return name
	}
	return string(p)
}

// longitude эклиптическая долгота точки: abs_pos, если есть, иначе знак*30 + градус
func longitude(p astroApiAdapter.PlanetPosition) (float64, error) {
	if p.AbsPos != nil {
		if math.IsNaN(*p.AbsPos) || *p.AbsPos < 0 || *p.AbsPos >= 360 {
			return 0, fmt.Errorf("abs_pos out of range: %f", *p.AbsPos)
		}
		return *p.AbsPos, nil
	}

	idx, ok := signIndex(p.Sign)
	if !ok {
		return 0, fmt.Errorf("unknown sign %q", p.Sign)
	}
	if p.Degree < 0 || p.Degree >= 30 {
		return 0, fmt.Errorf("degree out of range: %f", p.Degree)
	}

	return float64(idx)*30 + p.Degree, nil
}

// signIndex понимает полные имена (Aries) и сокращения API (Ari)
func signIndex(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return 0, false
	}

	for i, sign := range domain.Signs {
		full := strings.ToLower(string(sign))
		if name == full || name == full[:3] {
			return i, true
		}
	}

	return 0, false
}

// Package chart строит натальную карту поверх сервиса эфемерид
// и сводит её в строки точек и аспектов.
package chart

import (
	"context"
	"fmt"
	"math"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/ports/service"
)

// Engine считает карту на момент UTC и координаты
type Engine struct {
	ephemeris service.IEphemerisService
}

// New создаёт движок карты
func New(ephemeris service.IEphemerisService) *Engine {
	return &Engine{
		ephemeris: ephemeris,
	}
}

// Compute считает все 12 точек в системе домов Placidus.
// Любая ошибка оборачивает domain.ErrChartCalculation, частичной карты не бывает.
func (e *Engine) Compute(ctx context.Context, instant domain.UTCInstant, lat, lon float64) (*domain.Chart, error) {
	at, err := instant.Time()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrChartCalculation, err)
	}

	positions, err := e.ephemeris.CalculatePositions(
		ctx,
		at,
		domain.GeoPoint{Lat: lat, Lon: lon},
		domain.ChartPoints,
		domain.HouseSystemPlacidus,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrChartCalculation, err)
	}

	chart := &domain.Chart{
		Instant: instant,
		Lat:     lat,
		Lon:     lon,
		Points:  make(map[domain.Point]domain.ChartPoint, len(domain.ChartPoints)),
	}

	for _, pos := range positions {
		point, err := newChartPoint(pos)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrChartCalculation, err)
		}
		chart.Points[pos.Point] = point
	}

	for _, p := range domain.ChartPoints {
		if _, ok := chart.Points[p]; !ok {
			return nil, fmt.Errorf("%w: no position for %s", domain.ErrChartCalculation, p)
		}
	}

	return chart, nil
}

func newChartPoint(pos domain.PointPosition) (domain.ChartPoint, error) {
	lon := pos.Longitude
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return domain.ChartPoint{}, fmt.Errorf("%s: invalid longitude", pos.Point)
	}
	lon = normalizeLongitude(lon)

	house := pos.House
	switch {
	case pos.Point.IsAngle():
		house = 0
	case house < 1 || house > 12:
		return domain.ChartPoint{}, fmt.Errorf("%s: house %d out of range", pos.Point, pos.House)
	}

	idx := int(lon / 30)
	if idx > 11 {
		idx = 11
	}

	return domain.ChartPoint{
		Point:     pos.Point,
		Longitude: lon,
		Sign:      domain.Signs[idx],
		SignLon:   lon - float64(idx)*30,
		House:     house,
	}, nil
}

// normalizeLongitude приводит долготу к [0, 360)
func normalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}

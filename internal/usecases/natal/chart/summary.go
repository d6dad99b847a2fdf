package chart

import (
	"fmt"
	"math"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// orbEpsilon ошибка float на границе орбиса, граница включительна
const orbEpsilon = 1e-9

// SummarizePoints 12 строк в порядке domain.ChartPoints
func SummarizePoints(chart *domain.Chart) []domain.PointSummary {
	out := make([]domain.PointSummary, 0, len(domain.ChartPoints))
	for _, p := range domain.ChartPoints {
		cp, ok := chart.Points[p]
		if !ok {
			continue
		}
		out = append(out, domain.PointSummary{
			Point:  p,
			Sign:   cp.Sign,
			Degree: FormatDegree(cp.SignLon),
			House:  cp.House,
		})
	}
	return out
}

// SummarizeAspects перебирает пары тел i<j в порядке domain.Bodies.
// Порядок вывода совпадает с порядком перебора.
func SummarizeAspects(chart *domain.Chart) []domain.AspectSummary {
	var out []domain.AspectSummary
	for i := 0; i < len(domain.Bodies); i++ {
		a, ok := chart.Points[domain.Bodies[i]]
		if !ok {
			continue
		}
		for j := i + 1; j < len(domain.Bodies); j++ {
			b, ok := chart.Points[domain.Bodies[j]]
			if !ok {
				continue
			}

			kind, orb, ok := MatchAspect(Separation(a.Longitude, b.Longitude))
			if !ok {
				continue
			}
			out = append(out, domain.AspectSummary{
				A:    a.Point,
				Kind: kind,
				B:    b.Point,
				Orb:  math.Round(orb*100) / 100,
			})
		}
	}
	return out
}

// Separation кратчайшая дуга между двумя долготами, [0, 180]
func Separation(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// MatchAspect ближайший мажорный аспект для угла и его орбис.
// ok == false, если орбис больше domain.MaxAspectOrb.
func MatchAspect(separation float64) (domain.AspectKind, float64, bool) {
	best := domain.MajorAspects[0]
	bestOrb := math.Abs(separation - best.Angle)
	for _, asp := range domain.MajorAspects[1:] {
		if orb := math.Abs(separation - asp.Angle); orb < bestOrb {
			best, bestOrb = asp, orb
		}
	}

	if bestOrb > domain.MaxAspectOrb+orbEpsilon {
		return "", 0, false
	}
	return best.Kind, bestOrb, true
}

// FormatDegree D°MM': градусы и минуты отбрасываются, не округляются
func FormatDegree(d float64) string {
	deg := int(d)
	minutes := int((d - float64(deg)) * 60)
	return fmt.Sprintf("%d°%02d'", deg, minutes)
}

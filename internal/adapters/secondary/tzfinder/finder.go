// Package tzfinder определяет IANA часовой пояс по координатам офлайн,
// по полигонам timezone-boundary-builder.
package tzfinder

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/ringsaturn/tzf"
)

// polygonFinder поиск зоны по полигонам, долгота первой
type polygonFinder interface {
	GetTimezoneName(lng float64, lat float64) string
}

// searchRadii радиусы колец поиска ближайшей зоны, в градусах
var searchRadii = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5}

const bearingsPerRing = 16

// Finder ищет зону по полигонам, а если точка вне всех полигонов
// (например, в открытом море), то ближайшую зону.
type Finder struct {
	finder polygonFinder
	log    *slog.Logger
}

// New загружает встроенные данные tzf
func New(log *slog.Logger) (*Finder, error) {
	f, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone polygons: %w", err)
	}

	return &Finder{finder: f, log: log}, nil
}

func newWithFinder(f polygonFinder, log *slog.Logger) *Finder {
	return &Finder{finder: f, log: log}
}

// TimezoneAt возвращает IANA зону или пустую строку
func (f *Finder) TimezoneAt(lat, lon float64) string {
	if name := f.finder.GetTimezoneName(lon, lat); name != "" {
		return name
	}

	name := f.closestTimezone(lat, lon)
	if name != "" {
		f.log.Debug("point outside timezone polygons, using closest zone",
			"lat", lat,
			"lon", lon,
			"timezone", name,
		)
	}
	return name
}

// closestTimezone обходит кольца растущего радиуса вокруг точки.
// В первом кольце с попаданиями берётся самое близкое по расстоянию.
func (f *Finder) closestTimezone(lat, lon float64) string {
	for _, radius := range searchRadii {
		best := ""
		bestDist := math.MaxFloat64

		for i := 0; i < bearingsPerRing; i++ {
			bearing := 2 * math.Pi * float64(i) / bearingsPerRing
			pLat := clampLat(lat + radius*math.Cos(bearing))
			pLon := wrapLon(lon + radius*math.Sin(bearing))

			name := f.finder.GetTimezoneName(pLon, pLat)
			if name == "" {
				continue
			}

			if d := haversine(lat, lon, pLat, pLon); d < bestDist {
				best = name
				bestDist = d
			}
		}

		if best != "" {
			return best
		}
	}

	return ""
}

func clampLat(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

func wrapLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}

// haversine расстояние по большому кругу в радианах
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

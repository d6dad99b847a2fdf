package jobs

import (
	"context"
	"log/slog"
	"time"
)

const placeCacheReporterName = "place-cache-reporter"

// cacheSizer размер кэша мест
type cacheSizer interface {
	CacheSize() int
}

// PlaceCacheReporter раз в час пишет размер кэша мест.
// Кэш не вытесняет записи, так его рост видно в логах.
type PlaceCacheReporter struct {
	places cacheSizer
	log    *slog.Logger
}

func NewPlaceCacheReporter(places cacheSizer, log *slog.Logger) *PlaceCacheReporter {
	return &PlaceCacheReporter{
		places: places,
		log:    log,
	}
}

func (j *PlaceCacheReporter) Name() string {
	return placeCacheReporterName
}

// NextRun в начале каждого часа
func (j *PlaceCacheReporter) NextRun(now time.Time) time.Time {
	return now.Truncate(time.Hour).Add(time.Hour)
}

func (j *PlaceCacheReporter) Run(_ context.Context) error {
	j.log.Info("place cache size", "entries", j.places.CacheSize())
	return nil
}

package place

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/ports/cache"
	"github.com/admin/tg-bots/natal-bot/internal/ports/service"
)

const DefaultGeocodeTimeout = 12 * time.Second

// Resolver превращает текст места в координаты, адрес и IANA зону.
// Успешные результаты кэшируются навсегда по нормализованному тексту.
type Resolver struct {
	cache          cache.IPlaceCache
	geocoder       service.IGeocoder
	finder         service.ITimezoneFinder
	geocodeTimeout time.Duration
	group          singleflight.Group
	log            *slog.Logger
}

// New создаёт резолвер мест
func New(
	placeCache cache.IPlaceCache,
	geocoder service.IGeocoder,
	finder service.ITimezoneFinder,
	geocodeTimeout time.Duration,
	log *slog.Logger,
) *Resolver {
	if geocodeTimeout <= 0 {
		geocodeTimeout = DefaultGeocodeTimeout
	}

	return &Resolver{
		cache:          placeCache,
		geocoder:       geocoder,
		finder:         finder,
		geocodeTimeout: geocodeTimeout,
		log:            log,
	}
}

// NormalizeKey ключ кэша: нижний регистр, без крайних пробелов
func NormalizeKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Resolve разрешает место. Любая неудача (не найдено, нет зоны, провайдер
// недоступен или таймаут) возвращается как ошибка, оборачивающая domain.ErrPlaceNotResolved.
func (r *Resolver) Resolve(ctx context.Context, text string) (domain.ResolvedPlace, error) {
	key := NormalizeKey(text)
	if key == "" {
		return domain.ResolvedPlace{}, fmt.Errorf("%w: empty place", domain.ErrPlaceNotResolved)
	}

	if place, ok := r.cache.Get(ctx, key); ok {
		return place, nil
	}

	// одновременные запросы одного места ждут один поход к провайдерам
	v, err, _ := r.group.Do(key, func() (any, error) {
		if place, ok := r.cache.Get(ctx, key); ok {
			return place, nil
		}
		return r.lookup(ctx, key, strings.TrimSpace(text))
	})
	if err != nil {
		return domain.ResolvedPlace{}, err
	}

	return v.(domain.ResolvedPlace), nil
}

func (r *Resolver) lookup(ctx context.Context, key, query string) (domain.ResolvedPlace, error) {
	geoCtx, cancel := context.WithTimeout(ctx, r.geocodeTimeout)
	defer cancel()

	started := time.Now()
	result, found, err := r.geocoder.Geocode(geoCtx, query)
	if err != nil {
		r.log.Warn("geocoder unavailable",
			"error", err,
			"place", query,
			"elapsed", time.Since(started),
		)
		return domain.ResolvedPlace{}, fmt.Errorf("%w: geocoder: %v", domain.ErrPlaceNotResolved, err)
	}

	if !found {
		r.log.Info("place not found", "place", query)
		return domain.ResolvedPlace{}, fmt.Errorf("%w: no geocoding match for %q", domain.ErrPlaceNotResolved, query)
	}

	zone := r.finder.TimezoneAt(result.Lat, result.Lon)
	if zone == "" {
		r.log.Info("time zone not found",
			"place", query,
			"lat", result.Lat,
			"lon", result.Lon,
		)
		return domain.ResolvedPlace{}, fmt.Errorf("%w: no time zone at %f,%f", domain.ErrPlaceNotResolved, result.Lat, result.Lon)
	}

	place := domain.ResolvedPlace{
		Lat:      result.Lat,
		Lon:      result.Lon,
		Address:  result.Address,
		Timezone: zone,
	}
	r.cache.Set(ctx, key, place)

	r.log.Debug("place resolved",
		"place", query,
		"address", place.Address,
		"timezone", place.Timezone,
		"cache_size", r.cache.Len(),
	)

	return place, nil
}

// CacheSize количество мест в кэше
func (r *Resolver) CacheSize() int {
	return r.cache.Len()
}

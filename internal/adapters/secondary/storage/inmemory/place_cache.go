package inmemory

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/ports/cache"
)

// PlaceCache in-memory кэш разрешённых мест.
// Записи не истекают: рост не ограничен, размер виден в джобе place-cache-reporter.
type PlaceCache struct {
	cache *gocache.Cache
}

// NewPlaceCache создаёт кэш без TTL и без фоновой очистки
func NewPlaceCache() cache.IPlaceCache {
	return &PlaceCache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get возвращает место по нормализованному ключу
func (c *PlaceCache) Get(_ context.Context, key string) (domain.ResolvedPlace, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return domain.ResolvedPlace{}, false
	}
	place, ok := val.(domain.ResolvedPlace)
	return place, ok
}

// Set сохраняет место навсегда
func (c *PlaceCache) Set(_ context.Context, key string, place domain.ResolvedPlace) {
	c.cache.Set(key, place, gocache.NoExpiration)
}

// Len количество мест в кэше
func (c *PlaceCache) Len() int {
	return c.cache.ItemCount()
}

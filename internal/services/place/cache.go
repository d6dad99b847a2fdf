package place

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/ports/cache"
)

const sharedKeyPrefix = "natal:place:"

// LayeredCache локальный кэш процесса поверх общего (Redis), чтобы реплики бота
// не геокодили одно и то же место. Общий кэш только ускоряет: его ошибки не
// ломают резолвинг.
type LayeredCache struct {
	memory cache.IPlaceCache
	shared cache.Cache
	log    *slog.Logger
}

// NewLayeredCache создаёт двухуровневый кэш мест
func NewLayeredCache(memory cache.IPlaceCache, shared cache.Cache, log *slog.Logger) *LayeredCache {
	return &LayeredCache{
		memory: memory,
		shared: shared,
		log:    log,
	}
}

// Get сначала память, потом общий кэш с продвижением в память
func (c *LayeredCache) Get(ctx context.Context, key string) (domain.ResolvedPlace, bool) {
	if place, ok := c.memory.Get(ctx, key); ok {
		return place, true
	}

	raw, err := c.shared.Get(ctx, sharedKeyPrefix+key)
	if err != nil {
		if !errors.Is(err, cache.ErrKeyNotFound) {
			c.log.Warn("shared place cache get failed", "error", err, "key", key)
		}
		return domain.ResolvedPlace{}, false
	}

	var place domain.ResolvedPlace
	if err := json.Unmarshal([]byte(raw), &place); err != nil {
		c.log.Warn("invalid place in shared cache", "error", err, "key", key)
		return domain.ResolvedPlace{}, false
	}

	c.memory.Set(ctx, key, place)
	return place, true
}

// Set пишет в оба уровня, без TTL
func (c *LayeredCache) Set(ctx context.Context, key string, place domain.ResolvedPlace) {
	c.memory.Set(ctx, key, place)

	raw, err := json.Marshal(place)
	if err != nil {
		c.log.Warn("failed to marshal place for shared cache", "error", err, "key", key)
		return
	}

	if err := c.shared.Set(ctx, sharedKeyPrefix+key, string(raw), 0); err != nil {
		c.log.Warn("shared place cache set failed", "error", err, "key", key)
	}
}

// Len размер локального уровня
func (c *LayeredCache) Len() int {
	return c.memory.Len()
}

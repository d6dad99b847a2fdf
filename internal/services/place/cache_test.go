package place

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/storage/inmemory"
	redisAdapter "github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/storage/redis"
	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

func TestLayeredCache_SharedAcrossReplicas(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	shared := redisAdapter.NewClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = shared.Close() })

	replicaA := NewLayeredCache(inmemory.NewPlaceCache(), shared, discardLog)
	replicaB := NewLayeredCache(inmemory.NewPlaceCache(), shared, discardLog)

	place := domain.ResolvedPlace{Lat: 55.75, Lon: 37.61, Address: "Moscow, Russia", Timezone: "Europe/Moscow"}
	replicaA.Set(ctx, "moscow", place)

	assert.True(t, mr.Exists("natal:place:moscow"))
	assert.Equal(t, 0, replicaB.Len())

	got, ok := replicaB.Get(ctx, "moscow")
	require.True(t, ok)
	assert.Equal(t, place, got)
	assert.Equal(t, 1, replicaB.Len()) // продвинуто в память
}

func TestLayeredCache_SharedFailureIsMiss(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	shared := redisAdapter.NewClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = shared.Close() })

	require.NoError(t, mr.Set("natal:place:broken", "not json"))

	c := NewLayeredCache(inmemory.NewPlaceCache(), shared, discardLog)
	_, ok := c.Get(ctx, "broken")
	assert.False(t, ok)

	_, ok = c.Get(ctx, "absent")
	assert.False(t, ok)
}

package tests

import (
	"context"
	"testing"
	"time"

	"plateshare/place-svc/internal/domain"
	"plateshare/place-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisMenuCache_RoundTrip(t *testing.T) {
	client := newTestRedis(t)
	cache := storage.NewRedisMenuCache(client, time.Minute)
	ctx := context.Background()

	_, ok := cache.GetMenu(ctx, "r1")
	assert.False(t, ok)

	dishes := []domain.Dish{{ID: "d1", RestaurantID: "r1", Name: "Koshari", Price: 100}}
	require.NoError(t, cache.SetMenu(ctx, "r1", dishes))

	got, ok := cache.GetMenu(ctx, "r1")
	require.True(t, ok)
	assert.Equal(t, dishes, got)

	require.NoError(t, cache.Invalidate(ctx, "r1"))
	_, ok = cache.GetMenu(ctx, "r1")
	assert.False(t, ok)
}

func TestRedisPopularityReader_OrderedByScore(t *testing.T) {
	client := newTestRedis(t)
	reader := storage.NewRedisPopularityReader(client)
	ctx := context.Background()

	key := "popularity:dishes:r1"
	require.NoError(t, client.ZAdd(ctx, key,
		redis.Z{Score: 3, Member: "d1"},
		redis.Z{Score: 10, Member: "d2"},
		redis.Z{Score: 7, Member: "d3"},
	).Err())

	ids, scores, err := reader.TopDishIDs(ctx, "r1", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"d2", "d3"}, ids)
	assert.Equal(t, []float64{10, 7}, scores)
}

package storage

import (
	"context"
	"encoding/json"
	"time"

	"plateshare/place-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisMenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, TTL: ttl}
}

func menuKey(restaurantID string) string {
	return "menu:" + restaurantID
}

func (c *RedisMenuCache) GetMenu(ctx context.Context, restaurantID string) ([]domain.Dish, bool) {
	payload, err := c.Client.Get(ctx, menuKey(restaurantID)).Bytes()
	if err != nil {
		return nil, false
	}
	var dishes []domain.Dish
	if err := json.Unmarshal(payload, &dishes); err != nil {
		return nil, false
	}
	return dishes, true
}

func (c *RedisMenuCache) SetMenu(ctx context.Context, restaurantID string, dishes []domain.Dish) error {
	payload, err := json.Marshal(dishes)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, menuKey(restaurantID), payload, c.TTL).Err()
}

func (c *RedisMenuCache) Invalidate(ctx context.Context, restaurantID string) error {
	return c.Client.Del(ctx, menuKey(restaurantID)).Err()
}

// RedisPopularityReader reads the per-restaurant dish ranking agg-svc keeps
// as a sorted set.
type RedisPopularityReader struct {
	Client *redis.Client
}

func NewRedisPopularityReader(client *redis.Client) *RedisPopularityReader {
	return &RedisPopularityReader{Client: client}
}

func (r *RedisPopularityReader) TopDishIDs(ctx context.Context, restaurantID string, limit int) ([]string, []float64, error) {
	key := "popularity:dishes:" + restaurantID
	result, err := r.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, nil, err
	}

	ids := make([]string, 0, len(result))
	scores := make([]float64, 0, len(result))
	for _, member := range result {
		id, ok := member.Member.(string)
		if !ok {
			continue
		}
		ids = append(ids, id)
		scores = append(scores, member.Score)
	}
	return ids, scores, nil
}

package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisLikeStore keeps one set of liker user IDs per post.
type RedisLikeStore struct {
	Client *redis.Client
}

func NewRedisLikeStore(client *redis.Client) *RedisLikeStore {
	return &RedisLikeStore{Client: client}
}

func likersKey(postID string) string {
	return "post:likers:" + postID
}

func (s *RedisLikeStore) Liked(ctx context.Context, postID, userID string) (bool, error) {
	return s.Client.SIsMember(ctx, likersKey(postID), userID).Result()
}

func (s *RedisLikeStore) AddLiker(ctx context.Context, postID, userID string) error {
	return s.Client.SAdd(ctx, likersKey(postID), userID).Err()
}

func (s *RedisLikeStore) RemoveLiker(ctx context.Context, postID, userID string) error {
	return s.Client.SRem(ctx, likersKey(postID), userID).Err()
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"plateshare/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
	}
}

// RecordOrder upserts the read-side restaurant_orders row for the event.
// Replays of the same event are harmless.
func (s *Store) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO restaurant_orders (order_id, restaurant_id, customer_id, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (order_id) DO UPDATE SET status = EXCLUDED.status
	`, event.OrderID, event.RestaurantID, event.CustomerID, event.Total, event.Status, event.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to record order projection: %w", err)
	}
	return nil
}

// BumpPopularity adds each ordered quantity to the restaurant's dish
// ranking. place-svc reads the same sorted set for its popular endpoint.
func (s *Store) BumpPopularity(ctx context.Context, event domain.OrderEvent) error {
	key := "popularity:dishes:" + event.RestaurantID
	for _, item := range event.Items {
		if err := s.rdb.ZIncrBy(ctx, key, float64(item.Quantity), item.ItemID).Err(); err != nil {
			return fmt.Errorf("failed to bump popularity for %s: %w", item.ItemID, err)
		}
	}
	return nil
}

// BumpDailyCounters tracks per-restaurant order count and revenue per day.
func (s *Store) BumpDailyCounters(ctx context.Context, event domain.OrderEvent) error {
	today := time.Now().Format("2006-01-02")
	key := fmt.Sprintf("orders:daily:%s:%s", today, event.RestaurantID)

	if err := s.rdb.HIncrBy(ctx, key, "orders", 1).Err(); err != nil {
		return fmt.Errorf("failed to increment daily order count: %w", err)
	}
	if err := s.rdb.HIncrByFloat(ctx, key, "revenue", event.Total).Err(); err != nil {
		return fmt.Errorf("failed to increment daily revenue: %w", err)
	}
	s.rdb.Expire(ctx, key, 7*24*time.Hour)
	return nil
}

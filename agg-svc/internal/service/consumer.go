package service

import (
	"context"
	"encoding/json"
	"log"

	"plateshare/agg-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == "order_created" {
			c.ProcessOrder(ctx, event)
		}
	}
}

// ProcessOrder updates each derived view independently. A failed view is
// logged and skipped; the others still apply.
func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != "order_created" {
		return
	}
	log.Printf("Processing order: OrderID=%s, RestaurantID=%s, Total=%.2f",
		event.OrderID, event.RestaurantID, event.Total)

	if err := c.Store.RecordOrder(ctx, event); err != nil {
		log.Printf("Error recording order projection: %v", err)
	}

	if err := c.Store.BumpPopularity(ctx, event); err != nil {
		log.Printf("Error updating dish popularity: %v", err)
	}

	if err := c.Store.BumpDailyCounters(ctx, event); err != nil {
		log.Printf("Error updating daily counters: %v", err)
	}

	log.Printf("Successfully processed order %s", event.OrderID)
}

package service

import (
	"context"

	"plateshare/agg-svc/internal/domain"
	"plateshare/agg-svc/internal/storage"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, event domain.OrderEvent) error
	BumpPopularity(ctx context.Context, event domain.OrderEvent) error
	BumpDailyCounters(ctx context.Context, event domain.OrderEvent) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(ctx context.Context, event domain.OrderEvent)
}

var _ StoreInterface = (*storage.Store)(nil)
var _ ConsumerInterface = (*Consumer)(nil)

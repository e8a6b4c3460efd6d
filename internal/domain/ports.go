package domain

import (
	"context"
	"time"
)

type CatalogRepository interface {
	// Write paths
	UpsertRestaurant(ctx context.Context, r Restaurant, position int) error
	PruneRestaurants(ctx context.Context, keep []string) (int64, error)
	RecordSyncRun(ctx context.Context, run SyncRun) error

	// Read paths
	GetRestaurant(ctx context.Context, id string) (Restaurant, error)
	ListRestaurants(ctx context.Context) ([]Restaurant, error)
	ListDishes(ctx context.Context) ([]Dish, error)
}

// CatalogSource is an upstream Catalog Service speaking the
// GET /restaurants and GET /dishes contract. Documents are returned raw and
// mapped by the app layer.
type CatalogSource interface {
	FetchRestaurants(ctx context.Context) ([]map[string]any, error)
	FetchDishes(ctx context.Context) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type SyncRun struct {
	ID          string
	StartedAt   time.Time
	FinishedAt  time.Time
	Restaurants int
	Dishes      int
	Pruned      int64
	Status      string // ok|failed
	Error       *string
}

package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"puntosabor/internal/adapters/observability"
	"puntosabor/internal/domain"
)

const snapshotKey = "catalog:snapshot"

type QueryService struct {
	repo     domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
	search   domain.SearchOptions
}

func NewQueryService(r domain.CatalogRepository, c domain.Cache, ttl time.Duration, opts domain.SearchOptions) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl, search: opts}
}

// snapshot loads the catalog from cache, falling back to the store. A store
// failure degrades to an empty catalog instead of failing the request.
func (s *QueryService) snapshot(ctx context.Context) domain.Snapshot {
	var snap domain.Snapshot
	if s.cache != nil {
		if ok, err := s.cache.Get(ctx, snapshotKey, &snap); err != nil {
			log.Warn().Err(err).Msg("snapshot cache read failed")
		} else if ok {
			observability.ObserveSnapshot("cache")
			return snap
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rs, err := s.repo.ListRestaurants(gctx)
		snap.Restaurants = rs
		return err
	})
	g.Go(func() error {
		ds, err := s.repo.ListDishes(gctx)
		snap.Dishes = ds
		return err
	})
	if err := g.Wait(); err != nil {
		observability.ObserveSnapshot("degraded")
		log.Error().Err(err).Msg("catalog load failed; serving empty catalog")
		return domain.Snapshot{}
	}
	observability.ObserveSnapshot("store")

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshotKey, snap, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Msg("snapshot cache write failed")
		}
	}
	return snap
}

func (s *QueryService) Restaurants(ctx context.Context, f domain.RestaurantFilter, by domain.RestaurantSort) []domain.Restaurant {
	return SortRestaurants(FilterRestaurants(s.snapshot(ctx).Restaurants, f), by)
}

func (s *QueryService) Restaurant(ctx context.Context, id string) (domain.Restaurant, error) {
	for _, r := range s.snapshot(ctx).Restaurants {
		if r.ID == id {
			return r, nil
		}
	}
	// the snapshot may predate the restaurant, ask the store directly
	return s.repo.GetRestaurant(ctx, id)
}

func (s *QueryService) Specialties(ctx context.Context) []string {
	return SpecialtyOptions(s.snapshot(ctx).Restaurants)
}

func (s *QueryService) Dishes(ctx context.Context) []domain.Dish {
	ds := s.snapshot(ctx).Dishes
	if ds == nil {
		return []domain.Dish{}
	}
	return ds
}

func (s *QueryService) Categories(ctx context.Context, term string, by domain.CategorySort) []domain.Category {
	return Categories(s.snapshot(ctx).Dishes, term, by)
}

func (s *QueryService) Search(ctx context.Context, term string) []domain.SearchResult {
	return Search(s.snapshot(ctx).Restaurants, term, s.search)
}

func (s *QueryService) SearchDishes(ctx context.Context, term string) []domain.Dish {
	return SearchDishes(s.snapshot(ctx).Dishes, term)
}

func (s *QueryService) RestaurantsByDish(ctx context.Context, term string) []domain.Restaurant {
	return RestaurantsByDish(s.snapshot(ctx).Restaurants, term)
}

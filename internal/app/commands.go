package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"puntosabor/internal/domain"
)

type SyncService struct {
	source  domain.CatalogSource
	repo    domain.CatalogRepository
	cache   domain.Cache
	workers int
}

func NewSyncService(src domain.CatalogSource, r domain.CatalogRepository, cache domain.Cache, workers int) *SyncService {
	if workers <= 0 {
		workers = 1
	}
	return &SyncService{source: src, repo: r, cache: cache, workers: workers}
}

// Sync mirrors the upstream catalog into the store. The upstream fetch is
// all-or-nothing; pruning only happens after every upsert succeeded.
func (s *SyncService) Sync(ctx context.Context) (domain.SyncRun, error) {
	run := domain.SyncRun{ID: uuid.NewString(), StartedAt: time.Now().UTC(), Status: "failed"}

	err := s.sync(ctx, &run)
	run.FinishedAt = time.Now().UTC()
	if err != nil {
		msg := err.Error()
		run.Error = &msg
	} else {
		run.Status = "ok"
	}
	if rerr := s.repo.RecordSyncRun(ctx, run); rerr != nil {
		log.Warn().Err(rerr).Str("run", run.ID).Msg("record sync run failed")
	}
	return run, err
}

func (s *SyncService) sync(ctx context.Context, run *domain.SyncRun) error {
	// 1) Fetch restaurants (dishes usually nested).
	docs, err := s.source.FetchRestaurants(ctx)
	if err != nil {
		return fmt.Errorf("fetch restaurants: %w", err)
	}

	restaurants := make([]domain.Restaurant, 0, len(docs))
	seen := make(map[string]struct{}, len(docs))
	flat := make(map[string]bool)
	for _, doc := range docs {
		r, err := mapRestaurant(doc)
		if err != nil {
			log.Warn().Err(err).Msg("restaurant skipped")
			continue
		}
		if _, dup := seen[r.ID]; dup {
			log.Warn().Str("restaurant", r.ID).Msg("duplicate restaurant skipped")
			continue
		}
		seen[r.ID] = struct{}{}
		if _, nested := doc["dishes"]; !nested {
			flat[r.ID] = true
		}
		restaurants = append(restaurants, r)
	}

	// An empty catalog would prune every stored restaurant.
	if len(restaurants) == 0 {
		return fmt.Errorf("upstream returned no usable restaurants (%d documents); refusing to prune", len(docs))
	}

	// 2) Flat export: pull /dishes and hand them to their owners.
	if len(flat) > 0 {
		if err := s.attachFlatDishes(ctx, restaurants, flat); err != nil {
			return err
		}
	}

	// 3) Upsert, bounded by the worker count.
	if err := s.upsertAll(ctx, restaurants); err != nil {
		return err
	}
	run.Restaurants = len(restaurants)
	for _, r := range restaurants {
		run.Dishes += len(r.Dishes)
	}

	// 4) Drop what disappeared upstream.
	keep := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		keep = append(keep, r.ID)
	}
	pruned, err := s.repo.PruneRestaurants(ctx, keep)
	if err != nil {
		return fmt.Errorf("prune restaurants: %w", err)
	}
	run.Pruned = pruned

	// Any change invalidates the whole snapshot.
	if s.cache != nil {
		if err := s.cache.Del(ctx, snapshotKey); err != nil {
			log.Warn().Err(err).Msg("snapshot cache eviction failed")
		}
	}
	return nil
}

func (s *SyncService) attachFlatDishes(ctx context.Context, restaurants []domain.Restaurant, flat map[string]bool) error {
	docs, err := s.source.FetchDishes(ctx)
	if err != nil {
		return fmt.Errorf("fetch dishes: %w", err)
	}
	byID := make(map[string]int, len(restaurants))
	byName := make(map[string]int, len(restaurants))
	for i, r := range restaurants {
		if !flat[r.ID] {
			continue
		}
		byID[r.ID] = i
		byName[r.Name] = i
	}
	for _, doc := range docs {
		d, err := mapDish(doc)
		if err != nil {
			log.Warn().Err(err).Msg("dish skipped")
			continue
		}
		i, ok := byID[d.RestaurantID]
		if !ok {
			i, ok = byName[d.Restaurant.Name]
		}
		if !ok {
			log.Warn().Str("dish", d.ID).Str("restaurant", d.Restaurant.Name).Msg("dish without known restaurant skipped")
			continue
		}
		restaurants[i].Dishes = append(restaurants[i].Dishes, attachRestaurant(d, restaurants[i]))
	}
	return nil
}

func (s *SyncService) upsertAll(ctx context.Context, restaurants []domain.Restaurant) error {
	sem := semaphore.NewWeighted(int64(s.workers))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for pos, r := range restaurants {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(r domain.Restaurant, pos int) {
			defer wg.Done()
			defer sem.Release(1)

			if err := s.repo.UpsertRestaurant(ctx, r, pos); err != nil {
				log.Warn().Str("restaurant", r.ID).Err(err).Msg("upsert failed")
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("upsert restaurant %s: %w", r.ID, err)
				}
				mu.Unlock()
				return
			}
			log.Debug().Str("restaurant", r.ID).Int("dishes", len(r.Dishes)).Msg("upsert ok")
		}(r, pos)
	}

	wg.Wait()
	return firstErr
}

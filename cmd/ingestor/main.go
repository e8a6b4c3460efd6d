package main

import (
	"context"
	"database/sql"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"puntosabor/internal/adapters/catalog"
	"puntosabor/internal/adapters/observability"
	redisad "puntosabor/internal/adapters/redis"
	"puntosabor/internal/app"
	"puntosabor/internal/domain"
	"puntosabor/internal/shared"
	mysqlrepo "puntosabor/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	// 2) pick the upstream: a seed file for local work, the Catalog Service otherwise
	var source domain.CatalogSource
	if cfg.CatalogSeedFile != "" {
		source = catalog.NewFileSource(cfg.CatalogSeedFile)
		log.Info().Str("file", cfg.CatalogSeedFile).Int("workers", cfg.Workers).Msg("ingestor starting")
	} else {
		client, err := catalog.New(cfg.CatalogBase, cfg.CatalogToken, cfg.CatalogRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize catalog client")
		}
		source = client
		log.Info().Str("base", cfg.CatalogBase).Int("workers", cfg.Workers).Msg("ingestor starting")
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := app.NewSyncService(source, mysqlrepo.New(db), cache, cfg.Workers)

	run, err := svc.Sync(ctx)
	ev := log.Info()
	if err != nil {
		ev = log.Error().Err(err)
	}
	ev.Str("run", run.ID).
		Int("restaurants", run.Restaurants).
		Int("dishes", run.Dishes).
		Int64("pruned", run.Pruned).
		Dur("took", run.FinishedAt.Sub(run.StartedAt)).
		Msg("sync " + run.Status)
	if err != nil {
		db.Close()
		os.Exit(1)
	}
}

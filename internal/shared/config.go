package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	APIVersion  string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	CatalogBase     string
	CatalogToken    string
	CatalogRPS      int
	CatalogSeedFile string
	Workers         int

	CacheTTL        time.Duration
	CORSOrigins     []string
	RateLimitMax    int
	RateLimitWindow time.Duration

	SearchPreviewSize       int
	SearchPreferDishMatches bool
}

// IsDev reports whether the process runs in a development environment.
func (c Config) IsDev() bool {
	return c.AppEnv == "dev" || c.AppEnv == "development"
}

// Load reads the environment, after merging a .env file when one exists.
func Load() Config {
	// a missing .env is the normal case outside local development
	_ = godotenv.Load()

	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		APIVersion:  env("API_VERSION", "v1"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/puntosabor?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),

		CatalogBase:     env("CATALOG_BASE_URL", "http://localhost:5000/api/v1"),
		CatalogToken:    env("CATALOG_TOKEN", ""),
		CatalogRPS:      atoi("CATALOG_RPS", 5),
		CatalogSeedFile: env("CATALOG_SEED_FILE", ""),
		Workers:         atoi("INGEST_WORKERS", 8),

		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		CORSOrigins:     list("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		RateLimitWindow: time.Duration(atoi("RATE_LIMIT_WINDOW_SECONDS", 900)) * time.Second,

		SearchPreviewSize:       atoi("SEARCH_PREVIEW_SIZE", 3),
		SearchPreferDishMatches: boolean("SEARCH_PREFER_DISH_MATCHES", false),
	}

	// dev gets a generous limit so hot reloads don't trip it
	defLimit := 100
	if c.IsDev() {
		defLimit = 1000
	}
	c.RateLimitMax = atoi("RATE_LIMIT_MAX", defLimit)

	if c.CatalogToken == "" && c.CatalogSeedFile == "" {
		log.Warn().Msg("CATALOG_TOKEN is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
	}
	return def
}

func boolean(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Warn().Str("key", k).Str("value", v).Msg("not a boolean, using default")
	}
	return def
}

// list splits a comma-separated value, dropping blanks.
func list(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

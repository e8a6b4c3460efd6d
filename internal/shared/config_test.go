package shared

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("RATE_LIMIT_MAX", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("CACHE_TTL_SECONDS", "")
	t.Setenv("SEARCH_PREFER_DISH_MATCHES", "")

	c := Load()
	if c.AppEnv != "prod" || c.RateLimitMax != 100 {
		t.Fatalf("env=%q limit=%d", c.AppEnv, c.RateLimitMax)
	}
	if c.RateLimitWindow != 15*time.Minute {
		t.Fatalf("window=%v", c.RateLimitWindow)
	}
	if len(c.CORSOrigins) != 2 || c.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("origins=%v", c.CORSOrigins)
	}
	if c.SearchPreferDishMatches {
		t.Fatal("dish preference should be off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("RATE_LIMIT_MAX", "")
	t.Setenv("CORS_ORIGINS", " https://a.cl , ,https://b.cl")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("SEARCH_PREFER_DISH_MATCHES", "true")
	t.Setenv("INGEST_WORKERS", "nope")

	c := Load()
	if !c.IsDev() || c.RateLimitMax != 1000 {
		t.Fatalf("dev=%v limit=%d", c.IsDev(), c.RateLimitMax)
	}
	if len(c.CORSOrigins) != 2 || c.CORSOrigins[1] != "https://b.cl" {
		t.Fatalf("origins=%v", c.CORSOrigins)
	}
	if c.CacheTTL != time.Minute {
		t.Fatalf("ttl=%v", c.CacheTTL)
	}
	if !c.SearchPreferDishMatches {
		t.Fatal("dish preference not applied")
	}
	if c.Workers != 8 {
		t.Fatalf("workers=%d, want default on bad input", c.Workers)
	}
}

package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CFG_INT", "64")
	if got := getEnvInt("CFG_INT", 256); got != 64 {
		t.Fatalf("getEnvInt returned %d, want 64", got)
	}

	// Non-numeric and non-positive values fall back to default
	t.Setenv("CFG_INT", "abc")
	if got := getEnvInt("CFG_INT", 256); got != 256 {
		t.Fatalf("getEnvInt returned %d, want 256", got)
	}
	t.Setenv("CFG_INT", "-1")
	if got := getEnvInt("CFG_INT", 256); got != 256 {
		t.Fatalf("getEnvInt returned %d, want 256", got)
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins("http://localhost:3000, https://app.example.com ,")
	if len(got) != 2 || got[0] != "http://localhost:3000" || got[1] != "https://app.example.com" {
		t.Fatalf("splitOrigins returned %v", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED", "")
	t.Setenv("CACHE_SIZE", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_INSIGHTS_MODEL", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.CacheSize != 256 {
		t.Fatalf("expected CacheSize default 256, got %d", cfg.CacheSize)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Fatalf("expected AllowedOrigins default [*], got %v", cfg.AllowedOrigins)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("CACHE_SIZE", "32")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_INSIGHTS_MODEL", "model")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.CacheSize != 32 {
		t.Fatalf("cache size override missing: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAIInsightsModel != "model" {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}
}

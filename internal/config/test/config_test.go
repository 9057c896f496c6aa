package main

import (
	"slices"
	"testing"
	"time"

	config "github.com/CodeAndHammer/minigames/internal/config"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "ENV", "LOG_LEVEL", "COOKIE_MAX_AGE", "SESSION_TTL",
		"SESSION_CLEANUP_INTERVAL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMITER_TTL",
		"WORDS_FILE", "QUIZ_FILE", "TRUSTED_PROXIES", "OTEL_EXPORTER_OTLP_ENDPOINT", "TRACING_ENABLED",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg := config.FromEnv()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.IsProduction {
		t.Error("IsProduction = true, want false")
	}
	if cfg.EnvName() != "development" {
		t.Errorf("EnvName = %q, want development", cfg.EnvName())
	}
	if cfg.CookieMaxAge != 2*time.Hour {
		t.Errorf("CookieMaxAge = %v, want 2h", cfg.CookieMaxAge)
	}
	if cfg.SessionTTL != 3*time.Hour {
		t.Errorf("SessionTTL = %v, want 3h", cfg.SessionTTL)
	}
	if cfg.SessionCleanupInterval != 10*time.Minute {
		t.Errorf("SessionCleanupInterval = %v, want 10m", cfg.SessionCleanupInterval)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %d/%d, want 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if !slices.Equal(cfg.TrustedProxies, []string{"127.0.0.1"}) {
		t.Errorf("TrustedProxies = %v", cfg.TrustedProxies)
	}
	if cfg.TracingEnabled {
		t.Error("TracingEnabled = true without an endpoint")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_TTL", "45m")
	t.Setenv("RATE_LIMIT_RPS", "20")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,,")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")
	t.Setenv("WORDS_FILE", "/tmp/words.json")

	cfg := config.FromEnv()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if !cfg.IsProduction || cfg.EnvName() != "production" {
		t.Error("ENV=production not detected")
	}
	if cfg.SessionTTL != 45*time.Minute {
		t.Errorf("SessionTTL = %v, want 45m", cfg.SessionTTL)
	}
	if cfg.RateLimitRPS != 20 {
		t.Errorf("RateLimitRPS = %d, want 20", cfg.RateLimitRPS)
	}
	if !slices.Equal(cfg.TrustedProxies, []string{"10.0.0.1", "10.0.0.2"}) {
		t.Errorf("TrustedProxies = %v", cfg.TrustedProxies)
	}
	if !cfg.TracingEnabled {
		t.Error("TracingEnabled = false with an endpoint set")
	}
	if cfg.WordsFile != "/tmp/words.json" {
		t.Errorf("WordsFile = %q", cfg.WordsFile)
	}
}

func TestTracingCanBeDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")
	t.Setenv("TRACING_ENABLED", "false")
	if config.FromEnv().TracingEnabled {
		t.Error("TRACING_ENABLED=false ignored")
	}
}

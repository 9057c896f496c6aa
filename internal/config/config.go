package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	util "github.com/CodeAndHammer/minigames/internal/util"
)

// Config holds application configuration
type Config struct {
	Port                   string
	IsProduction           bool
	LogLevel               string
	CookieMaxAge           time.Duration
	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration
	RateLimitRPS           int
	RateLimitBurst         int
	RateLimiterTTL         time.Duration
	WordsFile              string
	QuizFile               string
	TrustedProxies         []string
	TracingEnabled         bool
}

// Load reads a .env file when present, then environment variables with defaults.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		Port:                   util.GetEnv("PORT", "8080"),
		IsProduction:           os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
		LogLevel:               util.GetEnv("LOG_LEVEL", "info"),
		CookieMaxAge:           util.GetEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		SessionTTL:             util.GetEnvDuration("SESSION_TTL", 3*time.Hour),
		SessionCleanupInterval: util.GetEnvDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute),
		RateLimitRPS:           util.GetEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst:         util.GetEnvInt("RATE_LIMIT_BURST", 10),
		RateLimiterTTL:         util.GetEnvDuration("RATE_LIMITER_TTL", 1*time.Hour),
		WordsFile:              os.Getenv("WORDS_FILE"),
		QuizFile:               os.Getenv("QUIZ_FILE"),
		TrustedProxies:         splitList(util.GetEnv("TRUSTED_PROXIES", "127.0.0.1")),
		TracingEnabled:         util.GetEnvBool("TRACING_ENABLED", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""),
	}
}

func (c *Config) EnvName() string {
	if c.IsProduction {
		return "production"
	}
	return "development"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

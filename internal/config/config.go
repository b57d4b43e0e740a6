package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// OpenAI Responses API
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	VectorStoreID string `env:"VECTOR_STORE_ID"`

	// Search defaults, overridable per request
	SearchModel      string `env:"SEARCH_MODEL" envDefault:"gpt-4o"`
	SearchMaxResults int    `env:"SEARCH_MAX_RESULTS" envDefault:"5"`

	// Cache
	CacheProvider string `env:"CACHE_PROVIDER" envDefault:"noop"` // "redis" (shared result cache) or "noop" (no caching)
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL" envDefault:"300"` // seconds

	// Session history
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"50"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

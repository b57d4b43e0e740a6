package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"

	"rag-search/internal/cache"
	"rag-search/internal/config"
	"rag-search/internal/history"
	"rag-search/internal/logger"
	"rag-search/internal/search"
)

// Deps bundles common runtime dependencies for the service.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Searcher search.Searcher
	Cache    cache.Cache
	History  *history.Log
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "err", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	searcher, err := buildSearcher(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize searcher: %w", err)
	}
	c, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return Deps{
		Config:   cfg,
		Log:      log,
		Searcher: searcher,
		Cache:    c,
		History:  history.NewLog(cfg.HistoryLimit),
	}, nil
}

func buildSearcher(cfg config.Config, log *slog.Logger) (search.Searcher, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.VectorStoreID == "" {
		return nil, fmt.Errorf("VECTOR_STORE_ID is required")
	}
	client, err := search.NewOpenAIClient(cfg.OpenAIKey, cfg.VectorStoreID, cfg.SearchModel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	log.Info("using OpenAI Responses searcher", "vector_store", cfg.VectorStoreID, "model", cfg.SearchModel)
	return client, nil
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when CACHE_PROVIDER=redis")
		}
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("using Redis result cache", "addr", cfg.RedisAddr)
		return c, nil
	case "noop":
		log.Info("result caching disabled")
		return cache.NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("invalid CACHE_PROVIDER: %s (valid options: redis, noop)", cfg.CacheProvider)
	}
}

package cache

import (
	"context"
	"time"

	"rag-search/internal/search"
)

// NoOpCache is a cache implementation that does nothing.
// Used when no Redis is configured - all operations succeed
// but no actual caching occurs (always cache miss).
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// GetResult always returns nil (cache miss)
func (c *NoOpCache) GetResult(ctx context.Context, key string) (*search.Result, error) {
	return nil, nil
}

// SetResult does nothing and always succeeds
func (c *NoOpCache) SetResult(ctx context.Context, key string, result *search.Result, ttl time.Duration) error {
	return nil
}

// Close does nothing and always succeeds
func (c *NoOpCache) Close() error {
	return nil
}

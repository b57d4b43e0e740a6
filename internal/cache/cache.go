package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"rag-search/internal/search"
)

// Cache provides search result caching
type Cache interface {
	// GetResult retrieves a cached normalized result by key
	// Returns nil if not found
	GetResult(ctx context.Context, key string) (*search.Result, error)

	// SetResult stores a normalized result with TTL
	SetResult(ctx context.Context, key string, result *search.Result, ttl time.Duration) error

	// Close closes the cache connection
	Close() error
}

// Key derives a stable cache key from everything that changes the
// outcome of a search: query text, model, result cap and whether raw
// hits were requested.
func Key(q search.Query) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%t", q.Text, q.Model, q.MaxResults, q.IncludeSearchResults)))
	return hex.EncodeToString(sum[:])
}

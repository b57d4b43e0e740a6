package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rag-search/internal/search"
)

// MockCache is a mock implementation of the Cache interface for testing
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetResult(ctx context.Context, key string) (*search.Result, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*search.Result), args.Error(1)
}

func (m *MockCache) SetResult(ctx context.Context, key string, result *search.Result, ttl time.Duration) error {
	args := m.Called(ctx, key, result, ttl)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

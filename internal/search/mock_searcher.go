package search

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSearcher is a mock implementation of Searcher using testify/mock.
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, q Query) Result {
	args := m.Called(ctx, q)
	return args.Get(0).(Result)
}

package cache

import (
	"context"
	"testing"
	"time"

	"rag-search/internal/search"
)

// TestNoOpCache verifies that NoOpCache implements the Cache interface correctly
func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()

	// GetResult - should always return nil (cache miss)
	result, err := c.GetResult(ctx, "test-key")
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil result (cache miss), got %v", result)
	}

	// SetResult - should succeed silently
	err = c.SetResult(ctx, "test-key", &search.Result{
		Answer:    "test answer",
		FilesUsed: []string{"a.pdf"},
	}, 1*time.Hour)
	if err != nil {
		t.Errorf("Expected no error on SetResult, got %v", err)
	}

	// Verify it still returns nil (nothing was actually cached)
	result, err = c.GetResult(ctx, "test-key")
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil result (no-op cache doesn't store), got %v", result)
	}

	// Close - should succeed silently
	if err := c.Close(); err != nil {
		t.Errorf("Expected no error on Close, got %v", err)
	}
}

func TestKeyIsStableAndDiscriminating(t *testing.T) {
	q := search.Query{Text: "what is deep research", Model: "gpt-4o", MaxResults: 5, IncludeSearchResults: true}

	if Key(q) != Key(q) {
		t.Fatal("expected identical keys for identical queries")
	}

	variants := []search.Query{
		{Text: "what is deep research?", Model: "gpt-4o", MaxResults: 5, IncludeSearchResults: true},
		{Text: "what is deep research", Model: "gpt-4o-mini", MaxResults: 5, IncludeSearchResults: true},
		{Text: "what is deep research", Model: "gpt-4o", MaxResults: 3, IncludeSearchResults: true},
		{Text: "what is deep research", Model: "gpt-4o", MaxResults: 5, IncludeSearchResults: false},
	}
	for _, v := range variants {
		if Key(v) == Key(q) {
			t.Errorf("expected distinct key for %+v", v)
		}
	}
}

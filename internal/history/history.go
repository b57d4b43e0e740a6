package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one submitted query. History is session-scoped: it lives in
// memory for the lifetime of the process and is never persisted.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Query     string    `json:"query"`
	Model     string    `json:"model"`
	Timestamp time.Time `json:"timestamp"`
}

// Log is a bounded in-memory query log. Handlers run concurrently, so
// access is mutex-guarded; when the limit is reached the oldest entries
// are discarded.
type Log struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
}

const defaultLimit = 50

// NewLog creates a query log that keeps at most limit entries.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Log{limit: limit}
}

// Append records a submitted query and returns the stored entry.
func (l *Log) Append(query, model string) Entry {
	entry := Entry{
		ID:        uuid.New(),
		Query:     query,
		Model:     model,
		Timestamp: time.Now().UTC(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
	return entry
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len reports the number of stored entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

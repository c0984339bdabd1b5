package history

import (
	"context"
	"sync"

	"turibot/internal/model/convo"
)

// Store persists exchange records. Implementations must be safe for
// concurrent use; the recorder is the only writer in practice but tests
// call Append directly.
type Store interface {
	Append(ctx context.Context, record convo.ExchangeRecord) error
}

// MemoryStore keeps records in a slice. It backs deployments without a
// database and the test suite.
type MemoryStore struct {
	mu      sync.Mutex
	records []convo.ExchangeRecord
}

// NewMemoryStore bootstraps an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append stores the record.
func (s *MemoryStore) Append(_ context.Context, record convo.ExchangeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// Records returns a copy of everything appended so far.
func (s *MemoryStore) Records() []convo.ExchangeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]convo.ExchangeRecord, len(s.records))
	copy(copied, s.records)
	return copied
}

package store

import (
	"sync"

	"quiet-scores-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the day's scores in memory.
// The provider's ordering is preserved for listing; lookups go through an
// ID index.
type MemoryStore struct {
	mu      sync.RWMutex
	date    string
	records []domain.GameRecord
	index   map[string]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: make(map[string]int),
	}
}

// ListScores returns a copy of the current records slice.
func (s *MemoryStore) ListScores() []domain.GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.GameRecord, len(s.records))
	copy(result, s.records)
	return result
}

// GetScore retrieves a record by game ID.
func (s *MemoryStore) GetScore(id string) (domain.GameRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.GameRecord{}, false
	}
	return s.records[i], true
}

// Date returns the date the current snapshot describes.
func (s *MemoryStore) Date() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.date
}

// SetScores replaces the existing snapshot. Duplicate IDs keep the first
// occurrence in the index.
func (s *MemoryStore) SetScores(date string, records []domain.GameRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.date = date
	s.records = make([]domain.GameRecord, len(records))
	copy(s.records, records)

	s.index = make(map[string]int, len(records))
	for i, r := range s.records {
		if _, exists := s.index[r.ID]; !exists {
			s.index[r.ID] = i
		}
	}
}

package storage

import (
	"context"
	"sync"

	"daktylos/internal/model"
)

type MemoryStore struct {
	mu      sync.RWMutex
	records []model.InteractionRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return nil
}

func (s *MemoryStore) WriteInteraction(_ context.Context, record model.InteractionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	return nil
}

func (s *MemoryStore) ReadAllInteractions(_ context.Context) ([]model.InteractionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]model.InteractionRecord, len(s.records))
	copy(copied, s.records)
	return copied, nil
}

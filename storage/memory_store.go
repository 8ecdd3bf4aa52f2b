package storage

import (
	"context"
	"sync"
	"time"

	"github.com/chayon20/Crop-Recommendation-System/models"
)

// MemoryStore is an in-memory ObservationStore with the same semantics as
// GormStore: strictly increasing ids, newest-first reads. It backs tests and
// persistence-free development runs.
type MemoryStore struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.Observation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Append(_ context.Context, features models.FeatureVector, crop string, at time.Time) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obs := models.NewObservation(features, crop, at)
	obs.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, obs)
	return obs.ID, nil
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]models.Observation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		return []models.Observation{}, nil
	}
	if limit > len(s.rows) {
		limit = len(s.rows)
	}
	out := make([]models.Observation, 0, limit)
	for i := len(s.rows) - 1; i >= len(s.rows)-limit; i-- {
		out = append(out, s.rows[i])
	}
	return out, nil
}

// Len reports how many observations have been appended.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

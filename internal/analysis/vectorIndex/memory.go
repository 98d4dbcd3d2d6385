package vectorIndex

import (
	"context"
	"sync"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

type InMemoryStore struct {
	mu      *sync.RWMutex
	records map[string][]brdModel.VectorRecord
}

func InitInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		mu:      new(sync.RWMutex),
		records: make(map[string][]brdModel.VectorRecord),
	}
}

func (s *InMemoryStore) UpsertRecords(ctx context.Context, resultId string, records []brdModel.VectorRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[resultId] = append(s.records[resultId], records...)
	return nil
}

func (s *InMemoryStore) Search(ctx context.Context, resultId string, query []float32, k int) ([]brdModel.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Rank(s.records[resultId], query, k), nil
}

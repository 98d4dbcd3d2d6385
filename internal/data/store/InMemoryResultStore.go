package store

import (
	"context"
	"sync"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

// InMemoryResultStore keeps results write-once and returns them in creation
// order from ListResults.
type InMemoryResultStore struct {
	resultMutex *sync.RWMutex
	resultMap   map[string]brdModel.AnalysisResult
	order       []string
}

func InitInMemoryResultStore() *InMemoryResultStore {
	return &InMemoryResultStore{
		resultMutex: new(sync.RWMutex),
		resultMap:   make(map[string]brdModel.AnalysisResult),
	}
}

func (store *InMemoryResultStore) SaveResult(ctx context.Context, result brdModel.AnalysisResult) error {
	store.resultMutex.Lock()
	defer store.resultMutex.Unlock()
	if _, exists := store.resultMap[result.Id]; !exists {
		store.order = append(store.order, result.Id)
	}
	store.resultMap[result.Id] = result
	return nil
}

func (store *InMemoryResultStore) GetResult(ctx context.Context, resultId string) (brdModel.AnalysisResult, bool) {
	store.resultMutex.RLock()
	defer store.resultMutex.RUnlock()
	result, found := store.resultMap[resultId]
	return result, found
}

func (store *InMemoryResultStore) ListResults(ctx context.Context) ([]brdModel.AnalysisResult, error) {
	store.resultMutex.RLock()
	defer store.resultMutex.RUnlock()
	results := make([]brdModel.AnalysisResult, 0, len(store.order))
	for _, id := range store.order {
		results = append(results, store.resultMap[id])
	}
	return results, nil
}

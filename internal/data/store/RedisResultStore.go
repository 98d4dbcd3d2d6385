package store

import (
	"context"
	"encoding/json"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/data/redisStore"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/pkg/logger_i"
)

// resultIndexKey is the redis list tracking result ids in creation order so
// ListResults can page through them.
const resultIndexKey = "brd:index"

type RedisResultStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisResultStore(ctx context.Context) *RedisResultStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisResultStore)
	if inner == nil {
		return nil
	}
	return &RedisResultStore{
		store:  inner,
		logger: logger_i.NewLogger("ResultStore"),
	}
}

func (s *RedisResultStore) SaveResult(ctx context.Context, result brdModel.AnalysisResult) error {
	log := s.logger.WithTrace(ctx).With("resultId", result.Id)

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	exists, err := s.store.Exists(ctx, result.Id)
	if err != nil {
		log.Error("Error checking result existence", "error", err)
	}
	if err = s.store.Set(ctx, result.Id, data, config.RedisResultStoreTTL); err != nil {
		return err
	}
	if !exists {
		if err = s.store.ListPush(ctx, resultIndexKey, result.Id); err != nil {
			log.Error("Error indexing result", "error", err)
		}
	}
	log.Debug("Saved analysis result to Redis")
	return nil
}

func (s *RedisResultStore) GetResult(ctx context.Context, resultId string) (brdModel.AnalysisResult, bool) {
	var result brdModel.AnalysisResult
	log := s.logger.WithTrace(ctx).With("resultId", resultId)

	val, err := s.store.Get(ctx, resultId)
	if s.store.IsNil(err) {
		return result, false
	} else if err != nil {
		log.Error("Error reading result from Redis", "error", err)
		return result, false
	}

	if err = json.Unmarshal([]byte(val), &result); err != nil {
		log.Error("Error unmarshalling result", "error", err)
		return result, false
	}
	return result, true
}

func (s *RedisResultStore) ListResults(ctx context.Context) ([]brdModel.AnalysisResult, error) {
	ids, err := s.store.ListGetAll(ctx, resultIndexKey)
	if err != nil {
		return nil, err
	}

	results := make([]brdModel.AnalysisResult, 0, len(ids))
	for _, id := range ids {
		// expired entries drop out of the index silently
		if result, found := s.GetResult(ctx, id); found {
			results = append(results, result)
		}
	}
	return results, nil
}

func TestResultStore(store *redisStore.Store) *RedisResultStore {
	return &RedisResultStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}

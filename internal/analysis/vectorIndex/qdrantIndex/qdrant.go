package qdrantIndex

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/pkg/logger_i"
)

var (
	logger    *logger_i.Logger
	instance  *qdrant.Client
	once      sync.Once
	dimension = uint64(config.EmbeddingOutputDimensionality)
)

// ClientHolder implements vectorIndex.Store on top of a qdrant collection.
// Records for every analysis result live in one collection, filtered by
// result id at query time.
type ClientHolder struct {
	QObj *qdrant.Client
}

// GetQdrantIndex returns the shared client, or nil when QDRANT_HOST is unset
// or the collection cannot be prepared. Callers fall back to the in-memory
// index in that case.
func GetQdrantIndex(ctx context.Context) *ClientHolder {
	once.Do(func() {
		logger = logger_i.NewLogger("QdrantIndex")
		res := newClient()
		if res != nil {
			instance = res
			go closeQdrant(ctx, instance)
		}
	})

	if instance == nil {
		return nil
	}
	return &ClientHolder{QObj: instance}
}

func newClient() *qdrant.Client {
	host := os.Getenv("QDRANT_HOST")
	if host == "" {
		return nil
	}
	port, err := strconv.Atoi(os.Getenv("QDRANT_PORT"))
	if err != nil {
		port = 6334
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate qdrant client", "error:", err)
		return nil
	}

	if err = ensureCollection(context.Background(), client, config.QdrantCollectionName); err != nil {
		logger.Error("could not create collection", "collectionName", config.QdrantCollectionName, "error:", err)
		return nil
	}
	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	if err := qi.Close(); err != nil {
		logger.Error("could not close Qdrant", "error:", err)
	}
}

func ensureCollection(ctx context.Context, client *qdrant.Client, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := client.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
}

func (db *ClientHolder) UpsertRecords(ctx context.Context, resultId string, records []brdModel.VectorRecord) error {
	points := make([]*qdrant.PointStruct, len(records))
	for i, rec := range records {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(uuid.New().String()),
			Vectors: qdrant.NewVectors(rec.Embedding...),
			Payload: qdrant.NewValueMap(map[string]any{
				"result_id": resultId,
				"text":      rec.Chunk.Text,
				"offset":    rec.Chunk.Offset,
			}),
		}
	}

	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: config.QdrantCollectionName,
		Points:         points,
		Wait:           qdrant.PtrOf(true),
	})
	return err
}

func (db *ClientHolder) Search(ctx context.Context, resultId string, query []float32, k int) ([]brdModel.Chunk, error) {
	loggr := logger.WithTrace(ctx)
	result, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: config.QdrantCollectionName,
		Query:          qdrant.NewQuery(query...),
		Limit:          qdrant.PtrOf(uint64(k)),
		WithPayload:    qdrant.NewWithPayload(true),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("result_id", resultId),
			},
		},
	})
	if err != nil {
		loggr.Error("Error querying Qdrant", "error:", err)
		return nil, err
	}

	var chunks []brdModel.Chunk
	for _, hit := range result {
		chunks = append(chunks, brdModel.Chunk{
			Text:   hit.Payload["text"].GetStringValue(),
			Offset: int(hit.Payload["offset"].GetIntegerValue()),
		})
	}
	return chunks, nil
}

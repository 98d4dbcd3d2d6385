package vectorIndex

import (
	"context"
	"math"
	"sort"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

// Store holds the per-result vector records and answers nearest-neighbor
// queries for chat context assembly. The in-memory implementation is the
// default; a qdrant-backed one can be swapped in without touching callers.
type Store interface {
	UpsertRecords(ctx context.Context, resultId string, records []brdModel.VectorRecord) error
	Search(ctx context.Context, resultId string, query []float32, k int) ([]brdModel.Chunk, error)
}

// CosineSimilarity returns dot(a,b) / (|a|*|b|), or 0 when either vector has
// zero norm so a degenerate embedding never divides by zero.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Rank scores every record against the query and returns the top k chunks by
// descending cosine similarity. Equal scores keep insertion order. A flat
// scan is deliberate: a result holds tens of chunks, never millions.
func Rank(records []brdModel.VectorRecord, query []float32, k int) []brdModel.Chunk {
	if len(records) == 0 || k <= 0 {
		return nil
	}

	type scored struct {
		chunk brdModel.Chunk
		score float64
	}
	ranked := make([]scored, 0, len(records))
	for _, r := range records {
		ranked = append(ranked, scored{chunk: r.Chunk, score: CosineSimilarity(query, r.Embedding)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	top := make([]brdModel.Chunk, k)
	for i := 0; i < k; i++ {
		top[i] = ranked[i].chunk
	}
	return top
}

package vectorIndex

import (
	"context"
	"math"
	"testing"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

func TestCosineSimilarity_Identities(t *testing.T) {
	v := []float32{0.3, -1.2, 4.5}
	zero := []float32{0, 0, 0}

	if got := CosineSimilarity(v, v); math.Abs(got-1) > 1e-9 {
		t.Errorf("similarity(v,v) got %f, want 1", got)
	}
	if got := CosineSimilarity(v, zero); got != 0 {
		t.Errorf("similarity(v,0) got %f, want 0", got)
	}
	a := []float32{1, 2, 3}
	b := []float32{-2, 0.5, 7}
	if CosineSimilarity(a, b) != CosineSimilarity(b, a) {
		t.Error("cosine similarity is not symmetric")
	}
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	if got := CosineSimilarity(a, b); math.Abs(got) > 1e-9 {
		t.Errorf("orthogonal vectors got %f, want 0", got)
	}
}

func TestRank_TopKOrdering(t *testing.T) {
	query := []float32{1, 0}

	// five chunks with known angles to the query
	records := []brdModel.VectorRecord{
		{Chunk: brdModel.Chunk{Text: "orthogonal"}, Embedding: []float32{0, 1}},
		{Chunk: brdModel.Chunk{Text: "exact"}, Embedding: []float32{2, 0}},
		{Chunk: brdModel.Chunk{Text: "opposite"}, Embedding: []float32{-1, 0}},
		{Chunk: brdModel.Chunk{Text: "close"}, Embedding: []float32{1, 0.2}},
		{Chunk: brdModel.Chunk{Text: "far"}, Embedding: []float32{0.2, 1}},
	}

	top := Rank(records, query, 3)

	want := []string{"exact", "close", "far"}
	if len(top) != 3 {
		t.Fatalf("got %d chunks, want 3", len(top))
	}
	for i, w := range want {
		if top[i].Text != w {
			t.Errorf("rank %d: got %q, want %q", i, top[i].Text, w)
		}
	}
}

func TestRank_TiesKeepInsertionOrder(t *testing.T) {
	query := []float32{1, 0}
	records := []brdModel.VectorRecord{
		{Chunk: brdModel.Chunk{Text: "first"}, Embedding: []float32{3, 0}},
		{Chunk: brdModel.Chunk{Text: "second"}, Embedding: []float32{5, 0}},
		{Chunk: brdModel.Chunk{Text: "third"}, Embedding: []float32{1, 0}},
	}

	top := Rank(records, query, 3)
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if top[i].Text != w {
			t.Errorf("tie-break rank %d: got %q, want %q", i, top[i].Text, w)
		}
	}
}

func TestRank_KLargerThanRecords(t *testing.T) {
	records := []brdModel.VectorRecord{
		{Chunk: brdModel.Chunk{Text: "only"}, Embedding: []float32{1, 1}},
	}
	top := Rank(records, []float32{1, 1}, 3)
	if len(top) != 1 {
		t.Errorf("got %d chunks, want 1", len(top))
	}
}

func TestInMemoryStore_RoundTrip(t *testing.T) {
	store := InitInMemoryStore()
	ctx := context.Background()

	records := []brdModel.VectorRecord{
		{Chunk: brdModel.Chunk{Text: "uptime requirement"}, Embedding: []float32{1, 0}},
		{Chunk: brdModel.Chunk{Text: "login flow"}, Embedding: []float32{0, 1}},
	}
	if err := store.UpsertRecords(ctx, "result-1", records); err != nil {
		t.Fatalf("UpsertRecords failed: %v", err)
	}

	top, err := store.Search(ctx, "result-1", []float32{1, 0.1}, 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(top) != 1 || top[0].Text != "uptime requirement" {
		t.Errorf("got %+v, want the uptime chunk", top)
	}

	// unknown result id yields no chunks, not an error
	none, err := store.Search(ctx, "ghost", []float32{1, 0}, 3)
	if err != nil || len(none) != 0 {
		t.Errorf("unknown result: got %d chunks err %v, want 0 chunks nil err", len(none), err)
	}
}

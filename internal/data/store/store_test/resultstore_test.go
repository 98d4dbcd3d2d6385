package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/data/redisStore"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/data/store"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

func newTestStore(t *testing.T) *redisStore.Store {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return redisStore.NewTestStore(client)
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestRedisJobStore_Lifecycle(t *testing.T) {
	jobStore := store.TestJobStore(newTestStore(t))
	ctx := testCtx()

	testJob := brdModel.AnalysisJob{
		Id:             "job_abc_123",
		DocumentId:     "doc-1",
		Status:         brdModel.JobStatusProcessing,
		Steps:          brdModel.AnalysisSteps(),
		CompletedSteps: []string{"Ingesting Communication"},
		Confidence:     15,
		CreatedTime:    time.Now(),
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := jobStore.SaveJob(ctx, testJob); err != nil {
			t.Fatalf("SaveJob failed: %v", err)
		}

		retrieved, found := jobStore.GetJob(ctx, testJob.Id)
		if !found {
			t.Fatal("Job was saved but not found in Redis")
		}
		if len(retrieved.CompletedSteps) != 1 || retrieved.CompletedSteps[0] != "Ingesting Communication" {
			t.Errorf("CompletedSteps mismatch: %+v", retrieved.CompletedSteps)
		}
		if retrieved.Confidence != 15 {
			t.Errorf("Confidence got %d, want 15", retrieved.Confidence)
		}
	})

	t.Run("Get Non-Existent Job", func(t *testing.T) {
		if _, found := jobStore.GetJob(ctx, "ghost-id"); found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Delete Job", func(t *testing.T) {
		jobStore.DeleteJob(ctx, testJob.Id)
		if _, found := jobStore.GetJob(ctx, testJob.Id); found {
			t.Error("Job still exists in Redis after DeleteJob call")
		}
	})
}

func TestRedisResultStore_SaveGetList(t *testing.T) {
	resultStore := store.TestResultStore(newTestStore(t))
	ctx := testCtx()

	first := brdModel.AnalysisResult{
		Id:       "brd-1",
		FileName: "notes.txt",
		Insights: brdModel.Insights{ProjectName: "Atlas", ConfidenceScore: 90},
		VectorRecords: []brdModel.VectorRecord{
			{Chunk: brdModel.Chunk{Text: "hello", Offset: 0}, Embedding: []float32{0.1, 0.2}},
		},
		CreatedAt: time.Now(),
	}
	second := brdModel.AnalysisResult{Id: "brd-2", FileName: "call.txt", CreatedAt: time.Now()}

	if err := resultStore.SaveResult(ctx, first); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if err := resultStore.SaveResult(ctx, second); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	got, found := resultStore.GetResult(ctx, "brd-1")
	if !found {
		t.Fatal("result brd-1 not found")
	}
	if len(got.VectorRecords) != 1 || got.VectorRecords[0].Chunk.Text != "hello" {
		t.Errorf("vector records did not roundtrip: %+v", got.VectorRecords)
	}

	list, err := resultStore.ListResults(ctx)
	if err != nil {
		t.Fatalf("ListResults failed: %v", err)
	}
	if len(list) != 2 || list[0].Id != "brd-1" || list[1].Id != "brd-2" {
		t.Errorf("ListResults order wrong: %+v", list)
	}

	// re-saving must not duplicate the index entry
	if err := resultStore.SaveResult(ctx, first); err != nil {
		t.Fatalf("re-save failed: %v", err)
	}
	list, _ = resultStore.ListResults(ctx)
	if len(list) != 2 {
		t.Errorf("re-save duplicated index entry, got %d results", len(list))
	}
}

func TestRedisDocumentStore_Roundtrip(t *testing.T) {
	docStore := store.TestDocumentStore(newTestStore(t))
	ctx := testCtx()

	doc := brdModel.Document{
		Id:        "doc-9",
		FileName:  "Pasted Text Snippet",
		Channel:   "email",
		InputType: brdModel.InputText,
		Content:   "We need 99.9% uptime and OTP login.",
	}
	if err := docStore.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}

	got, found := docStore.GetDocument(ctx, "doc-9")
	if !found {
		t.Fatal("document not found after save")
	}
	if got.Content != doc.Content || got.InputType != brdModel.InputText {
		t.Errorf("document mismatch: %+v", got)
	}
}

package analysis_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis/vectorIndex"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/data/store"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

const extractedJSON = `{
	"functionalRequirements": [
		{"id": "FR-01", "requirement": "Users authenticate with OTP login", "priority": "High", "source": "Email thread"}
	],
	"nonFunctionalRequirements": [
		{"id": "NFR-01", "requirement": "System uptime of 99.9%", "priority": "High", "source": "Email thread"}
	],
	"keyDecisions": [],
	"stakeholders": [{"name": "Priya", "role": "Product Lead", "interest": "High"}],
	"timeline": [],
	"confidenceScore": 95,
	"projectName": "Login Revamp",
	"executiveSummary": "Replace password login with OTP.",
	"businessObjectives": ["Reduce account takeover"]
}`

type fixture struct {
	service     analysis.Service
	provider    *mockProvider
	embedder    *mockEmbedder
	index       *vectorIndex.InMemoryStore
	jobStore    *store.InMemoryJobStore
	docStore    *store.InMemoryDocumentStore
	resultStore *store.InMemoryResultStore
}

func newFixture(provider *mockProvider, embedder *mockEmbedder) *fixture {
	f := &fixture{
		provider:    provider,
		embedder:    embedder,
		index:       vectorIndex.InitInMemoryStore(),
		jobStore:    store.InitInMemoryJobStore(),
		docStore:    store.InitInMemoryDocumentStore(),
		resultStore: store.InitInMemoryResultStore(),
	}
	f.service = analysis.NewService(analysis.ServiceConfig{
		LLMProvider:  provider,
		Embedder:     embedder,
		Index:        f.index,
		JobStore:     f.jobStore,
		DocStore:     f.docStore,
		ResultStore:  f.resultStore,
		StepInterval: -1,
	})
	return f
}

func seedJob(t *testing.T, f *fixture, doc brdModel.Document) brdModel.AnalysisJob {
	t.Helper()
	if err := f.docStore.SaveDocument(testCtx(), doc); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}
	return brdModel.AnalysisJob{
		Id:         "job-1",
		DocumentId: doc.Id,
		Status:     brdModel.JobStatusPending,
		Steps:      brdModel.AnalysisSteps(),
	}
}

func TestRunAnalysis_ModelBacked(t *testing.T) {
	provider := &mockProvider{
		extractOn: "```json\n" + extractedJSON + "\n```",
		narrateOn: "# Business Requirements Document: Login Revamp",
	}
	f := newFixture(provider, &mockEmbedder{})

	doc := brdModel.Document{
		Id:        "doc-1",
		FileName:  "kickoff.txt",
		Channel:   "email",
		InputType: brdModel.InputText,
		Content:   "We need 99.9% uptime and OTP login.",
	}
	job := f.service.RunAnalysis(testCtx(), seedJob(t, f, doc))

	if job.Status != brdModel.JobStatusComplete {
		t.Fatalf("job status got %q, want complete", job.Status)
	}
	if len(job.CompletedSteps) != len(brdModel.AnalysisSteps()) {
		t.Errorf("completed steps got %d, want %d", len(job.CompletedSteps), len(brdModel.AnalysisSteps()))
	}
	if job.Confidence != 95 {
		t.Errorf("confidence got %d, want model-reported 95", job.Confidence)
	}
	if job.ResultId == "" {
		t.Fatal("job completed without a result id")
	}

	result, found := f.resultStore.GetResult(testCtx(), job.ResultId)
	if !found {
		t.Fatal("result not persisted")
	}
	if result.Insights.ProjectName != "Login Revamp" {
		t.Errorf("insights not taken from model output: %+v", result.Insights.ProjectName)
	}
	if len(result.Insights.NonFunctionalRequirements) == 0 ||
		!strings.Contains(result.Insights.NonFunctionalRequirements[0].Requirement, "99.9%") {
		t.Errorf("uptime requirement missing: %+v", result.Insights.NonFunctionalRequirements)
	}
	if len(result.VectorRecords) != 1 {
		t.Errorf("vector records got %d, want 1 for a single-chunk document", len(result.VectorRecords))
	}
	if result.BRDContent != "# Business Requirements Document: Login Revamp" {
		t.Errorf("narrative not taken from model output: %q", result.BRDContent)
	}
	if result.Type != brdModel.ResultTypeUpload {
		t.Errorf("result type got %q, want upload", result.Type)
	}
	if result.Risks < 8 || result.Risks > 12 {
		t.Errorf("risks got %d, want 8..12 on the model-backed path", result.Risks)
	}
}

func TestRunAnalysis_UpstreamDown(t *testing.T) {
	provider := &mockProvider{err: errors.New("model unavailable")}
	embedder := &mockEmbedder{err: errors.New("embedding unavailable")}
	f := newFixture(provider, embedder)

	doc := brdModel.Document{Id: "doc-2", FileName: "notes.txt", Content: "Some requirements discussion."}
	job := f.service.RunAnalysis(testCtx(), seedJob(t, f, doc))

	if job.Status != brdModel.JobStatusComplete {
		t.Fatalf("job must complete even with every upstream down, got %q", job.Status)
	}
	if job.Confidence != 87 {
		t.Errorf("fallback confidence got %d, want 87", job.Confidence)
	}

	result, found := f.resultStore.GetResult(testCtx(), job.ResultId)
	if !found {
		t.Fatal("fallback result not persisted")
	}
	if len(result.Insights.FunctionalRequirements) == 0 || len(result.Insights.NonFunctionalRequirements) == 0 {
		t.Error("fallback insights must carry populated requirement lists")
	}
	if len(result.VectorRecords) != 0 {
		t.Errorf("no embeddings should survive an embedder outage, got %d", len(result.VectorRecords))
	}
	if result.Risks != 13 {
		t.Errorf("risks got %d, want fixed 13 on the fallback path", result.Risks)
	}
	if !strings.Contains(result.BRDContent, "FR-01") {
		t.Errorf("template narrative missing requirement ids: %q", result.BRDContent)
	}
}

func TestRunAnalysis_URLDocumentBecomesMeeting(t *testing.T) {
	provider := &mockProvider{extractOn: extractedJSON, narrateOn: "# BRD"}
	f := newFixture(provider, &mockEmbedder{})

	doc := brdModel.Document{
		Id:        "doc-3",
		FileName:  "Meeting Recording Transcript",
		InputType: brdModel.InputURL,
		Content:   "Transcript of the planning call.",
	}
	job := f.service.RunAnalysis(testCtx(), seedJob(t, f, doc))

	result, found := f.resultStore.GetResult(testCtx(), job.ResultId)
	if !found {
		t.Fatal("result not persisted")
	}
	if result.Type != brdModel.ResultTypeMeeting {
		t.Errorf("url input should yield a meeting result, got %q", result.Type)
	}
}

func TestRunAnalysis_MissingDocumentStillCompletes(t *testing.T) {
	provider := &mockProvider{err: errors.New("down")}
	f := newFixture(provider, &mockEmbedder{err: errors.New("down")})

	job := f.service.RunAnalysis(testCtx(), brdModel.AnalysisJob{
		Id:         "job-ghost",
		DocumentId: "never-stored",
		Steps:      brdModel.AnalysisSteps(),
	})
	if job.Status != brdModel.JobStatusComplete {
		t.Fatalf("job must terminate even without its document, got %q", job.Status)
	}
	if job.ResultId == "" {
		t.Error("missing-document run should still produce a fallback result")
	}
}

func TestRunAnalysis_ExpiredDeadlineStillPersistsTerminalState(t *testing.T) {
	provider := &mockProvider{extractOn: extractedJSON, narrateOn: "# BRD"}
	jobStore := newDeadlineJobStore()
	resultStore := newDeadlineResultStore()
	docStore := store.InitInMemoryDocumentStore()

	service := analysis.NewService(analysis.ServiceConfig{
		LLMProvider:  provider,
		Embedder:     &mockEmbedder{},
		Index:        vectorIndex.InitInMemoryStore(),
		JobStore:     jobStore,
		DocStore:     docStore,
		ResultStore:  resultStore,
		StepInterval: -1,
	})

	doc := brdModel.Document{Id: "doc-slow", FileName: "slow.txt", Content: "OTP login and 99.9% uptime."}
	if err := docStore.SaveDocument(testCtx(), doc); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}

	// the worker deadline has already passed when the pipeline finishes, as
	// happens when a slow upstream eats the whole job budget
	ctx, cancel := context.WithDeadline(testCtx(), time.Now().Add(-time.Second))
	defer cancel()

	job := service.RunAnalysis(ctx, brdModel.AnalysisJob{
		Id:         "job-slow",
		DocumentId: doc.Id,
		Status:     brdModel.JobStatusPending,
		Steps:      brdModel.AnalysisSteps(),
	})
	if job.Status != brdModel.JobStatusComplete {
		t.Fatalf("returned job status got %q, want complete", job.Status)
	}

	persisted, found := jobStore.GetJob(testCtx(), "job-slow")
	if !found {
		t.Fatal("terminal job state never persisted")
	}
	if persisted.Status != brdModel.JobStatusComplete {
		t.Fatalf("poller-visible status got %q, want complete", persisted.Status)
	}
	if persisted.ResultId == "" {
		t.Fatal("persisted job carries no result id")
	}
	if _, found := resultStore.GetResult(testCtx(), persisted.ResultId); !found {
		t.Fatal("result not persisted past the expired deadline")
	}
}

func seedResult(t *testing.T, f *fixture, indexIt bool) brdModel.AnalysisResult {
	t.Helper()
	result := brdModel.AnalysisResult{
		Id:       "brd-1",
		FileName: "kickoff.txt",
		Insights: brdModel.Insights{ProjectName: "Login Revamp", ConfidenceScore: 95},
		VectorRecords: []brdModel.VectorRecord{
			{Chunk: brdModel.Chunk{Text: "the otp login flow replaces passwords", Offset: 0}, Embedding: []float32{1, 0, 0}},
			{Chunk: brdModel.Chunk{Text: "uptime must stay at 99.9 percent", Offset: 800}, Embedding: []float32{0, 1, 0}},
		},
	}
	if err := f.resultStore.SaveResult(testCtx(), result); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if indexIt {
		if err := f.index.UpsertRecords(testCtx(), result.Id, result.VectorRecords); err != nil {
			t.Fatalf("UpsertRecords failed: %v", err)
		}
	}
	return result
}

func TestChat_RetrievalGrounded(t *testing.T) {
	provider := &mockProvider{chatOn: "The target is 99.9% uptime."}
	embedder := &mockEmbedder{vectors: map[string][]float32{"uptime": {0, 1, 0}}}
	f := newFixture(provider, embedder)
	seedResult(t, f, true)

	reply, err := f.service.Chat(testCtx(), "brd-1", "What uptime do we need?")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if reply != "The target is 99.9% uptime." {
		t.Errorf("reply must be the model output verbatim, got %q", reply)
	}

	prompt := provider.lastPrompt()
	if !strings.Contains(prompt, "[RELEVANT EXTRACTED DOCUMENT SEGMENTS]") {
		t.Error("prompt missing the retrieved-segments section")
	}
	if !strings.Contains(prompt, "uptime must stay at 99.9 percent") {
		t.Error("closest chunk not present in the prompt")
	}
	if !strings.Contains(prompt, "Login Revamp") {
		t.Error("serialized insights not present in the prompt")
	}
}

func TestChat_ColdIndexRanksStoredRecords(t *testing.T) {
	provider := &mockProvider{chatOn: "Answer."}
	embedder := &mockEmbedder{vectors: map[string][]float32{"uptime": {0, 1, 0}}}
	f := newFixture(provider, embedder)
	seedResult(t, f, false)

	if _, err := f.service.Chat(testCtx(), "brd-1", "What about uptime?"); err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if !strings.Contains(provider.lastPrompt(), "uptime must stay at 99.9 percent") {
		t.Error("chat did not fall back to ranking the result's own records")
	}
}

func TestChat_EmbeddingDownAnswersFromInsights(t *testing.T) {
	provider := &mockProvider{chatOn: "Based on the insights, uptime is 99.9%."}
	embedder := &mockEmbedder{err: errors.New("embedding down")}
	f := newFixture(provider, embedder)
	seedResult(t, f, true)

	reply, err := f.service.Chat(testCtx(), "brd-1", "What uptime do we need?")
	if err != nil {
		t.Fatalf("Chat must not fail when only retrieval is down: %v", err)
	}
	if reply == "" {
		t.Fatal("empty reply")
	}

	prompt := provider.lastPrompt()
	if strings.Contains(prompt, "[RELEVANT EXTRACTED DOCUMENT SEGMENTS]") {
		t.Error("prompt should not claim retrieved segments when embedding failed")
	}
	if !strings.Contains(prompt, "Login Revamp") {
		t.Error("insights context missing from the degraded prompt")
	}
}

func TestChat_InputErrors(t *testing.T) {
	f := newFixture(&mockProvider{chatOn: "x"}, &mockEmbedder{})
	seedResult(t, f, true)

	if _, err := f.service.Chat(testCtx(), "no-such-brd", "hello?"); !errors.Is(err, brdModel.ErrNotFound) {
		t.Errorf("unknown result id: got %v, want ErrNotFound", err)
	}
	if _, err := f.service.Chat(testCtx(), "brd-1", ""); !errors.Is(err, brdModel.ErrInvalidInput) {
		t.Errorf("empty question: got %v, want ErrInvalidInput", err)
	}
}

func TestChat_GenerationFailurePropagates(t *testing.T) {
	provider := &mockProvider{err: errors.New("model down")}
	f := newFixture(provider, &mockEmbedder{})
	seedResult(t, f, true)

	if _, err := f.service.Chat(testCtx(), "brd-1", "hello?"); err == nil {
		t.Error("generation failure must surface to the caller")
	}
}

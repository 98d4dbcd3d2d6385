package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis/vectorIndex"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/rag/embedding"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/rag/llm"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/pkg/logger_i"
)

// Service is the only surface the worker and the chat handler see. The
// pipeline dependencies (model, embedder, index, stores) stay private to the
// implementation so they can be swapped for mocks in tests.
type Service interface {
	RunAnalysis(ctx context.Context, job brdModel.AnalysisJob) brdModel.AnalysisJob
	Chat(ctx context.Context, resultId string, question string) (string, error)
}

type service struct {
	llmProvider  llm.Provider
	embedder     embedding.Embedder
	index        vectorIndex.Store
	jobStore     brdModel.JobStore
	docStore     brdModel.DocumentStore
	resultStore  brdModel.ResultStore
	stepInterval time.Duration
	logger       *logger_i.Logger
}

type ServiceConfig struct {
	LLMProvider llm.Provider
	Embedder    embedding.Embedder
	Index       vectorIndex.Store
	JobStore    brdModel.JobStore
	DocStore    brdModel.DocumentStore
	ResultStore brdModel.ResultStore
	// StepInterval overrides the paced progress delay; zero means the
	// configured default. Tests pass a negative value to disable pacing.
	StepInterval time.Duration
}

func NewService(cfg ServiceConfig) Service {
	interval := cfg.StepInterval
	if interval == 0 {
		interval = config.AnalysisStepInterval
	}
	if interval < 0 {
		interval = 0
	}
	return &service{
		llmProvider:  cfg.LLMProvider,
		embedder:     cfg.Embedder,
		index:        cfg.Index,
		jobStore:     cfg.JobStore,
		docStore:     cfg.DocStore,
		resultStore:  cfg.ResultStore,
		stepInterval: interval,
		logger:       logger_i.NewLogger("Analysis Service"),
	}
}

// RunAnalysis drives one job from processing to complete. Upstream failures
// degrade to fallback content - the only way out of this method is a job in
// the terminal complete state.
func (s *service) RunAnalysis(ctx context.Context, job brdModel.AnalysisJob) brdModel.AnalysisJob {
	log := s.logger.WithTrace(ctx).With("jobId", job.Id)

	job.Status = brdModel.JobStatusProcessing
	s.saveJob(ctx, job, log)

	doc, found := s.docStore.GetDocument(ctx, job.DocumentId)
	if !found {
		// document vanished (TTL expiry); fall through with empty content so
		// the job still terminates with fallback insights
		log.Error("Document missing for analysis", "documentId", job.DocumentId)
	}

	job = s.runPacedSteps(ctx, job, log)

	records := s.executeEmbeddingStep(ctx, log, doc)
	insights, modelBacked := s.executeInsightStep(ctx, doc)
	narrative := s.executeNarrativeStep(ctx, insights)

	result := brdModel.AnalysisResult{
		Id:            uuid.New().String(),
		DocumentId:    doc.Id,
		FileName:      doc.FileName,
		Insights:      insights,
		VectorRecords: records,
		BRDContent:    narrative,
		Risks:         riskCount(modelBacked),
		Type:          resultType(doc.InputType),
		CreatedAt:     time.Now(),
	}

	// the job deadline bounds the upstream calls, not persistence. A slow
	// upstream can exhaust the whole budget, and the terminal writes must
	// still land or pollers would see the job stuck in processing.
	persistCtx := context.WithoutCancel(ctx)

	if err := s.resultStore.SaveResult(persistCtx, result); err != nil {
		log.Error("Failed to persist analysis result", "error", err)
	}
	if err := s.index.UpsertRecords(persistCtx, result.Id, records); err != nil {
		log.Error("Failed to index vector records", "error", err)
	}

	job.ResultId = result.Id
	job.Confidence = insights.ConfidenceScore
	job.Status = brdModel.JobStatusComplete
	job.EndTime = time.Now()
	s.saveJob(persistCtx, job, log)

	log.Info("Analysis complete", "resultId", result.Id, "vectors", len(records), "modelBacked", modelBacked)
	return job
}

// Chat answers a follow-up question grounded on the stored analysis.
func (s *service) Chat(ctx context.Context, resultId string, question string) (string, error) {
	log := s.logger.WithTrace(ctx).With("resultId", resultId)

	if question == "" {
		return "", fmt.Errorf("%w: empty question", brdModel.ErrInvalidInput)
	}
	result, found := s.resultStore.GetResult(ctx, resultId)
	if !found {
		return "", fmt.Errorf("%w: result %s", brdModel.ErrNotFound, resultId)
	}

	serialized, _ := json.MarshalIndent(result.Insights, "", "  ")
	contextText := string(serialized)

	if len(result.VectorRecords) > 0 {
		if top := s.retrieveTopChunks(ctx, log, result, question); top != "" {
			contextText = fmt.Sprintf("[RELEVANT EXTRACTED DOCUMENT SEGMENTS]\n%s\n\n[HIGH LEVEL DOCUMENT INSIGHTS]\n%s", top, contextText)
		}
	}

	reply, err := s.executeChatStep(ctx, contextText, question)
	if err != nil {
		log.Error("Chat generation failed", "error", err)
		return "", err
	}
	return reply, nil
}

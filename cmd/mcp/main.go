package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis/vectorIndex"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/data/store"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/mcpserver"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/rag/embedding/googleEmbedding"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/rag/llm/gemini"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/pkg/logger_i"
)

// The stdio MCP entrypoint runs everything in-process with in-memory stores;
// BRDs generated here live for the lifetime of the client session.
func main() {
	logger_i.Init()
	logger := logger_i.NewLogger("mcp main")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	llmProvider := gemini.GetGeminiClient(ctx, config.GoogleAPIKey, config.GeminiModelName)
	embedder := googleEmbedding.GetGoogleEmbeddingClient(ctx, config.GoogleEmbeddingModel, config.GoogleAPIKey)
	if llmProvider == nil || embedder == nil {
		logger.Error("Model clients failed to initialize. Shutting down.")
		os.Exit(1)
	}

	jobStore := store.InitInMemoryJobStore()
	docStore := store.InitInMemoryDocumentStore()
	resultStore := store.InitInMemoryResultStore()

	analysisService := analysis.NewService(analysis.ServiceConfig{
		LLMProvider: llmProvider,
		Embedder:    embedder,
		Index:       vectorIndex.InitInMemoryStore(),
		JobStore:    jobStore,
		DocStore:    docStore,
		ResultStore: resultStore,
		//no polling client here, skip the paced progress delays
		StepInterval: -1,
	})

	server := mcpserver.NewServer(mcpserver.ServerConfig{
		AnalysisService: analysisService,
		DocStore:        docStore,
		ResultStore:     resultStore,
	})

	if err := server.Run(ctx); err != nil {
		logger.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}

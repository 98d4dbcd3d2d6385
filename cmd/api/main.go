package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis/vectorIndex"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis/vectorIndex/qdrantIndex"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/data/store"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/handlers"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/job"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/rag/embedding"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/rag/embedding/googleEmbedding"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/rag/embedding/openaiEmbedding"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/rag/llm/gemini"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/server"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/worker"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan brdModel.AnalysisJob, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and stores
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	logger.Info("Starting job service")

	redisJobStore := store.GetRedisJobStore(serviceContext)
	redisDocStore := store.GetRedisDocumentStore(serviceContext)
	redisResultStore := store.GetRedisResultStore(serviceContext)
	if redisJobStore == nil || redisDocStore == nil || redisResultStore == nil {
		logger.Error("Redis stores are offline, using in-memory stores")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
		serviceConfig.DocumentStore = store.InitInMemoryDocumentStore()
		serviceConfig.ResultStore = store.InitInMemoryResultStore()
	} else {
		serviceConfig.JobStore = redisJobStore
		serviceConfig.DocumentStore = redisDocStore
		serviceConfig.ResultStore = redisResultStore
	}
	service := job.InitJobService(serviceConfig)

	llmProvider := gemini.GetGeminiClient(serviceContext, config.GoogleAPIKey, config.GeminiModelName)
	if llmProvider == nil {
		logger.Error("LLM provider failed to initialize. Shutting down.")
		return
	}

	var embedder embedding.Embedder
	if config.OpenAIAPIKey != "" {
		logger.Info("Using OpenAI embeddings")
		embedder = openaiEmbedding.GetOpenAIEmbeddingClient(config.OpenAIAPIKey, config.OpenAIEmbeddingModel)
	} else {
		embedder = googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GoogleAPIKey)
	}
	if embedder == nil {
		logger.Error("Embedding service failed to initialize. Shutting down.")
		return
	}

	//vector index: durable qdrant when QDRANT_HOST is set, flat in-memory scan otherwise
	var index vectorIndex.Store = vectorIndex.InitInMemoryStore()
	if qdrant := qdrantIndex.GetQdrantIndex(serviceContext); qdrant != nil {
		logger.Info("Using qdrant vector index")
		index = qdrant
	}

	analysisService := analysis.NewService(analysis.ServiceConfig{
		LLMProvider: llmProvider,
		Embedder:    embedder,
		Index:       index,
		JobStore:    serviceConfig.JobStore,
		DocStore:    serviceConfig.DocumentStore,
		ResultStore: serviceConfig.ResultStore,
	})

	handlers.InitJobHandler(service, analysisService)

	//init worker pool
	worker.InitServices(service, analysisService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

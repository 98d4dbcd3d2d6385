package config

import (
	"log/slog"
	"os"
	"time"
)

// keys come from the environment so they never land in source control
var (
	GoogleAPIKey = os.Getenv("GEMINI_API_KEY")
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//auth - real authentication is out of scope, bearer check kept for parity
	NoAuthBypass = true
	AuthToken    = "local-dev-token"

	//analysis pipeline
	ChunkSize            = 1000
	ChunkOverlap         = 200
	TopKChunks           = 3
	AnalysisStepInterval = 800 * time.Millisecond
	//progress confidence climbs to 92 until the model-reported score takes over
	ProgressConfidenceCeiling = 92
	FallbackConfidence        = 87
	MaxContentLength          = 15000
	ChunkContextSeparator     = "\n\n---\n\n"

	//embeddings
	EmbeddingOutputDimensionality int32 = 768
	GeminiModelName                     = "gemini-2.5-flash-lite-preview-09-2025"
	GoogleEmbeddingModel                = "text-embedding-004"
	OpenAIEmbeddingModel                = "text-embedding-3-small"

	ModelTemperature float32 = 0.7

	//worker pool
	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":5000"

	//job requests buffer limit
	BufferLimit = 100

	//uploads
	MaxUploadSize = 10 << 20 //10mb

	//upstream call budgets
	AnalysisJobTimeout   = 120 * time.Second
	GenerationTimeout    = 30 * time.Second
	EmbeddingCallTimeout = 15 * time.Second

	//qdrant - optional durable vector index
	QdrantCollectionName   = "brd-chunks"
	QdrantUseTLS           = false
	QdrantPoolSize         = 1
	QdrantKeepAliveTimeout = 30 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisJobStore      = 0
	RedisDocumentStore = 1
	RedisResultStore   = 2

	//redis timeouts
	RedisJobStoreTTL      = 24 * time.Hour
	RedisDocumentStoreTTL = 24 * time.Hour
	RedisResultStoreTTL   = 24 * time.Hour

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second
)

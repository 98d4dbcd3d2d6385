package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/pkg/logger_i"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server exposes the analysis pipeline to MCP clients over stdio, so agent
// tooling can generate and query BRDs without going through the REST API.
type Server struct {
	analysisService analysis.Service
	docStore        brdModel.DocumentStore
	resultStore     brdModel.ResultStore
	server          *mcp.Server
	logger          *logger_i.Logger
}

type ServerConfig struct {
	AnalysisService analysis.Service
	DocStore        brdModel.DocumentStore
	ResultStore     brdModel.ResultStore
}

func NewServer(cfg ServerConfig) *Server {
	impl := &mcp.Implementation{
		Name:    "brd-agent",
		Version: Version,
	}

	s := &Server{
		analysisService: cfg.AnalysisService,
		docStore:        cfg.DocStore,
		resultStore:     cfg.ResultStore,
		server:          mcp.NewServer(impl, nil),
		logger:          logger_i.NewLogger("MCP Server"),
	}

	s.registerTools()
	return s
}

// Run starts the MCP server over stdio. It blocks until the context is
// cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("MCP server starting on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

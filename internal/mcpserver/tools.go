package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/adapter/utils"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/ingest"
)

// AnalyzeTextInput is the input schema for the analyze_text tool.
type AnalyzeTextInput struct {
	Text    string `json:"text" jsonschema:"the raw communication text to analyze"`
	Channel string `json:"channel,omitempty" jsonschema:"communication channel the text came from (email, slack, meeting)"`
}

type AnalyzeTextOutput struct {
	BRDId            string `json:"brd_id"`
	ProjectName      string `json:"project_name"`
	ExecutiveSummary string `json:"executive_summary"`
	Confidence       int    `json:"confidence"`
	Risks            int    `json:"risks"`
}

// ChatInput is the input schema for the brd_chat tool.
type ChatInput struct {
	BRDId    string `json:"brd_id" jsonschema:"id of a previously generated BRD"`
	Question string `json:"question" jsonschema:"the question to answer from the BRD and its source document"`
}

type ChatOutput struct {
	Reply string `json:"reply"`
}

type ListBRDsOutput struct {
	BRDs  []BRDSummary `json:"brds"`
	Count int          `json:"count"`
}

type BRDSummary struct {
	Id          string `json:"id"`
	FileName    string `json:"file_name"`
	ProjectName string `json:"project_name"`
	Risks       int    `json:"risks"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Analyze a raw communication and generate a Business Requirements Document",
	}, s.handleAnalyzeText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "brd_chat",
		Description: "Ask a question about a previously generated BRD, grounded on its source document",
	}, s.handleChat)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_brds",
		Description: "List all generated BRDs",
	}, s.handleListBRDs)
}

// handleAnalyzeText runs the whole pipeline synchronously. MCP clients wait
// on the call anyway, so there is no paced progress to report.
func (s *Server) handleAnalyzeText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeTextInput,
) (*mcp.CallToolResult, AnalyzeTextOutput, error) {
	if input.Text == "" {
		return nil, AnalyzeTextOutput{}, fmt.Errorf("text is required")
	}
	channel := input.Channel
	if channel == "" {
		channel = "email"
	}

	doc := brdModel.Document{
		Id:         utils.GetNewUUID(),
		FileName:   "MCP Text Snippet",
		Channel:    channel,
		InputType:  brdModel.InputText,
		Content:    ingest.Truncate(input.Text),
		UploadedAt: time.Now(),
	}
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, AnalyzeTextOutput{}, fmt.Errorf("storing document: %w", err)
	}

	job := s.analysisService.RunAnalysis(ctx, brdModel.AnalysisJob{
		Id:          utils.GetNewUUID(),
		DocumentId:  doc.Id,
		Status:      brdModel.JobStatusPending,
		Steps:       brdModel.AnalysisSteps(),
		CreatedTime: time.Now(),
	})

	result, found := s.resultStore.GetResult(ctx, job.ResultId)
	if !found {
		return nil, AnalyzeTextOutput{}, fmt.Errorf("analysis completed but result %s is missing", job.ResultId)
	}

	return nil, AnalyzeTextOutput{
		BRDId:            result.Id,
		ProjectName:      result.Insights.ProjectName,
		ExecutiveSummary: result.Insights.ExecutiveSummary,
		Confidence:       job.Confidence,
		Risks:            result.Risks,
	}, nil
}

func (s *Server) handleChat(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChatInput,
) (*mcp.CallToolResult, ChatOutput, error) {
	reply, err := s.analysisService.Chat(ctx, input.BRDId, input.Question)
	if err != nil {
		return nil, ChatOutput{}, err
	}
	return nil, ChatOutput{Reply: reply}, nil
}

func (s *Server) handleListBRDs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListBRDsOutput, error) {
	results, err := s.resultStore.ListResults(ctx)
	if err != nil {
		return nil, ListBRDsOutput{}, err
	}

	output := ListBRDsOutput{
		BRDs:  make([]BRDSummary, 0, len(results)),
		Count: len(results),
	}
	for _, result := range results {
		output.BRDs = append(output.BRDs, BRDSummary{
			Id:          result.Id,
			FileName:    result.FileName,
			ProjectName: result.Insights.ProjectName,
			Risks:       result.Risks,
		})
	}
	return nil, output, nil
}

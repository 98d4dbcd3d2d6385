package adapter

import (
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/api"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

func ToAnalyzeResponse(job brdModel.AnalysisJob) api.AnalyzeResponse {
	return api.AnalyzeResponse{
		AnalysisId: job.Id,
		Steps:      job.Steps,
		Status:     string(brdModel.JobStatusProcessing),
	}
}

func ToStatusResponse(job brdModel.AnalysisJob) api.StatusResponse {
	completed := job.CompletedSteps
	if completed == nil {
		completed = []string{}
	}
	return api.StatusResponse{
		CompletedSteps: completed,
		Confidence:     job.Confidence,
		Status:         string(job.Status),
		BRDId:          job.ResultId,
	}
}

// ToBRDResponse strips the raw vector records off the stored result; callers
// of the REST surface never need the embeddings themselves.
func ToBRDResponse(result brdModel.AnalysisResult) api.BRDResponse {
	return api.BRDResponse{
		Id:         result.Id,
		FileId:     result.DocumentId,
		FileName:   result.FileName,
		Insights:   result.Insights,
		BRDContent: result.BRDContent,
		Risks:      result.Risks,
		Type:       string(result.Type),
		CreatedAt:  result.CreatedAt,
	}
}

func ToBRDList(results []brdModel.AnalysisResult) []api.BRDResponse {
	list := make([]api.BRDResponse, 0, len(results))
	for _, result := range results {
		list = append(list, ToBRDResponse(result))
	}
	return list
}

// ToDashboardResponse aggregates stored results the way the landing page
// consumes them: totals plus the five most recent items, newest first.
func ToDashboardResponse(results []brdModel.AnalysisResult) api.DashboardResponse {
	totalRisks := 0
	for _, result := range results {
		totalRisks += result.Risks
	}

	recent := make([]api.ActivityEntry, 0, 5)
	for i := len(results) - 1; i >= 0 && len(recent) < 5; i-- {
		name := results[i].FileName
		if name == "" {
			name = "file.txt"
		}
		entryType := string(results[i].Type)
		if entryType == "" {
			entryType = string(brdModel.ResultTypeUpload)
		}
		recent = append(recent, api.ActivityEntry{
			Id:   results[i].Id,
			Type: entryType,
			Name: name,
			Time: results[i].CreatedAt,
		})
	}

	return api.DashboardResponse{
		TotalProjects: len(results),
		//no per-project duration tracking yet, these mirror the demo values
		TimeSaved:        "1h 20m",
		TimeSavedPercent: "+3.11%",
		RisksIdentified:  totalRisks,
		BRDsGenerated:    len(results),
		RecentActivity:   recent,
	}
}

func BadRequest(message string, code int) api.ErrorResponse {
	return api.ErrorResponse{
		Error: message,
		Code:  code,
	}
}

package api

import (
	"time"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

type UploadResponse struct {
	Success  bool   `json:"success" example:"true"`
	FileId   string `json:"fileId"`
	FileName string `json:"fileName" example:"kickoff-notes.txt"`
	Channel  string `json:"channel" example:"email"`
	Message  string `json:"message" example:"Data uploaded successfully. Ready for AI analysis."`
}

type AnalyzeResponse struct {
	AnalysisId string   `json:"analysisId"`
	Steps      []string `json:"steps"`
	Status     string   `json:"status" example:"processing"`
}

type StatusResponse struct {
	CompletedSteps []string `json:"completedSteps"`
	Confidence     int      `json:"confidence" example:"92"`
	Status         string   `json:"status" example:"complete"`
	BRDId          string   `json:"brdId,omitempty"`
}

type BRDResponse struct {
	Id         string             `json:"id"`
	FileId     string             `json:"fileId"`
	FileName   string             `json:"fileName"`
	Insights   brdModel.Insights  `json:"insights"`
	BRDContent string             `json:"brdContent"`
	Risks      int                `json:"risks" example:"9"`
	Type       string             `json:"type" example:"upload"`
	CreatedAt  time.Time          `json:"createdAt"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}

type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp"`
}

type ActivityEntry struct {
	Id   string    `json:"id"`
	Type string    `json:"type" example:"upload"`
	Name string    `json:"name" example:"kickoff-notes.txt"`
	Time time.Time `json:"time"`
}

type DashboardResponse struct {
	TotalProjects    int             `json:"totalProjects"`
	TimeSaved        string          `json:"timeSaved" example:"1h 20m"`
	TimeSavedPercent string          `json:"timeSavedPercent" example:"+3.11%"`
	RisksIdentified  int             `json:"risksIdentified"`
	BRDsGenerated    int             `json:"brdsGenerated"`
	RecentActivity   []ActivityEntry `json:"recentActivity"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"BRD not found"`
	Code  int    `json:"code,omitempty" example:"404"`
}

// requests---------------------

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type UploadTextRequest struct {
	Channel   string `json:"channel,omitempty"`
	InputType string `json:"inputType" validate:"required"`
	TextData  string `json:"textData,omitempty"`
	URLData   string `json:"urlData,omitempty"`
}

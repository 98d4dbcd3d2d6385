package brdModel

import (
	"context"
	"time"
)

type InputType string

const (
	InputFile InputType = "file"
	InputText InputType = "text"
	InputURL  InputType = "url"
)

// Document is the raw communication submitted for analysis.
// Immutable once stored.
type Document struct {
	Id         string    `json:"id"`
	FileName   string    `json:"fileName"`
	Channel    string    `json:"channel"`
	InputType  InputType `json:"inputType"`
	Content    string    `json:"fileContent"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Chunk is a contiguous window of a Document's content.
type Chunk struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
}

// VectorRecord pairs a chunk with its embedding. The slice order is the
// insertion order, which the index uses for tie-breaking.
type VectorRecord struct {
	Chunk     Chunk     `json:"chunk"`
	Embedding []float32 `json:"embedding"`
}

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusComplete   JobStatus = "complete"
)

// AnalysisJob tracks one orchestration run. CompletedSteps is append-only and
// no field changes after Status reaches complete.
type AnalysisJob struct {
	Id             string    `json:"id"`
	DocumentId     string    `json:"documentId"`
	TraceId        string    `json:"trace_id"`
	Steps          []string  `json:"steps"`
	CompletedSteps []string  `json:"completedSteps"`
	Confidence     int       `json:"confidence"`
	Status         JobStatus `json:"status"`
	ResultId       string    `json:"brdId,omitempty"`
	CreatedTime    time.Time `json:"created_time"`
	EndTime        time.Time `json:"end_time,omitempty"`
}

type ResultType string

const (
	ResultTypeUpload  ResultType = "upload"
	ResultTypeMeeting ResultType = "meeting"
)

// AnalysisResult is the write-once product of a completed analysis.
type AnalysisResult struct {
	Id            string         `json:"id"`
	DocumentId    string         `json:"fileId"`
	FileName      string         `json:"fileName"`
	Insights      Insights       `json:"insights"`
	VectorRecords []VectorRecord `json:"documentChunks"`
	BRDContent    string         `json:"brdContent"`
	Risks         int            `json:"risks"`
	Type          ResultType     `json:"type"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// AnalysisSteps returns the six fixed pipeline phases reported to callers.
// The slice is fresh per call so jobs never share the backing array.
func AnalysisSteps() []string {
	return []string{
		"Ingesting Communication",
		"Reconstructing Context",
		"Filtering Noise",
		"Extracting Requirements",
		"Mapping Stakeholders",
		"Generating BRD",
	}
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (AnalysisJob, bool)
	SaveJob(ctx context.Context, job AnalysisJob) error
	DeleteJob(ctx context.Context, jobId string)
}

type DocumentStore interface {
	GetDocument(ctx context.Context, docId string) (Document, bool)
	SaveDocument(ctx context.Context, doc Document) error
}

type ResultStore interface {
	GetResult(ctx context.Context, resultId string) (AnalysisResult, bool)
	SaveResult(ctx context.Context, result AnalysisResult) error
	ListResults(ctx context.Context) ([]AnalysisResult, error)
}

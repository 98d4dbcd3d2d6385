package handlers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/adapter/utils"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/analysis"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/job"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/metrics"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service         *job.Service
	analysisService analysis.Service
}

func InitJobHandler(jobService *job.Service, analysisService analysis.Service) {
	once.Do(func() {
		handlerInstance = &JobHandler{
			service:         jobService,
			analysisService: analysisService,
		}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting job handler")
	})
}

// CreateNewJob queues one analysis job for the given document and returns it
// in its initial pending shape.
func CreateNewJob(documentId string, traceId string) brdModel.AnalysisJob {
	newJob := brdModel.AnalysisJob{
		Id:          utils.GetNewUUID(),
		DocumentId:  documentId,
		TraceId:     traceId,
		Status:      brdModel.JobStatusPending,
		Steps:       brdModel.AnalysisSteps(),
		CreatedTime: time.Now(),
	}

	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if err := handlerInstance.service.JobStore.SaveJob(ctxC, newJob); err != nil {
		logJH.Error("Failed to save pending job", "jobId", newJob.Id, "error", err)
	}

	handlerInstance.pushToJobChannel(newJob)
	return newJob
}

func GetJobStatus(id string, traceId string) (result brdModel.AnalysisJob, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.JobStore.GetJob(ctxC, id)
	}
	return result, false
}

func GetDocument(id string, traceId string) (brdModel.Document, bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.DocumentStore.GetDocument(ctxC, id)
	}
	return brdModel.Document{}, false
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob brdModel.AnalysisJob) {
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- newJob //blocking send keeps the system from being overwhelmed
	logJH.Info("Queued analysis job", "jobId", newJob.Id)

	// a new worker is signalled every N requests; analysis jobs hold a worker
	// for several seconds of paced progress plus two model calls, so the pool
	// grows under sustained load and idles back down afterwards
	accurateCount := atomic.AddInt64(&h.service.RequestCount, 1)
	if accurateCount%config.RequestsPerNewWorkerCount == 0 {
		metrics.StartDispatcherSignalCount()
		logJH.Debug("Signalling dispatcher", "requestCount", accurateCount)
		h.service.DispatcherChannel <- true
	}
}

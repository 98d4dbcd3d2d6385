package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/metrics"
)

// executeJob runs one analysis job to completion. The analysis service owns
// all intermediate job state persistence; the worker just bounds the run with
// a deadline and records timing.
func executeJob(job brdModel.AnalysisJob) {
	start := time.Now()

	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.AnalysisJobTimeout)
	defer cancel()

	logger.Debug("Processing analysis job", "jobId", job.Id, "traceId", job.TraceId)
	job = _analysisService.RunAnalysis(ctx, job)

	metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	logger.Info("Job finished", "jobId", job.Id, "status", job.Status, "elapsed", time.Since(start))
}

func removeWorker(reason string) {
	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()
}

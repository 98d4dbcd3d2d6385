package job

import (
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

// Service carries the shared queue plumbing between the HTTP handlers, the
// dispatcher and the workers.
type Service struct {
	JobChannel        chan brdModel.AnalysisJob
	RequestCount      int64
	DispatcherChannel chan bool
	JobStore          brdModel.JobStore
	DocumentStore     brdModel.DocumentStore
	ResultStore       brdModel.ResultStore
}

type ServiceConfig struct {
	JobChannel        chan brdModel.AnalysisJob
	RequestCount      int64
	DispatcherChannel chan bool
	JobStore          brdModel.JobStore
	DocumentStore     brdModel.DocumentStore
	ResultStore       brdModel.ResultStore
}

func InitJobService(cfg ServiceConfig) *Service {
	return &Service{
		JobChannel:        cfg.JobChannel,
		RequestCount:      cfg.RequestCount,
		DispatcherChannel: cfg.DispatcherChannel,
		JobStore:          cfg.JobStore,
		DocumentStore:     cfg.DocumentStore,
		ResultStore:       cfg.ResultStore,
	}
}

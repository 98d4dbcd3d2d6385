package analysis_test

import (
	"context"
	"strings"
	"sync"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

// mockProvider routes prompts by their marker text so one mock can serve the
// extraction, narrative and chat calls of a single pipeline run.
type mockProvider struct {
	mu        sync.Mutex
	calls     []string
	extractOn string
	narrateOn string
	chatOn    string
	err       error
}

func (m *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, prompt)
	m.mu.Unlock()

	if m.err != nil {
		return "", m.err
	}
	switch {
	case strings.Contains(prompt, "extract structured requirements"):
		return m.extractOn, nil
	case strings.Contains(prompt, "Create a professional Business Requirements Document"):
		return m.narrateOn, nil
	default:
		return m.chatOn, nil
	}
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockProvider) lastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return ""
	}
	return m.calls[len(m.calls)-1]
}

// mockEmbedder returns a fixed-direction vector per known phrase so cosine
// ranking in tests is deterministic.
type mockEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (m *mockEmbedder) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	for phrase, vector := range m.vectors {
		if strings.Contains(text, phrase) {
			return vector, nil
		}
	}
	return []float32{0, 0, 1}, nil
}

// deadlineJobStore and deadlineResultStore reject writes once the caller's
// context has expired, the way the redis-backed stores do.
type deadlineJobStore struct {
	mu   sync.Mutex
	jobs map[string]brdModel.AnalysisJob
}

func newDeadlineJobStore() *deadlineJobStore {
	return &deadlineJobStore{jobs: make(map[string]brdModel.AnalysisJob)}
}

func (s *deadlineJobStore) GetJob(ctx context.Context, jobId string) (brdModel.AnalysisJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, found := s.jobs[jobId]
	return job, found
}

func (s *deadlineJobStore) SaveJob(ctx context.Context, job brdModel.AnalysisJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.Id] = job
	return nil
}

func (s *deadlineJobStore) DeleteJob(ctx context.Context, jobId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, jobId)
}

type deadlineResultStore struct {
	mu      sync.Mutex
	results map[string]brdModel.AnalysisResult
}

func newDeadlineResultStore() *deadlineResultStore {
	return &deadlineResultStore{results: make(map[string]brdModel.AnalysisResult)}
}

func (s *deadlineResultStore) GetResult(ctx context.Context, resultId string) (brdModel.AnalysisResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, found := s.results[resultId]
	return result, found
}

func (s *deadlineResultStore) SaveResult(ctx context.Context, result brdModel.AnalysisResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.Id] = result
	return nil
}

func (s *deadlineResultStore) ListResults(ctx context.Context) ([]brdModel.AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]brdModel.AnalysisResult, 0, len(s.results))
	for _, result := range s.results {
		list = append(list, result)
	}
	return list, nil
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

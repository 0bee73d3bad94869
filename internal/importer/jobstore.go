package importer

import (
	"sync"
	"time"

	"github.com/commercedesk/geodata-api/internal/model"
)

// JobStore tracks import jobs in memory, keyed by job id. Jobs are kept for
// the process lifetime and lost on restart; callers poll for snapshots.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*model.ImportJob
}

// NewJobStore creates an empty job store
func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[string]*model.ImportJob)}
}

// Create records a fresh pending job
func (s *JobStore) Create(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id] = &model.ImportJob{
		ID:        id,
		Status:    model.ImportStatusPending,
		Progress:  0,
		Message:   "import queued",
		StartedAt: time.Now(),
	}
}

// Get returns a snapshot of the job, or nil for an unknown id
func (s *JobStore) Get(id string) *model.ImportJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil
	}
	snapshot := *job
	return &snapshot
}

// Update advances the job through the download/insert phases
func (s *JobStore) Update(id string, status model.ImportStatus, progress int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return
	}
	job.Status = status
	job.Progress = progress
	job.Message = message
}

// Complete marks the job done with the total record count
func (s *JobStore) Complete(id string, recordsImported int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return
	}
	now := time.Now()
	job.Status = model.ImportStatusCompleted
	job.Progress = 100
	job.Message = "import completed"
	job.RecordsImported = &recordsImported
	job.CompletedAt = &now
}

// Fail marks the job failed, capturing the error text
func (s *JobStore) Fail(id string, errText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return
	}
	now := time.Now()
	job.Status = model.ImportStatusFailed
	job.Message = "import failed"
	job.Error = &errText
	job.CompletedAt = &now
}

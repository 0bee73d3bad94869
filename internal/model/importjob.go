package model

import "time"

// ImportStatus is the lifecycle state of an import job
type ImportStatus string

const (
	ImportStatusPending     ImportStatus = "pending"
	ImportStatusDownloading ImportStatus = "downloading"
	ImportStatusImporting   ImportStatus = "importing"
	ImportStatusCompleted   ImportStatus = "completed"
	ImportStatusFailed      ImportStatus = "failed"
)

// Terminal reports whether the status is a final one
func (s ImportStatus) Terminal() bool {
	return s == ImportStatusCompleted || s == ImportStatusFailed
}

// ImportJob tracks one import invocation. It lives in memory only and is
// lost on process restart; callers observe it by polling.
type ImportJob struct {
	ID              string       `json:"id"`
	Status          ImportStatus `json:"status"`
	Progress        int          `json:"progress"`
	Message         string       `json:"message"`
	RecordsImported *int         `json:"records_imported,omitempty"`
	Error           *string      `json:"error,omitempty"`
	StartedAt       time.Time    `json:"started_at"`
	CompletedAt     *time.Time   `json:"completed_at,omitempty"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

// SyncStatus represents the lifecycle of a single source sync run
type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusSucceeded SyncStatus = "succeeded"
	SyncStatusFailed    SyncStatus = "failed"
	SyncStatusPartial   SyncStatus = "partial"
)

// SyncRun records the outcome of one adapter execution. Counts only reflect
// committed writes, so a rerun of identical input reports zero new and zero
// updated items.
type SyncRun struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Source        string     `gorm:"type:varchar(64);not null;index" json:"source"`
	Kind          RecordKind `gorm:"type:varchar(32);not null" json:"kind"`
	Status        SyncStatus `gorm:"type:varchar(16);not null;index" json:"status"`
	ItemsFound    int        `json:"items_found"`
	ItemsNew      int        `json:"items_new"`
	ItemsUpdated  int        `json:"items_updated"`
	ItemsFailed   int        `json:"items_failed"`
	Error         *string    `gorm:"type:text" json:"error,omitempty"`
	ArchiveObject *string    `gorm:"type:varchar(512)" json:"archive_object,omitempty"`
	StartedAt     time.Time  `gorm:"not null;index" json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

// TableName specifies the table name for SyncRun
func (SyncRun) TableName() string {
	return "sync_runs"
}

// Finish marks the run completed, choosing partial when some records failed
func (r *SyncRun) Finish(found, created, updated, failed int) {
	now := time.Now().UTC()
	r.ItemsFound = found
	r.ItemsNew = created
	r.ItemsUpdated = updated
	r.ItemsFailed = failed
	r.FinishedAt = &now
	if failed > 0 {
		r.Status = SyncStatusPartial
	} else {
		r.Status = SyncStatusSucceeded
	}
}

// Fail marks the run failed with the given error
func (r *SyncRun) Fail(err error) {
	now := time.Now().UTC()
	r.Status = SyncStatusFailed
	r.FinishedAt = &now
	if err != nil {
		msg := err.Error()
		r.Error = &msg
	}
}

// Duration returns elapsed wall time, zero until the run finishes
func (r *SyncRun) Duration() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkplanItemStatus represents where a workplan item sits in the council's
// priority pipeline
type WorkplanItemStatus string

const (
	WorkplanStatusUnderway  WorkplanItemStatus = "UNDERWAY"
	WorkplanStatusPlanned   WorkplanItemStatus = "PLANNED"
	WorkplanStatusCompleted WorkplanItemStatus = "COMPLETED"
	WorkplanStatusDeferred  WorkplanItemStatus = "DEFERRED"
)

// ValidWorkplanStatus reports whether s is one of the four known statuses
func ValidWorkplanStatus(s WorkplanItemStatus) bool {
	switch s {
	case WorkplanStatusUnderway, WorkplanStatusPlanned, WorkplanStatusCompleted, WorkplanStatusDeferred:
		return true
	}
	return false
}

// Milestone is a dated deliverable attached to a workplan item
type Milestone struct {
	Type             string     `json:"type"`
	ScheduledDate    *time.Time `json:"scheduled_date,omitempty"`
	ScheduledMeeting string     `json:"scheduled_meeting,omitempty"`
	IsCompleted      bool       `json:"is_completed"`
}

// WorkplanVersion is an immutable snapshot of the council workplan. A new POST
// always creates a new version; older versions stay queryable.
type WorkplanVersion struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Version   int            `gorm:"unique;not null" json:"version"`
	Label     string         `gorm:"type:varchar(255)" json:"label"`
	Notes     *string        `gorm:"type:text" json:"notes,omitempty"`
	Items     []WorkplanItem `gorm:"foreignKey:VersionID" json:"items,omitempty"`
	CreatedAt time.Time      `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for WorkplanVersion
func (WorkplanVersion) TableName() string {
	return "workplan_versions"
}

// WorkplanItem is one prioritized amendment or project inside a version
type WorkplanItem struct {
	ID          uuid.UUID                      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	VersionID   uuid.UUID                      `gorm:"type:uuid;not null;index" json:"version_id"`
	AmendmentID string                         `gorm:"type:varchar(128);index" json:"amendment_id"`
	Topic       string                         `gorm:"type:varchar(512);not null" json:"topic"`
	LeadStaff   string                         `gorm:"type:varchar(255)" json:"lead_staff"`
	Status      WorkplanItemStatus             `gorm:"type:varchar(16);not null;index" json:"status"`
	Milestones  datatypes.JSONSlice[Milestone] `gorm:"type:jsonb" json:"milestones,omitempty"`
	CreatedAt   time.Time                      `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for WorkplanItem
func (WorkplanItem) TableName() string {
	return "workplan_items"
}

// MilestoneCompletion returns completed and total milestone counts for the item
func (w *WorkplanItem) MilestoneCompletion() (done, total int) {
	for _, m := range w.Milestones {
		total++
		if m.IsCompleted {
			done++
		}
	}
	return done, total
}

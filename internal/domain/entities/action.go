package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActionStatus represents the regulatory lifecycle state of an action
type ActionStatus string

const (
	ActionStatusUnderDevelopment ActionStatus = "under_development"
	ActionStatusPublicComment    ActionStatus = "public_comment"
	ActionStatusSecretarialRev   ActionStatus = "secretarial_review"
	ActionStatusImplemented      ActionStatus = "implemented"
	ActionStatusWithdrawn        ActionStatus = "withdrawn"
)

// SpeciesStatus captures the stock assessment attached to an action
type SpeciesStatus struct {
	Name        string   `json:"name"`
	StockStatus string   `json:"stock_status"`
	Overfished  bool     `json:"overfished"`
	Overfishing bool     `json:"overfishing"`
	BBmsy       *float64 `json:"b_bmsy,omitempty"`
}

// Action represents an amendment or other regulatory action tracked from a council site
type Action struct {
	ID            uuid.UUID                          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ActionID      string                             `gorm:"type:varchar(128);unique;not null" json:"action_id"`
	Title         string                             `gorm:"type:varchar(512);not null" json:"title"`
	Description   *string                            `gorm:"type:text" json:"description,omitempty"`
	FMP           string                             `gorm:"column:fmp;type:varchar(255);index" json:"fmp"`
	Type          string                             `gorm:"type:varchar(64);index" json:"type"`
	Status        ActionStatus                       `gorm:"type:varchar(32);index" json:"status"`
	ProgressStage string                             `gorm:"type:varchar(64);index" json:"progress_stage"`
	Progress      int                                `gorm:"default:0;check:progress >= 0 AND progress <= 100" json:"progress"`
	LastUpdated   *time.Time                         `json:"last_updated,omitempty"`
	StartDate     *time.Time                         `gorm:"index" json:"start_date,omitempty"`
	EndDate       *time.Time                         `json:"end_date,omitempty"`
	SourceURL     string                             `gorm:"type:varchar(1024)" json:"source_url"`
	Species       datatypes.JSONSlice[SpeciesStatus] `gorm:"type:jsonb" json:"species,omitempty"`
	Source        string                             `gorm:"type:varchar(64);index" json:"source"`
	Fingerprint   string                             `gorm:"type:char(64);not null" json:"-"`
	CreatedAt     time.Time                          `gorm:"default:now()" json:"created_at"`
	UpdatedAt     time.Time                          `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Action
func (Action) TableName() string {
	return "actions"
}

// ClampProgress forces progress into the 0-100 range
func (a *Action) ClampProgress() {
	if a.Progress < 0 {
		a.Progress = 0
	}
	if a.Progress > 100 {
		a.Progress = 100
	}
}

// HasStockConcern reports whether any attached species is overfished or
// subject to overfishing
func (a *Action) HasStockConcern() bool {
	for _, s := range a.Species {
		if s.Overfished || s.Overfishing {
			return true
		}
	}
	return false
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

// EcosystemIndicator represents one time-series observation from an ecosystem
// status report (water temperature, recruitment index, landings, etc.)
type EcosystemIndicator struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	IndicatorID string     `gorm:"type:varchar(128);unique;not null" json:"indicator_id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Category    string     `gorm:"type:varchar(64);index" json:"category"`
	Region      string     `gorm:"type:varchar(64);index" json:"region"`
	Value       float64    `json:"value"`
	Unit        string     `gorm:"type:varchar(32)" json:"unit"`
	Trend       string     `gorm:"type:varchar(16)" json:"trend"`
	ObservedAt  *time.Time `gorm:"index" json:"observed_at,omitempty"`
	SourceURL   string     `gorm:"type:varchar(1024)" json:"source_url"`
	Source      string     `gorm:"type:varchar(64);index" json:"source"`
	Fingerprint string     `gorm:"type:char(64);not null" json:"-"`
	CreatedAt   time.Time  `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for EcosystemIndicator
func (EcosystemIndicator) TableName() string {
	return "ecosystem_indicators"
}

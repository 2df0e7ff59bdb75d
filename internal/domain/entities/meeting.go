package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting represents a council, committee, or agency meeting pulled from an
// external schedule
type Meeting struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID        string                      `gorm:"type:varchar(128);unique;not null" json:"meeting_id"`
	Title            string                      `gorm:"type:varchar(512);not null" json:"title"`
	Council          string                      `gorm:"type:varchar(128);index" json:"council"`
	OrganizationType string                      `gorm:"type:varchar(64);index" json:"organization_type"`
	Region           string                      `gorm:"type:varchar(64);index" json:"region"`
	Type             string                      `gorm:"type:varchar(64);index" json:"type"`
	Location         string                      `gorm:"type:varchar(255)" json:"location"`
	StartDate        *time.Time                  `gorm:"index" json:"start_date,omitempty"`
	EndDate          *time.Time                  `json:"end_date,omitempty"`
	Description      *string                     `gorm:"type:text" json:"description,omitempty"`
	SourceURL        string                      `gorm:"type:varchar(1024)" json:"source_url"`
	Topics           datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"topics,omitempty"`
	SpeciesDiscussed datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"species_discussed,omitempty"`
	AgendaContent    *string                     `gorm:"type:text" json:"agenda_content,omitempty"`
	Source           string                      `gorm:"type:varchar(64);index" json:"source"`
	Fingerprint      string                      `gorm:"type:char(64);not null" json:"-"`
	CreatedAt        time.Time                   `gorm:"default:now()" json:"created_at"`
	UpdatedAt        time.Time                   `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// IsUpcoming reports whether the meeting starts after the given instant
func (m *Meeting) IsUpcoming(now time.Time) bool {
	return m.StartDate != nil && m.StartDate.After(now)
}

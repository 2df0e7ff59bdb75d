package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SSCMeetingStatus represents the scheduling state of an SSC meeting
type SSCMeetingStatus string

const (
	SSCMeetingStatusScheduled SSCMeetingStatus = "scheduled"
	SSCMeetingStatusCompleted SSCMeetingStatus = "completed"
	SSCMeetingStatusCancelled SSCMeetingStatus = "cancelled"
)

// SSCMeeting represents a Scientific and Statistical Committee session
type SSCMeeting struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID        string           `gorm:"type:varchar(128);unique;not null" json:"meeting_id"`
	Title            string           `gorm:"type:varchar(512)" json:"title"`
	Status           SSCMeetingStatus `gorm:"type:varchar(32);index" json:"status"`
	MeetingDateStart *time.Time       `gorm:"index" json:"meeting_date_start,omitempty"`
	MeetingDateEnd   *time.Time       `json:"meeting_date_end,omitempty"`
	AgendaURL        *string          `gorm:"type:varchar(1024)" json:"agenda_url,omitempty"`
	BriefingBookURL  *string          `gorm:"type:varchar(1024)" json:"briefing_book_url,omitempty"`
	ReportURL        *string          `gorm:"type:varchar(1024)" json:"report_url,omitempty"`
	WebinarLink      *string          `gorm:"type:varchar(1024)" json:"webinar_link,omitempty"`
	AttendanceCount  *int             `json:"attendance_count,omitempty"`
	Source           string           `gorm:"type:varchar(64);index" json:"source"`
	Fingerprint      string           `gorm:"type:char(64);not null" json:"-"`
	CreatedAt        time.Time        `gorm:"default:now()" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for SSCMeeting
func (SSCMeeting) TableName() string {
	return "ssc_meetings"
}

// SSCRecommendation represents a catch-limit or management recommendation
// issued by the SSC, usually tied to a meeting
type SSCRecommendation struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RecommendationID   string                      `gorm:"type:varchar(128);unique;not null" json:"recommendation_id"`
	MeetingID          string                      `gorm:"type:varchar(128);index" json:"meeting_id"`
	RecommendationText string                      `gorm:"type:text" json:"recommendation_text"`
	RecommendationType string                      `gorm:"type:varchar(64);index" json:"recommendation_type"`
	ABCValue           *float64                    `gorm:"column:abc_value" json:"abc_value,omitempty"`
	OverfishingLimit   *float64                    `json:"overfishing_limit,omitempty"`
	Species            datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"species,omitempty"`
	CouncilResponse    *string                     `gorm:"type:text" json:"council_response,omitempty"`
	Source             string                      `gorm:"type:varchar(64);index" json:"source"`
	Fingerprint        string                      `gorm:"type:char(64);not null" json:"-"`
	CreatedAt          time.Time                   `gorm:"default:now()" json:"created_at"`
	UpdatedAt          time.Time                   `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for SSCRecommendation
func (SSCRecommendation) TableName() string {
	return "ssc_recommendations"
}

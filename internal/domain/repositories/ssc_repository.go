package repositories

import (
	"context"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// SSCRepository defines the interface for SSC meeting and recommendation data access
type SSCRepository interface {
	// CreateMeeting inserts a new SSC meeting
	CreateMeeting(ctx context.Context, meeting *entities.SSCMeeting) error

	// UpdateMeeting saves an existing SSC meeting
	UpdateMeeting(ctx context.Context, meeting *entities.SSCMeeting) error

	// FindMeetingByID retrieves an SSC meeting by its natural key
	FindMeetingByID(ctx context.Context, meetingID string) (*entities.SSCMeeting, error)

	// ListMeetings retrieves SSC meetings with filters
	ListMeetings(ctx context.Context, filters SSCMeetingFilters) ([]*entities.SSCMeeting, int64, error)

	// CreateRecommendation inserts a new SSC recommendation
	CreateRecommendation(ctx context.Context, rec *entities.SSCRecommendation) error

	// UpdateRecommendation saves an existing SSC recommendation
	UpdateRecommendation(ctx context.Context, rec *entities.SSCRecommendation) error

	// FindRecommendationByID retrieves a recommendation by its natural key
	FindRecommendationByID(ctx context.Context, recommendationID string) (*entities.SSCRecommendation, error)

	// ListRecommendations retrieves recommendations with filters
	ListRecommendations(ctx context.Context, filters SSCRecommendationFilters) ([]*entities.SSCRecommendation, int64, error)
}

// SSCMeetingFilters represents filter options for listing SSC meetings
type SSCMeetingFilters struct {
	Status    *entities.SSCMeetingStatus
	Limit     int
	Offset    int
	SortBy    string // "meeting_date_start", "title"
	SortOrder string
}

// SSCRecommendationFilters represents filter options for listing SSC recommendations
type SSCRecommendationFilters struct {
	MeetingID *string
	Type      *string
	Species   *string // match within species array
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

package repositories

import (
	"context"
	"time"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create inserts a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// Update saves an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// FindByMeetingID retrieves a meeting by its natural key
	FindByMeetingID(ctx context.Context, meetingID string) (*entities.Meeting, error)

	// List retrieves meetings with filters and pagination
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, int64, error)

	// CountByCouncil returns meeting counts grouped by council
	CountByCouncil(ctx context.Context) (map[string]int64, error)

	// CountUpcoming counts meetings starting after the given instant
	CountUpcoming(ctx context.Context, after time.Time) (int64, error)
}

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	Search           string
	Council          *string
	OrganizationType *string
	Region           *string
	Type             *string
	From             *time.Time
	To               *time.Time
	Limit            int
	Offset           int
	SortBy           string // "start_date", "title", "council"
	SortOrder        string
}

package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create inserts a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// Update saves an existing meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Save(meeting).Error
}

// FindByMeetingID retrieves a meeting by its natural key
func (r *meetingRepository) FindByMeetingID(ctx context.Context, meetingID string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		First(&meeting).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// List retrieves meetings with filters and pagination
func (r *meetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	var meetings []*entities.Meeting
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Meeting{})

	if filters.Council != nil {
		query = query.Where("council = ?", *filters.Council)
	}
	if filters.OrganizationType != nil {
		query = query.Where("organization_type = ?", *filters.OrganizationType)
	}
	if filters.Region != nil {
		query = query.Where("region = ?", *filters.Region)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.From != nil {
		query = query.Where("start_date >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("start_date <= ?", *filters.To)
	}
	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("title ILIKE ? OR description ILIKE ? OR location ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(filters.SortBy, filters.SortOrder, map[string]bool{
		"start_date": true,
		"title":      true,
		"council":    true,
	}, "start_date"))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&meetings).Error
	return meetings, total, err
}

// CountByCouncil returns meeting counts grouped by council
func (r *meetingRepository) CountByCouncil(ctx context.Context) (map[string]int64, error) {
	return groupCounts(r.db.WithContext(ctx).Model(&entities.Meeting{}), "council")
}

// CountUpcoming counts meetings starting after the given instant
func (r *meetingRepository) CountUpcoming(ctx context.Context, after time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("start_date > ?", after).
		Count(&total).Error
	return total, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
)

// sscRepository implements the SSCRepository interface
type sscRepository struct {
	db *gorm.DB
}

// NewSSCRepository creates a new SSC repository
func NewSSCRepository(db *gorm.DB) repositories.SSCRepository {
	return &sscRepository{db: db}
}

// CreateMeeting inserts a new SSC meeting
func (r *sscRepository) CreateMeeting(ctx context.Context, meeting *entities.SSCMeeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// UpdateMeeting saves an existing SSC meeting
func (r *sscRepository) UpdateMeeting(ctx context.Context, meeting *entities.SSCMeeting) error {
	return r.db.WithContext(ctx).Save(meeting).Error
}

// FindMeetingByID retrieves an SSC meeting by its natural key
func (r *sscRepository) FindMeetingByID(ctx context.Context, meetingID string) (*entities.SSCMeeting, error) {
	var meeting entities.SSCMeeting
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		First(&meeting).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ListMeetings retrieves SSC meetings with filters
func (r *sscRepository) ListMeetings(ctx context.Context, filters repositories.SSCMeetingFilters) ([]*entities.SSCMeeting, int64, error) {
	var meetings []*entities.SSCMeeting
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.SSCMeeting{})

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(filters.SortBy, filters.SortOrder, map[string]bool{
		"meeting_date_start": true,
		"title":              true,
	}, "meeting_date_start"))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&meetings).Error
	return meetings, total, err
}

// CreateRecommendation inserts a new SSC recommendation
func (r *sscRepository) CreateRecommendation(ctx context.Context, rec *entities.SSCRecommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// UpdateRecommendation saves an existing SSC recommendation
func (r *sscRepository) UpdateRecommendation(ctx context.Context, rec *entities.SSCRecommendation) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// FindRecommendationByID retrieves a recommendation by its natural key
func (r *sscRepository) FindRecommendationByID(ctx context.Context, recommendationID string) (*entities.SSCRecommendation, error) {
	var rec entities.SSCRecommendation
	err := r.db.WithContext(ctx).
		Where("recommendation_id = ?", recommendationID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecommendations retrieves recommendations with filters
func (r *sscRepository) ListRecommendations(ctx context.Context, filters repositories.SSCRecommendationFilters) ([]*entities.SSCRecommendation, int64, error) {
	var recs []*entities.SSCRecommendation
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.SSCRecommendation{})

	if filters.MeetingID != nil {
		query = query.Where("meeting_id = ?", *filters.MeetingID)
	}
	if filters.Type != nil {
		query = query.Where("recommendation_type = ?", *filters.Type)
	}
	if filters.Species != nil {
		query = query.Where("species @> ?", `["`+*filters.Species+`"]`)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(filters.SortBy, filters.SortOrder, map[string]bool{
		"created_at":          true,
		"recommendation_type": true,
	}, "created_at"))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&recs).Error
	return recs, total, err
}

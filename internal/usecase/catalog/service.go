package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	usecaseErrors "github.com/fisherypulse/councilpulse/internal/usecase/errors"
)

// DefaultPageSize applies when a list request carries no explicit limit
const DefaultPageSize = 25

// MaxPageSize caps any single page
const MaxPageSize = 200

// Service exposes read access to the scraped catalog: actions, meetings,
// comments, SSC records and ecosystem indicators.
type Service struct {
	actions   repositories.ActionRepository
	meetings  repositories.MeetingRepository
	comments  repositories.CommentRepository
	ssc       repositories.SSCRepository
	ecosystem repositories.EcosystemRepository
}

// NewService creates the catalog service
func NewService(
	actions repositories.ActionRepository,
	meetings repositories.MeetingRepository,
	comments repositories.CommentRepository,
	ssc repositories.SSCRepository,
	ecosystem repositories.EcosystemRepository,
) *Service {
	return &Service{
		actions:   actions,
		meetings:  meetings,
		comments:  comments,
		ssc:       ssc,
		ecosystem: ecosystem,
	}
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListActions returns a filtered, sorted, paginated action page
func (s *Service) ListActions(ctx context.Context, filters repositories.ActionFilters) ([]*entities.Action, int64, error) {
	filters.Limit, filters.Offset = clampPage(filters.Limit, filters.Offset)
	return s.actions.List(ctx, filters)
}

// ListActionsWithStockStatus returns only actions carrying species stock data
func (s *Service) ListActionsWithStockStatus(ctx context.Context, filters repositories.ActionFilters) ([]*entities.Action, int64, error) {
	filters.HasSpecies = true
	filters.Limit, filters.Offset = clampPage(filters.Limit, filters.Offset)
	return s.actions.List(ctx, filters)
}

// GetAction returns one action by its natural key
func (s *Service) GetAction(ctx context.Context, actionID string) (*entities.Action, error) {
	action, err := s.actions.FindByActionID(ctx, actionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrActionNotFound
		}
		return nil, err
	}
	return action, nil
}

// ListMeetings returns a filtered meeting page
func (s *Service) ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	filters.Limit, filters.Offset = clampPage(filters.Limit, filters.Offset)
	return s.meetings.List(ctx, filters)
}

// ListComments returns a filtered comment page
func (s *Service) ListComments(ctx context.Context, filters repositories.CommentFilters) ([]*entities.Comment, int64, error) {
	filters.Limit, filters.Offset = clampPage(filters.Limit, filters.Offset)
	return s.comments.List(ctx, filters)
}

// ListSSCMeetings returns a filtered SSC meeting page
func (s *Service) ListSSCMeetings(ctx context.Context, filters repositories.SSCMeetingFilters) ([]*entities.SSCMeeting, int64, error) {
	filters.Limit, filters.Offset = clampPage(filters.Limit, filters.Offset)
	return s.ssc.ListMeetings(ctx, filters)
}

// ListSSCRecommendations returns a filtered SSC recommendation page
func (s *Service) ListSSCRecommendations(ctx context.Context, filters repositories.SSCRecommendationFilters) ([]*entities.SSCRecommendation, int64, error) {
	filters.Limit, filters.Offset = clampPage(filters.Limit, filters.Offset)
	return s.ssc.ListRecommendations(ctx, filters)
}

// ListIndicators returns a filtered ecosystem indicator page
func (s *Service) ListIndicators(ctx context.Context, filters repositories.EcosystemFilters) ([]*entities.EcosystemIndicator, int64, error) {
	filters.Limit, filters.Offset = clampPage(filters.Limit, filters.Offset)
	return s.ecosystem.List(ctx, filters)
}

package compare

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	usecaseErrors "github.com/fisherypulse/councilpulse/internal/usecase/errors"
)

// SimilarityThreshold is the minimum score for an action to count as similar
const SimilarityThreshold = 0.25

// DefaultSimilarLimit bounds the similar-actions result set
const DefaultSimilarLimit = 10

// maxSideBySide caps how many actions one comparison request may load
const maxSideBySide = 6

// ScoredAction pairs an action with its similarity score to the reference
type ScoredAction struct {
	Action *entities.Action `json:"action"`
	Score  float64          `json:"score"`
}

// Service provides side-by-side and fuzzy comparison over actions
type Service struct {
	actions repositories.ActionRepository
}

// NewService creates the comparison service
func NewService(actions repositories.ActionRepository) *Service {
	return &Service{actions: actions}
}

// SideBySide loads the named actions in request order
func (s *Service) SideBySide(ctx context.Context, actionIDs []string) ([]*entities.Action, error) {
	if len(actionIDs) < 2 {
		return nil, fmt.Errorf("%w: at least two action ids required", usecaseErrors.ErrInvalidInput)
	}
	if len(actionIDs) > maxSideBySide {
		return nil, fmt.Errorf("%w: at most %d actions per comparison", usecaseErrors.ErrInvalidInput, maxSideBySide)
	}

	out := make([]*entities.Action, 0, len(actionIDs))
	for _, id := range actionIDs {
		action, err := s.actions.FindByActionID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrActionNotFound, id)
			}
			return nil, err
		}
		out = append(out, action)
	}
	return out, nil
}

// Similar returns up to limit actions whose title and FMP tokens overlap the
// reference action above the similarity threshold, best match first.
func (s *Service) Similar(ctx context.Context, actionID string, limit int) ([]ScoredAction, error) {
	if limit <= 0 || limit > 50 {
		limit = DefaultSimilarLimit
	}

	ref, err := s.actions.FindByActionID(ctx, actionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrActionNotFound, actionID)
		}
		return nil, err
	}

	// The action corpus is small (hundreds), so scoring everything in one
	// pass beats maintaining a search index.
	candidates, _, err := s.actions.List(ctx, repositories.ActionFilters{Limit: 5000})
	if err != nil {
		return nil, err
	}

	scored := make([]ScoredAction, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ActionID == ref.ActionID {
			continue
		}
		score := Similarity(ref.Title, ref.FMP, candidate.Title, candidate.FMP)
		if score >= SimilarityThreshold {
			scored = append(scored, ScoredAction{Action: candidate, Score: score})
		}
	}

	rank(scored,
		func(sa ScoredAction) float64 { return sa.Score },
		func(sa ScoredAction) string { return sa.Action.ActionID })

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

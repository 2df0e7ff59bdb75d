package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
)

// actionRepository implements the ActionRepository interface
type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository creates a new action repository
func NewActionRepository(db *gorm.DB) repositories.ActionRepository {
	return &actionRepository{db: db}
}

// Create inserts a new action
func (r *actionRepository) Create(ctx context.Context, action *entities.Action) error {
	return r.db.WithContext(ctx).Create(action).Error
}

// Update saves an existing action
func (r *actionRepository) Update(ctx context.Context, action *entities.Action) error {
	return r.db.WithContext(ctx).Save(action).Error
}

// FindByActionID retrieves an action by its natural key
func (r *actionRepository) FindByActionID(ctx context.Context, actionID string) (*entities.Action, error) {
	var action entities.Action
	err := r.db.WithContext(ctx).
		Where("action_id = ?", actionID).
		First(&action).Error
	if err != nil {
		return nil, err
	}
	return &action, nil
}

// List retrieves actions with filters and pagination
func (r *actionRepository) List(ctx context.Context, filters repositories.ActionFilters) ([]*entities.Action, int64, error) {
	var actions []*entities.Action
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Action{})

	if filters.FMP != nil {
		query = query.Where("fmp = ?", *filters.FMP)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Stage != nil {
		query = query.Where("progress_stage = ?", *filters.Stage)
	}
	if filters.Source != nil {
		query = query.Where("source = ?", *filters.Source)
	}
	if filters.HasSpecies {
		query = query.Where("species IS NOT NULL AND jsonb_array_length(species) > 0")
	}
	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("title ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(filters.SortBy, filters.SortOrder, map[string]bool{
		"last_updated": true,
		"start_date":   true,
		"title":        true,
		"progress":     true,
	}, "last_updated"))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&actions).Error
	return actions, total, err
}

// CountByStatus returns action counts grouped by status
func (r *actionRepository) CountByStatus(ctx context.Context) (map[entities.ActionStatus]int64, error) {
	rows, err := groupCounts(r.db.WithContext(ctx).Model(&entities.Action{}), "status")
	if err != nil {
		return nil, err
	}
	out := make(map[entities.ActionStatus]int64, len(rows))
	for k, v := range rows {
		out[entities.ActionStatus(k)] = v
	}
	return out, nil
}

// CountByStage returns action counts grouped by progress stage
func (r *actionRepository) CountByStage(ctx context.Context) (map[string]int64, error) {
	return groupCounts(r.db.WithContext(ctx).Model(&entities.Action{}), "progress_stage")
}

// CountByFMP returns action counts grouped by fishery management plan
func (r *actionRepository) CountByFMP(ctx context.Context) (map[string]int64, error) {
	return groupCounts(r.db.WithContext(ctx).Model(&entities.Action{}), "fmp")
}

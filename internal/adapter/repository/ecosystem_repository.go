package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
)

// ecosystemRepository implements the EcosystemRepository interface
type ecosystemRepository struct {
	db *gorm.DB
}

// NewEcosystemRepository creates a new ecosystem repository
func NewEcosystemRepository(db *gorm.DB) repositories.EcosystemRepository {
	return &ecosystemRepository{db: db}
}

// Create inserts a new indicator observation
func (r *ecosystemRepository) Create(ctx context.Context, ind *entities.EcosystemIndicator) error {
	return r.db.WithContext(ctx).Create(ind).Error
}

// Update saves an existing indicator observation
func (r *ecosystemRepository) Update(ctx context.Context, ind *entities.EcosystemIndicator) error {
	return r.db.WithContext(ctx).Save(ind).Error
}

// FindByIndicatorID retrieves an indicator by its natural key
func (r *ecosystemRepository) FindByIndicatorID(ctx context.Context, indicatorID string) (*entities.EcosystemIndicator, error) {
	var ind entities.EcosystemIndicator
	err := r.db.WithContext(ctx).
		Where("indicator_id = ?", indicatorID).
		First(&ind).Error
	if err != nil {
		return nil, err
	}
	return &ind, nil
}

// List retrieves indicators with filters
func (r *ecosystemRepository) List(ctx context.Context, filters repositories.EcosystemFilters) ([]*entities.EcosystemIndicator, int64, error) {
	var inds []*entities.EcosystemIndicator
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.EcosystemIndicator{})

	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Region != nil {
		query = query.Where("region = ?", *filters.Region)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(filters.SortBy, filters.SortOrder, map[string]bool{
		"observed_at": true,
		"name":        true,
	}, "observed_at"))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&inds).Error
	return inds, total, err
}

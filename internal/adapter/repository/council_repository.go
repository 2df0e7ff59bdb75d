package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
)

// councilRepository implements the CouncilRepository interface
type councilRepository struct {
	db *gorm.DB
}

// NewCouncilRepository creates a new council profile repository
func NewCouncilRepository(db *gorm.DB) repositories.CouncilRepository {
	return &councilRepository{db: db}
}

// List retrieves all council profiles ordered by council name
func (r *councilRepository) List(ctx context.Context) ([]*entities.CouncilProfile, error) {
	var profiles []*entities.CouncilProfile
	err := r.db.WithContext(ctx).
		Order("council ASC").
		Find(&profiles).Error
	return profiles, err
}

// Upsert inserts or refreshes a profile keyed by council name
func (r *councilRepository) Upsert(ctx context.Context, profile *entities.CouncilProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "council"}},
			DoUpdates: clause.AssignmentColumns([]string{"region", "fiscal_year", "budget_usd", "staff_count", "updated_at"}),
		}).
		Create(profile).Error
}

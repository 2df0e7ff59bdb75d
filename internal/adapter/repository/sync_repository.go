package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
)

// syncRunRepository implements the SyncRunRepository interface
type syncRunRepository struct {
	db *gorm.DB
}

// NewSyncRunRepository creates a new sync run repository
func NewSyncRunRepository(db *gorm.DB) repositories.SyncRunRepository {
	return &syncRunRepository{db: db}
}

// Create inserts a new run row
func (r *syncRunRepository) Create(ctx context.Context, run *entities.SyncRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

// Update saves the run after it finishes or fails
func (r *syncRunRepository) Update(ctx context.Context, run *entities.SyncRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

// List retrieves recent runs newest-first
func (r *syncRunRepository) List(ctx context.Context, limit int) ([]*entities.SyncRun, error) {
	var runs []*entities.SyncRun
	query := r.db.WithContext(ctx).Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&runs).Error
	return runs, err
}

// FindLatestBySource retrieves the most recent run for one source
func (r *syncRunRepository) FindLatestBySource(ctx context.Context, source string) (*entities.SyncRun, error) {
	var run entities.SyncRun
	err := r.db.WithContext(ctx).
		Where("source = ?", source).
		Order("started_at DESC").
		First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

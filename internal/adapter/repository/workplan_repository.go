package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
)

// workplanRepository implements the WorkplanRepository interface
type workplanRepository struct {
	db *gorm.DB
}

// NewWorkplanRepository creates a new workplan repository
func NewWorkplanRepository(db *gorm.DB) repositories.WorkplanRepository {
	return &workplanRepository{db: db}
}

// CreateVersion inserts a new version together with its items in one transaction
func (r *workplanRepository) CreateVersion(ctx context.Context, version *entities.WorkplanVersion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := version.Items
		version.Items = nil
		if err := tx.Create(version).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].VersionID = version.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		version.Items = items
		return nil
	})
}

// FindCurrent retrieves the highest-numbered version with items preloaded
func (r *workplanRepository) FindCurrent(ctx context.Context) (*entities.WorkplanVersion, error) {
	var version entities.WorkplanVersion
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("version DESC").
		First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// FindByID retrieves one version with items preloaded
func (r *workplanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.WorkplanVersion, error) {
	var version entities.WorkplanVersion
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// ListVersions retrieves version metadata newest-first, without items
func (r *workplanRepository) ListVersions(ctx context.Context) ([]*entities.WorkplanVersion, error) {
	var versions []*entities.WorkplanVersion
	err := r.db.WithContext(ctx).
		Order("version DESC").
		Find(&versions).Error
	return versions, err
}

// MaxVersion returns the highest version number, zero when none exist
func (r *workplanRepository) MaxVersion(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&entities.WorkplanVersion{}).
		Select("MAX(version)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

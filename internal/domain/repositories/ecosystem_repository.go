package repositories

import (
	"context"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// EcosystemRepository defines the interface for ecosystem indicator data access
type EcosystemRepository interface {
	// Create inserts a new indicator observation
	Create(ctx context.Context, ind *entities.EcosystemIndicator) error

	// Update saves an existing indicator observation
	Update(ctx context.Context, ind *entities.EcosystemIndicator) error

	// FindByIndicatorID retrieves an indicator by its natural key
	FindByIndicatorID(ctx context.Context, indicatorID string) (*entities.EcosystemIndicator, error)

	// List retrieves indicators with filters
	List(ctx context.Context, filters EcosystemFilters) ([]*entities.EcosystemIndicator, int64, error)
}

// EcosystemFilters represents filter options for listing ecosystem indicators
type EcosystemFilters struct {
	Category  *string
	Region    *string
	Limit     int
	Offset    int
	SortBy    string // "observed_at", "name"
	SortOrder string
}

package repositories

import (
	"context"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// ActionRepository defines the interface for regulatory action data access
type ActionRepository interface {
	// Create inserts a new action
	Create(ctx context.Context, action *entities.Action) error

	// Update saves an existing action
	Update(ctx context.Context, action *entities.Action) error

	// FindByActionID retrieves an action by its natural key
	FindByActionID(ctx context.Context, actionID string) (*entities.Action, error)

	// List retrieves actions with filters and pagination
	List(ctx context.Context, filters ActionFilters) ([]*entities.Action, int64, error)

	// CountByStatus returns action counts grouped by status
	CountByStatus(ctx context.Context) (map[entities.ActionStatus]int64, error)

	// CountByStage returns action counts grouped by progress stage
	CountByStage(ctx context.Context) (map[string]int64, error)

	// CountByFMP returns action counts grouped by fishery management plan
	CountByFMP(ctx context.Context) (map[string]int64, error)
}

// ActionFilters represents filter options for listing actions
type ActionFilters struct {
	Search     string // substring match on title, description
	FMP        *string
	Type       *string
	Status     *entities.ActionStatus
	Stage      *string
	Source     *string
	HasSpecies bool // only actions carrying stock status entries
	Limit      int
	Offset     int
	SortBy     string // "last_updated", "start_date", "title", "progress"
	SortOrder  string // "asc", "desc"
}

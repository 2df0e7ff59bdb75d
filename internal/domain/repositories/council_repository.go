package repositories

import (
	"context"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// CouncilRepository defines the interface for council profile data access
type CouncilRepository interface {
	// List retrieves all council profiles ordered by council name
	List(ctx context.Context) ([]*entities.CouncilProfile, error)

	// Upsert inserts or refreshes a profile keyed by council name
	Upsert(ctx context.Context, profile *entities.CouncilProfile) error
}

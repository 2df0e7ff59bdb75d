package repositories

import (
	"context"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// SyncRunRepository defines the interface for sync run bookkeeping
type SyncRunRepository interface {
	// Create inserts a new run row (status running)
	Create(ctx context.Context, run *entities.SyncRun) error

	// Update saves the run after it finishes or fails
	Update(ctx context.Context, run *entities.SyncRun) error

	// List retrieves recent runs newest-first
	List(ctx context.Context, limit int) ([]*entities.SyncRun, error)

	// FindLatestBySource retrieves the most recent run for one source
	FindLatestBySource(ctx context.Context, source string) (*entities.SyncRun, error)
}

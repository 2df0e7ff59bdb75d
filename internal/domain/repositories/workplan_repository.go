package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// WorkplanRepository defines the interface for workplan version data access
type WorkplanRepository interface {
	// CreateVersion inserts a new version together with its items
	CreateVersion(ctx context.Context, version *entities.WorkplanVersion) error

	// FindCurrent retrieves the highest-numbered version with items preloaded
	FindCurrent(ctx context.Context) (*entities.WorkplanVersion, error)

	// FindByID retrieves one version with items preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*entities.WorkplanVersion, error)

	// ListVersions retrieves version metadata newest-first, without items
	ListVersions(ctx context.Context) ([]*entities.WorkplanVersion, error)

	// MaxVersion returns the highest version number, zero when none exist
	MaxVersion(ctx context.Context) (int, error)
}

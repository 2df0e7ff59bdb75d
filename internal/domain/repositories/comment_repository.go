package repositories

import (
	"context"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// CommentRepository defines the interface for public comment data access
type CommentRepository interface {
	// Create inserts a new comment
	Create(ctx context.Context, comment *entities.Comment) error

	// Update saves an existing comment
	Update(ctx context.Context, comment *entities.Comment) error

	// FindByCommentID retrieves a comment by its natural key
	FindByCommentID(ctx context.Context, commentID string) (*entities.Comment, error)

	// List retrieves comments with filters and pagination
	List(ctx context.Context, filters CommentFilters) ([]*entities.Comment, int64, error)

	// CountByPosition returns comment counts grouped by position
	CountByPosition(ctx context.Context) (map[entities.CommentPosition]int64, error)
}

// CommentFilters represents filter options for listing comments
type CommentFilters struct {
	Search    string // substring match on name, organization, comment text
	ActionID  *string
	Position  *entities.CommentPosition
	State     *string
	Limit     int
	Offset    int
	SortBy    string // "submitted_date", "name", "state"
	SortOrder string
}

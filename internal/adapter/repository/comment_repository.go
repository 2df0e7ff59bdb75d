package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment
func (r *commentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Update saves an existing comment
func (r *commentRepository) Update(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// FindByCommentID retrieves a comment by its natural key
func (r *commentRepository) FindByCommentID(ctx context.Context, commentID string) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// List retrieves comments with filters and pagination
func (r *commentRepository) List(ctx context.Context, filters repositories.CommentFilters) ([]*entities.Comment, int64, error) {
	var comments []*entities.Comment
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Comment{})

	if filters.ActionID != nil {
		query = query.Where("action_id = ?", *filters.ActionID)
	}
	if filters.Position != nil {
		query = query.Where("position = ?", *filters.Position)
	}
	if filters.State != nil {
		query = query.Where("state = ?", *filters.State)
	}
	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("name ILIKE ? OR organization ILIKE ? OR comment_text ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(filters.SortBy, filters.SortOrder, map[string]bool{
		"submitted_date": true,
		"name":           true,
		"state":          true,
	}, "submitted_date"))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&comments).Error
	return comments, total, err
}

// CountByPosition returns comment counts grouped by position
func (r *commentRepository) CountByPosition(ctx context.Context) (map[entities.CommentPosition]int64, error) {
	rows, err := groupCounts(r.db.WithContext(ctx).Model(&entities.Comment{}), "position")
	if err != nil {
		return nil, err
	}
	out := make(map[entities.CommentPosition]int64, len(rows))
	for k, v := range rows {
		out[entities.CommentPosition(k)] = v
	}
	return out, nil
}

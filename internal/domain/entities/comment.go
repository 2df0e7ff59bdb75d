package entities

import (
	"time"

	"github.com/google/uuid"
)

// CommentPosition is the stance a commenter took on an action
type CommentPosition string

const (
	CommentPositionSupport CommentPosition = "support"
	CommentPositionOppose  CommentPosition = "oppose"
	CommentPositionNeutral CommentPosition = "neutral"
)

// Comment represents a public comment submitted on a regulatory action
type Comment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CommentID     string          `gorm:"type:varchar(128);unique;not null" json:"comment_id"`
	Name          string          `gorm:"type:varchar(255)" json:"name"`
	Organization  *string         `gorm:"type:varchar(255)" json:"organization,omitempty"`
	State         string          `gorm:"type:varchar(32);index" json:"state"`
	Position      CommentPosition `gorm:"type:varchar(16);index" json:"position"`
	CommentText   string          `gorm:"type:text" json:"comment_text"`
	SubmittedDate *time.Time      `gorm:"index" json:"submitted_date,omitempty"`
	ActionID      string          `gorm:"type:varchar(128);index" json:"action_id"`
	Source        string          `gorm:"type:varchar(64);index" json:"source"`
	Fingerprint   string          `gorm:"type:char(64);not null" json:"-"`
	CreatedAt     time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// NormalizePosition maps free-form source stances onto the three canonical
// positions, defaulting to neutral
func NormalizePosition(raw string) CommentPosition {
	switch raw {
	case "support", "supports", "for", "in favor":
		return CommentPositionSupport
	case "oppose", "opposes", "against", "opposed":
		return CommentPositionOppose
	default:
		return CommentPositionNeutral
	}
}

package workplan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	usecaseErrors "github.com/fisherypulse/councilpulse/internal/usecase/errors"
)

// ItemInput is one workplan item submitted with a new version
type ItemInput struct {
	AmendmentID string               `json:"amendment_id"`
	Topic       string               `json:"topic" validate:"required"`
	LeadStaff   string               `json:"lead_staff"`
	Status      string               `json:"status" validate:"required,workplan_status"`
	Milestones  []entities.Milestone `json:"milestones"`
}

// VersionInput is a submitted workplan snapshot
type VersionInput struct {
	Label string      `json:"label"`
	Notes *string     `json:"notes"`
	Items []ItemInput `json:"items" validate:"required,min=1,dive"`
}

// Stats summarizes the current workplan version
type Stats struct {
	Version             int            `json:"version"`
	TotalItems          int            `json:"total_items"`
	ByStatus            map[string]int `json:"by_status"`
	MilestonesTotal     int            `json:"milestones_total"`
	MilestonesCompleted int            `json:"milestones_completed"`
	CompletionRate      float64        `json:"completion_rate"`
}

// Service manages immutable workplan versions. Every submission creates a new
// version; history stays queryable forever.
type Service struct {
	workplans repositories.WorkplanRepository
}

// NewService creates the workplan service
func NewService(workplans repositories.WorkplanRepository) *Service {
	return &Service{workplans: workplans}
}

// Current returns the highest-numbered version with items
func (s *Service) Current(ctx context.Context) (*entities.WorkplanVersion, error) {
	version, err := s.workplans.FindCurrent(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrWorkplanNotFound
		}
		return nil, err
	}
	return version, nil
}

// Version returns one historical version with items
func (s *Service) Version(ctx context.Context, id uuid.UUID) (*entities.WorkplanVersion, error) {
	version, err := s.workplans.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrWorkplanNotFound
		}
		return nil, err
	}
	return version, nil
}

// Versions lists version metadata newest-first, without items
func (s *Service) Versions(ctx context.Context) ([]*entities.WorkplanVersion, error) {
	return s.workplans.ListVersions(ctx)
}

// Create validates a submission and persists it as the next version
func (s *Service) Create(ctx context.Context, input VersionInput) (*entities.WorkplanVersion, error) {
	if len(input.Items) == 0 {
		return nil, usecaseErrors.ErrEmptyWorkplan
	}
	for i, item := range input.Items {
		if !entities.ValidWorkplanStatus(entities.WorkplanItemStatus(item.Status)) {
			return nil, fmt.Errorf("%w: item %d has status %q",
				usecaseErrors.ErrInvalidWorkplanStatus, i, item.Status)
		}
		// A completed item cannot carry open milestones.
		if entities.WorkplanItemStatus(item.Status) == entities.WorkplanStatusCompleted {
			for _, m := range item.Milestones {
				if !m.IsCompleted {
					return nil, fmt.Errorf("%w: completed item %d has open milestone %q",
						usecaseErrors.ErrInvalidWorkplanStatus, i, m.Type)
				}
			}
		}
	}

	maxVersion, err := s.workplans.MaxVersion(ctx)
	if err != nil {
		return nil, err
	}

	version := &entities.WorkplanVersion{
		Version: maxVersion + 1,
		Label:   input.Label,
		Notes:   input.Notes,
	}
	for _, item := range input.Items {
		version.Items = append(version.Items, entities.WorkplanItem{
			AmendmentID: item.AmendmentID,
			Topic:       item.Topic,
			LeadStaff:   item.LeadStaff,
			Status:      entities.WorkplanItemStatus(item.Status),
			Milestones:  item.Milestones,
		})
	}

	if err := s.workplans.CreateVersion(ctx, version); err != nil {
		return nil, err
	}
	return version, nil
}

// Stats computes per-status counts and milestone completion for the current version
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Version:    current.Version,
		TotalItems: len(current.Items),
		ByStatus:   make(map[string]int, 4),
	}
	for i := range current.Items {
		item := &current.Items[i]
		stats.ByStatus[string(item.Status)]++
		done, total := item.MilestoneCompletion()
		stats.MilestonesCompleted += done
		stats.MilestonesTotal += total
	}
	if stats.MilestonesTotal > 0 {
		stats.CompletionRate = float64(stats.MilestonesCompleted) / float64(stats.MilestonesTotal)
	}
	return stats, nil
}

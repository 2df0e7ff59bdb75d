package workplan

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	usecaseErrors "github.com/fisherypulse/councilpulse/internal/usecase/errors"
)

type fakeWorkplanRepo struct {
	versions []*entities.WorkplanVersion
}

func (f *fakeWorkplanRepo) CreateVersion(ctx context.Context, v *entities.WorkplanVersion) error {
	v.ID = uuid.New()
	f.versions = append(f.versions, v)
	return nil
}

func (f *fakeWorkplanRepo) FindCurrent(ctx context.Context) (*entities.WorkplanVersion, error) {
	var current *entities.WorkplanVersion
	for _, v := range f.versions {
		if current == nil || v.Version > current.Version {
			current = v
		}
	}
	if current == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return current, nil
}

func (f *fakeWorkplanRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.WorkplanVersion, error) {
	for _, v := range f.versions {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWorkplanRepo) ListVersions(ctx context.Context) ([]*entities.WorkplanVersion, error) {
	return f.versions, nil
}

func (f *fakeWorkplanRepo) MaxVersion(ctx context.Context) (int, error) {
	max := 0
	for _, v := range f.versions {
		if v.Version > max {
			max = v.Version
		}
	}
	return max, nil
}

func validInput() VersionInput {
	return VersionInput{
		Label: "June 2026 priorities",
		Items: []ItemInput{
			{
				AmendmentID: "safmc-53",
				Topic:       "Snapper Grouper Amendment 53",
				LeadStaff:   "M. Rivera",
				Status:      string(entities.WorkplanStatusUnderway),
				Milestones: []entities.Milestone{
					{Type: "public_hearing", IsCompleted: true},
					{Type: "final_vote"},
				},
			},
			{
				Topic:  "Citizen science pilot",
				Status: string(entities.WorkplanStatusPlanned),
			},
		},
	}
}

func TestCreate_AssignsSequentialVersions(t *testing.T) {
	repo := &fakeWorkplanRepo{}
	svc := NewService(repo)

	first, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if first.Version != 1 {
		t.Fatalf("expected version 1, got %d", first.Version)
	}

	second, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if second.Version != 2 {
		t.Fatalf("expected version 2, got %d", second.Version)
	}

	current, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if current.Version != 2 {
		t.Fatalf("current should be version 2, got %d", current.Version)
	}

	// The first version stays queryable untouched.
	old, err := svc.Version(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("historical lookup failed: %v", err)
	}
	if old.Version != 1 || len(old.Items) != 2 {
		t.Fatalf("historical version mutated: %+v", old)
	}
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(&fakeWorkplanRepo{})

	input := validInput()
	input.Items[0].Status = "IN_PROGRESS"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, usecaseErrors.ErrInvalidWorkplanStatus) {
		t.Fatalf("expected ErrInvalidWorkplanStatus, got %v", err)
	}
}

func TestCreate_RejectsCompletedItemWithOpenMilestone(t *testing.T) {
	svc := NewService(&fakeWorkplanRepo{})

	input := validInput()
	input.Items[0].Status = string(entities.WorkplanStatusCompleted)
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, usecaseErrors.ErrInvalidWorkplanStatus) {
		t.Fatalf("expected ErrInvalidWorkplanStatus, got %v", err)
	}
}

func TestCreate_RejectsEmptyWorkplan(t *testing.T) {
	svc := NewService(&fakeWorkplanRepo{})
	if _, err := svc.Create(context.Background(), VersionInput{}); !errors.Is(err, usecaseErrors.ErrEmptyWorkplan) {
		t.Fatalf("expected ErrEmptyWorkplan, got %v", err)
	}
}

func TestStats_CompletionRate(t *testing.T) {
	svc := NewService(&fakeWorkplanRepo{})
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalItems != 2 {
		t.Fatalf("expected 2 items, got %d", stats.TotalItems)
	}
	if stats.ByStatus[string(entities.WorkplanStatusUnderway)] != 1 ||
		stats.ByStatus[string(entities.WorkplanStatusPlanned)] != 1 {
		t.Fatalf("unexpected status counts: %+v", stats.ByStatus)
	}
	if stats.MilestonesTotal != 2 || stats.MilestonesCompleted != 1 {
		t.Fatalf("unexpected milestone counts: %d/%d", stats.MilestonesCompleted, stats.MilestonesTotal)
	}
	if stats.CompletionRate != 0.5 {
		t.Fatalf("expected completion rate 0.5, got %f", stats.CompletionRate)
	}
}

func TestCurrent_EmptyHistory(t *testing.T) {
	svc := NewService(&fakeWorkplanRepo{})
	if _, err := svc.Current(context.Background()); !errors.Is(err, usecaseErrors.ErrWorkplanNotFound) {
		t.Fatalf("expected ErrWorkplanNotFound, got %v", err)
	}
}

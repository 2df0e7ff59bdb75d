package compare

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	usecaseErrors "github.com/fisherypulse/councilpulse/internal/usecase/errors"
)

type fakeActionRepo struct {
	actions []*entities.Action
}

func (f *fakeActionRepo) Create(ctx context.Context, a *entities.Action) error { return nil }
func (f *fakeActionRepo) Update(ctx context.Context, a *entities.Action) error { return nil }

func (f *fakeActionRepo) FindByActionID(ctx context.Context, actionID string) (*entities.Action, error) {
	for _, a := range f.actions {
		if a.ActionID == actionID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeActionRepo) List(ctx context.Context, filters repositories.ActionFilters) ([]*entities.Action, int64, error) {
	return f.actions, int64(len(f.actions)), nil
}

func (f *fakeActionRepo) CountByStatus(ctx context.Context) (map[entities.ActionStatus]int64, error) {
	return nil, nil
}
func (f *fakeActionRepo) CountByStage(ctx context.Context) (map[string]int64, error) { return nil, nil }
func (f *fakeActionRepo) CountByFMP(ctx context.Context) (map[string]int64, error)   { return nil, nil }

func corpus() *fakeActionRepo {
	return &fakeActionRepo{actions: []*entities.Action{
		{ActionID: "safmc-1", Title: "Snapper Grouper Amendment 53", FMP: "Snapper Grouper"},
		{ActionID: "safmc-2", Title: "Snapper Grouper Amendment 54", FMP: "Snapper Grouper"},
		{ActionID: "safmc-3", Title: "Dolphin Wahoo Framework 3", FMP: "Dolphin Wahoo"},
		{ActionID: "safmc-4", Title: "Golden Crab Regulatory Amendment", FMP: "Golden Crab"},
	}}
}

func TestSimilarity_TokenSetJaccard(t *testing.T) {
	tests := []struct {
		name           string
		titleA, titleB string
		wantAbove      bool
	}{
		{"near duplicates", "Snapper Grouper Amendment 53", "Snapper Grouper Amendment 54", true},
		{"unrelated fmps", "Snapper Grouper Amendment 53", "Golden Crab Trap Limits", false},
		{"stop words only", "Amendment for the Fishery Management Plan", "Framework of a Plan", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Similarity(tt.titleA, "", tt.titleB, "")
			if got := score >= SimilarityThreshold; got != tt.wantAbove {
				t.Fatalf("score %f above-threshold=%v, want %v", score, got, tt.wantAbove)
			}
		})
	}
}

func TestSimilar_RanksAndExcludesSelf(t *testing.T) {
	svc := NewService(corpus())

	scored, err := svc.Similar(context.Background(), "safmc-1", 10)
	if err != nil {
		t.Fatalf("similar failed: %v", err)
	}
	if len(scored) == 0 {
		t.Fatal("expected at least one similar action")
	}
	for _, sa := range scored {
		if sa.Action.ActionID == "safmc-1" {
			t.Fatal("reference action appeared in its own results")
		}
		if sa.Score < SimilarityThreshold {
			t.Fatalf("score %f below threshold returned", sa.Score)
		}
	}
	if scored[0].Action.ActionID != "safmc-2" {
		t.Fatalf("expected safmc-2 as best match, got %s", scored[0].Action.ActionID)
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Fatal("results not sorted by descending score")
		}
	}
}

func TestSimilar_Deterministic(t *testing.T) {
	svc := NewService(corpus())

	first, err := svc.Similar(context.Background(), "safmc-1", 10)
	if err != nil {
		t.Fatalf("similar failed: %v", err)
	}
	second, err := svc.Similar(context.Background(), "safmc-1", 10)
	if err != nil {
		t.Fatalf("similar failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("result size changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Action.ActionID != second[i].Action.ActionID {
			t.Fatalf("order changed at %d: %s vs %s", i, first[i].Action.ActionID, second[i].Action.ActionID)
		}
	}
}

func TestSimilar_UnknownAction(t *testing.T) {
	svc := NewService(corpus())
	if _, err := svc.Similar(context.Background(), "nope", 10); !errors.Is(err, usecaseErrors.ErrActionNotFound) {
		t.Fatalf("expected ErrActionNotFound, got %v", err)
	}
}

func TestSideBySide_PreservesRequestOrder(t *testing.T) {
	svc := NewService(corpus())

	actions, err := svc.SideBySide(context.Background(), []string{"safmc-3", "safmc-1"})
	if err != nil {
		t.Fatalf("side by side failed: %v", err)
	}
	if actions[0].ActionID != "safmc-3" || actions[1].ActionID != "safmc-1" {
		t.Fatalf("request order not preserved: %s, %s", actions[0].ActionID, actions[1].ActionID)
	}
}

func TestSideBySide_RejectsSingleID(t *testing.T) {
	svc := NewService(corpus())
	if _, err := svc.SideBySide(context.Background(), []string{"safmc-1"}); !errors.Is(err, usecaseErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

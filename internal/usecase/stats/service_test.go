package stats

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/cache"
)

type fakeActionRepo struct {
	actions   []*entities.Action
	listCalls int
	byStatus  map[entities.ActionStatus]int64
}

func (f *fakeActionRepo) Create(ctx context.Context, a *entities.Action) error { return nil }
func (f *fakeActionRepo) Update(ctx context.Context, a *entities.Action) error { return nil }
func (f *fakeActionRepo) FindByActionID(ctx context.Context, id string) (*entities.Action, error) {
	return nil, nil
}

func (f *fakeActionRepo) List(ctx context.Context, filters repositories.ActionFilters) ([]*entities.Action, int64, error) {
	f.listCalls++
	return f.actions, int64(len(f.actions)), nil
}

func (f *fakeActionRepo) CountByStatus(ctx context.Context) (map[entities.ActionStatus]int64, error) {
	return f.byStatus, nil
}

func (f *fakeActionRepo) CountByStage(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (f *fakeActionRepo) CountByFMP(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

type fakeMeetingRepo struct {
	byCouncil map[string]int64
	upcoming  int64
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error { return nil }
func (f *fakeMeetingRepo) Update(ctx context.Context, m *entities.Meeting) error { return nil }
func (f *fakeMeetingRepo) FindByMeetingID(ctx context.Context, id string) (*entities.Meeting, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return nil, 0, nil
}

func (f *fakeMeetingRepo) CountByCouncil(ctx context.Context) (map[string]int64, error) {
	return f.byCouncil, nil
}

func (f *fakeMeetingRepo) CountUpcoming(ctx context.Context, after time.Time) (int64, error) {
	return f.upcoming, nil
}

type fakeCommentRepo struct {
	byPosition map[entities.CommentPosition]int64
}

func (f *fakeCommentRepo) Create(ctx context.Context, c *entities.Comment) error { return nil }
func (f *fakeCommentRepo) Update(ctx context.Context, c *entities.Comment) error { return nil }
func (f *fakeCommentRepo) FindByCommentID(ctx context.Context, id string) (*entities.Comment, error) {
	return nil, nil
}

func (f *fakeCommentRepo) List(ctx context.Context, filters repositories.CommentFilters) ([]*entities.Comment, int64, error) {
	return nil, 0, nil
}

func (f *fakeCommentRepo) CountByPosition(ctx context.Context) (map[entities.CommentPosition]int64, error) {
	return f.byPosition, nil
}

type fakeCouncilRepo struct {
	profiles []*entities.CouncilProfile
}

func (f *fakeCouncilRepo) List(ctx context.Context) ([]*entities.CouncilProfile, error) {
	return f.profiles, nil
}

func (f *fakeCouncilRepo) Upsert(ctx context.Context, p *entities.CouncilProfile) error { return nil }

type fakeRunRepo struct{}

func (f *fakeRunRepo) Create(ctx context.Context, run *entities.SyncRun) error { return nil }
func (f *fakeRunRepo) Update(ctx context.Context, run *entities.SyncRun) error { return nil }
func (f *fakeRunRepo) List(ctx context.Context, limit int) ([]*entities.SyncRun, error) {
	return nil, nil
}

func (f *fakeRunRepo) FindLatestBySource(ctx context.Context, source string) (*entities.SyncRun, error) {
	return nil, nil
}

func ptr(v float64) *float64 { return &v }

func speciesCorpus() *fakeActionRepo {
	return &fakeActionRepo{
		byStatus: map[entities.ActionStatus]int64{
			entities.ActionStatusUnderDevelopment: 3,
			entities.ActionStatusImplemented:      2,
		},
		actions: []*entities.Action{
			{ActionID: "safmc-1", Species: []entities.SpeciesStatus{
				{Name: "Red Snapper", Overfished: true, Overfishing: true, BBmsy: ptr(0.5)},
				{Name: "Gag Grouper", BBmsy: ptr(1.1)},
			}},
			{ActionID: "safmc-2", Species: []entities.SpeciesStatus{
				{Name: "Red Snapper", Overfished: true, BBmsy: ptr(0.7)},
			}},
		},
	}
}

func newTestService(actions *fakeActionRepo) *Service {
	return NewService(
		actions,
		&fakeMeetingRepo{byCouncil: map[string]int64{"SAFMC": 4, "GMFMC": 2}, upcoming: 3},
		&fakeCommentRepo{byPosition: map[entities.CommentPosition]int64{
			entities.CommentPositionSupport: 5,
			entities.CommentPositionOppose:  2,
		}},
		&fakeCouncilRepo{profiles: []*entities.CouncilProfile{
			{Council: "SAFMC", Region: "South Atlantic", FiscalYear: 2026, BudgetUSD: 6_500_000, StaffCount: 32},
			{Council: "GMFMC", Region: "Gulf", FiscalYear: 2026, BudgetUSD: 7_100_000, StaffCount: 35},
		}},
		&fakeRunRepo{},
		cache.NewMemoryStore(),
		zap.NewNop(),
	)
}

func TestDashboard_Totals(t *testing.T) {
	svc := newTestService(speciesCorpus())

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if stats.TotalActions != 5 {
		t.Fatalf("expected 5 total actions, got %d", stats.TotalActions)
	}
	if stats.TotalMeetings != 6 {
		t.Fatalf("expected 6 total meetings, got %d", stats.TotalMeetings)
	}
	if stats.TotalComments != 7 {
		t.Fatalf("expected 7 total comments, got %d", stats.TotalComments)
	}
	if stats.UpcomingMeetings != 3 {
		t.Fatalf("expected 3 upcoming meetings, got %d", stats.UpcomingMeetings)
	}
}

func TestSpecies_RollsUpAcrossActions(t *testing.T) {
	svc := newTestService(speciesCorpus())

	species, err := svc.Species(context.Background())
	if err != nil {
		t.Fatalf("species failed: %v", err)
	}
	if len(species) != 2 {
		t.Fatalf("expected 2 species, got %d", len(species))
	}

	// Sorted by name: Gag Grouper, Red Snapper.
	gag, red := species[0], species[1]
	if gag.Name != "Gag Grouper" || red.Name != "Red Snapper" {
		t.Fatalf("unexpected ordering: %s, %s", gag.Name, red.Name)
	}
	if red.ActionCount != 2 || !red.Overfished || !red.Overfishing {
		t.Fatalf("red snapper rollup wrong: %+v", red)
	}
	if red.MeanBBmsy == nil || *red.MeanBBmsy != 0.6 {
		t.Fatalf("expected mean b/bmsy 0.6, got %v", red.MeanBBmsy)
	}
	if gag.Overfished || gag.Overfishing {
		t.Fatalf("gag grouper should carry no stock concern: %+v", gag)
	}
}

func TestSpeciesByName_CaseInsensitive(t *testing.T) {
	svc := newTestService(speciesCorpus())

	detail, err := svc.SpeciesByName(context.Background(), "red snapper")
	if err != nil {
		t.Fatalf("species by name failed: %v", err)
	}
	if detail.Name != "Red Snapper" || len(detail.Actions) != 2 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestSpecies_ServedFromCache(t *testing.T) {
	actions := speciesCorpus()
	svc := newTestService(actions)

	if _, err := svc.Species(context.Background()); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if _, err := svc.Species(context.Background()); err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if actions.listCalls != 1 {
		t.Fatalf("expected one repository scan, got %d", actions.listCalls)
	}
}

func TestResourceAllocation_JoinsMeetingCounts(t *testing.T) {
	svc := newTestService(speciesCorpus())

	allocations, err := svc.ResourceAllocation(context.Background())
	if err != nil {
		t.Fatalf("resource allocation failed: %v", err)
	}
	if len(allocations) != 2 {
		t.Fatalf("expected 2 councils, got %d", len(allocations))
	}
	// Sorted by council name: GMFMC first.
	if allocations[0].Council != "GMFMC" || allocations[0].MeetingsTracked != 2 {
		t.Fatalf("unexpected first allocation: %+v", allocations[0])
	}
	if allocations[1].Council != "SAFMC" || allocations[1].MeetingsTracked != 4 {
		t.Fatalf("unexpected second allocation: %+v", allocations[1])
	}
}

package sync

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/cache"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/external/sources"
	usecaseErrors "github.com/fisherypulse/councilpulse/internal/usecase/errors"
)

// fakeActionRepo keeps actions in a map keyed by natural key
type fakeActionRepo struct {
	mu      sync.Mutex
	byKey   map[string]entities.Action
	creates int
	updates int
}

func newFakeActionRepo() *fakeActionRepo {
	return &fakeActionRepo{byKey: make(map[string]entities.Action)}
}

func (f *fakeActionRepo) Create(ctx context.Context, a *entities.Action) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byKey[a.ActionID] = *a
	f.creates++
	return nil
}

func (f *fakeActionRepo) Update(ctx context.Context, a *entities.Action) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byKey[a.ActionID] = *a
	f.updates++
	return nil
}

func (f *fakeActionRepo) FindByActionID(ctx context.Context, actionID string) (*entities.Action, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byKey[actionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (f *fakeActionRepo) List(ctx context.Context, filters repositories.ActionFilters) ([]*entities.Action, int64, error) {
	return nil, 0, nil
}

func (f *fakeActionRepo) CountByStatus(ctx context.Context) (map[entities.ActionStatus]int64, error) {
	return nil, nil
}

func (f *fakeActionRepo) CountByStage(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func (f *fakeActionRepo) CountByFMP(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

// fakeRunRepo records sync runs in memory
type fakeRunRepo struct {
	mu   sync.Mutex
	runs []*entities.SyncRun
}

func (f *fakeRunRepo) Create(ctx context.Context, run *entities.SyncRun) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, run)
	return nil
}

func (f *fakeRunRepo) Update(ctx context.Context, run *entities.SyncRun) error {
	return nil
}

func (f *fakeRunRepo) List(ctx context.Context, limit int) ([]*entities.SyncRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.runs) {
		limit = len(f.runs)
	}
	out := make([]*entities.SyncRun, limit)
	copy(out, f.runs[len(f.runs)-limit:])
	return out, nil
}

func (f *fakeRunRepo) FindLatestBySource(ctx context.Context, source string) (*entities.SyncRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.runs) - 1; i >= 0; i-- {
		if f.runs[i].Source == source {
			return f.runs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// stubAdapter returns a fixed batch or error
type stubAdapter struct {
	name  string
	batch *sources.Batch
	err   error
	calls int
}

func (s *stubAdapter) Name() string               { return s.name }
func (s *stubAdapter) Kind() entities.RecordKind  { return entities.RecordKindAction }
func (s *stubAdapter) Fetch(ctx context.Context) (*sources.Batch, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.batch, nil
}

func testAction(id, title string, progress int) entities.Action {
	return entities.Action{
		ActionID:  id,
		Title:     title,
		FMP:       "Snapper Grouper",
		Status:    entities.ActionStatusUnderDevelopment,
		Progress:  progress,
		SourceURL: "https://example.org/actions/" + id,
	}
}

func newTestService(adapters []SourceAdapter, actions *fakeActionRepo, runs *fakeRunRepo) *Service {
	rec := NewReconciler(actions, nil, nil, nil, nil, zap.NewNop())
	return NewService(adapters, rec, runs, cache.NewMemoryStore(), nil, zap.NewNop(), Options{
		InterSourceDelay: time.Millisecond,
		LockTTL:          time.Minute,
	})
}

func TestRunSource_CreatesThenSkipsUnchanged(t *testing.T) {
	actions := newFakeActionRepo()
	runs := &fakeRunRepo{}
	adapter := &stubAdapter{
		name: "safmc-amendments",
		batch: &sources.Batch{Actions: []entities.Action{
			testAction("safmc-1", "Amendment 53", 40),
			testAction("safmc-2", "Amendment 54", 10),
		}},
	}
	svc := newTestService([]SourceAdapter{adapter}, actions, runs)

	run, err := svc.RunSource(context.Background(), "safmc-amendments")
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if run.Status != entities.SyncStatusSucceeded {
		t.Fatalf("expected succeeded got %s", run.Status)
	}
	if run.ItemsFound != 2 || run.ItemsNew != 2 || run.ItemsUpdated != 0 {
		t.Fatalf("unexpected counts found=%d new=%d updated=%d",
			run.ItemsFound, run.ItemsNew, run.ItemsUpdated)
	}

	// Second run over identical content must be a no-op.
	run, err = svc.RunSource(context.Background(), "safmc-amendments")
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if run.ItemsFound != 2 || run.ItemsNew != 0 || run.ItemsUpdated != 0 {
		t.Fatalf("rerun not idempotent found=%d new=%d updated=%d",
			run.ItemsFound, run.ItemsNew, run.ItemsUpdated)
	}
	if actions.updates != 0 {
		t.Fatalf("expected no updates on identical rerun, got %d", actions.updates)
	}
}

func TestRunSource_DetectsContentChange(t *testing.T) {
	actions := newFakeActionRepo()
	runs := &fakeRunRepo{}
	adapter := &stubAdapter{
		name: "safmc-amendments",
		batch: &sources.Batch{Actions: []entities.Action{
			testAction("safmc-1", "Amendment 53", 40),
		}},
	}
	svc := newTestService([]SourceAdapter{adapter}, actions, runs)

	if _, err := svc.RunSource(context.Background(), "safmc-amendments"); err != nil {
		t.Fatalf("seed run failed: %v", err)
	}

	adapter.batch = &sources.Batch{Actions: []entities.Action{
		testAction("safmc-1", "Amendment 53", 60),
	}}
	run, err := svc.RunSource(context.Background(), "safmc-amendments")
	if err != nil {
		t.Fatalf("change run failed: %v", err)
	}
	if run.ItemsNew != 0 || run.ItemsUpdated != 1 {
		t.Fatalf("expected one update, got new=%d updated=%d", run.ItemsNew, run.ItemsUpdated)
	}
	stored, err := actions.FindByActionID(context.Background(), "safmc-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Progress != 60 {
		t.Fatalf("update not persisted, progress=%d", stored.Progress)
	}
}

func TestRunSource_DerivesKeyWhenSourceHasNoID(t *testing.T) {
	actions := newFakeActionRepo()
	runs := &fakeRunRepo{}
	anon := testAction("", "Unnumbered Framework", 5)
	adapter := &stubAdapter{
		name:  "safmc-amendments",
		batch: &sources.Batch{Actions: []entities.Action{anon}},
	}
	svc := newTestService([]SourceAdapter{adapter}, actions, runs)

	run, err := svc.RunSource(context.Background(), "safmc-amendments")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if run.ItemsNew != 1 {
		t.Fatalf("expected one new item, got %d", run.ItemsNew)
	}

	wantKey := DeriveKey(anon.SourceURL, anon.Title)
	if _, err := actions.FindByActionID(context.Background(), wantKey); err != nil {
		t.Fatalf("derived key %s not stored: %v", wantKey, err)
	}

	// Same record again resolves to the same derived key.
	run, err = svc.RunSource(context.Background(), "safmc-amendments")
	if err != nil {
		t.Fatalf("rerun failed: %v", err)
	}
	if run.ItemsNew != 0 || run.ItemsUpdated != 0 {
		t.Fatalf("derived key unstable, new=%d updated=%d", run.ItemsNew, run.ItemsUpdated)
	}
}

func TestRunSource_UnknownSource(t *testing.T) {
	svc := newTestService(nil, newFakeActionRepo(), &fakeRunRepo{})
	if _, err := svc.RunSource(context.Background(), "nope"); !errors.Is(err, usecaseErrors.ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
}

func TestRunSource_RejectsConcurrentRun(t *testing.T) {
	actions := newFakeActionRepo()
	runs := &fakeRunRepo{}
	adapter := &stubAdapter{name: "slow", batch: &sources.Batch{}}
	svc := newTestService([]SourceAdapter{adapter}, actions, runs)

	// Hold the lock manually to simulate a run in flight.
	locks := cache.NewMemoryStore()
	svc.locks = locks
	if ok, err := locks.SetNX(context.Background(), lockKeyPrefix+"slow", "x", time.Minute); err != nil || !ok {
		t.Fatalf("failed to pre-acquire lock: ok=%v err=%v", ok, err)
	}

	if _, err := svc.RunSource(context.Background(), "slow"); !errors.Is(err, usecaseErrors.ErrSyncInProgress) {
		t.Fatalf("expected ErrSyncInProgress, got %v", err)
	}
}

func TestRunSource_FetchFailureRecordsFailedRun(t *testing.T) {
	actions := newFakeActionRepo()
	runs := &fakeRunRepo{}
	adapter := &stubAdapter{name: "down", err: errors.New("connection refused")}
	svc := newTestService([]SourceAdapter{adapter}, actions, runs)

	run, err := svc.RunSource(context.Background(), "down")
	if !errors.Is(err, usecaseErrors.ErrSyncFailed) {
		t.Fatalf("expected ErrSyncFailed, got %v", err)
	}
	if run == nil || run.Status != entities.SyncStatusFailed {
		t.Fatalf("expected failed run, got %+v", run)
	}
	if run.Error == nil {
		t.Fatal("expected error message on failed run")
	}
}

func TestRunSource_FeedErrorsMarkRunPartial(t *testing.T) {
	actions := newFakeActionRepo()
	runs := &fakeRunRepo{}
	adapter := &stubAdapter{
		name: "fisherypulse",
		batch: &sources.Batch{
			Actions:    []entities.Action{testAction("fp-1", "Aggregated", 0)},
			FeedErrors: []error{errors.New("feed https://gulf.example: 503")},
		},
	}
	svc := newTestService([]SourceAdapter{adapter}, actions, runs)

	run, err := svc.RunSource(context.Background(), "fisherypulse")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if run.Status != entities.SyncStatusPartial {
		t.Fatalf("expected partial, got %s", run.Status)
	}
	if run.Error == nil {
		t.Fatal("expected feed errors recorded on run")
	}
	if run.ItemsNew != 1 {
		t.Fatalf("partial run should still commit good records, new=%d", run.ItemsNew)
	}
}

func TestRunAll_ContinuesPastFailures(t *testing.T) {
	actions := newFakeActionRepo()
	runs := &fakeRunRepo{}
	healthy := &stubAdapter{
		name:  "safmc-amendments",
		batch: &sources.Batch{Actions: []entities.Action{testAction("safmc-1", "Amendment 53", 40)}},
	}
	broken := &stubAdapter{name: "ssc-meetings", err: errors.New("timeout")}
	trailing := &stubAdapter{name: "ecosystem", batch: &sources.Batch{}}
	svc := newTestService([]SourceAdapter{healthy, broken, trailing}, actions, runs)

	results := svc.RunAll(context.Background())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("healthy source failed: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, usecaseErrors.ErrSyncFailed) {
		t.Fatalf("expected ErrSyncFailed for broken source, got %v", results[1].Err)
	}
	if results[2].Err != nil || trailing.calls != 1 {
		t.Fatalf("run did not continue past failure: err=%v calls=%d", results[2].Err, trailing.calls)
	}
}

func TestRunAll_PreservesRegistrationOrder(t *testing.T) {
	actions := newFakeActionRepo()
	runs := &fakeRunRepo{}
	a := &stubAdapter{name: "a", batch: &sources.Batch{}}
	b := &stubAdapter{name: "b", batch: &sources.Batch{}}
	c := &stubAdapter{name: "c", batch: &sources.Batch{}}
	svc := newTestService([]SourceAdapter{a, b, c}, actions, runs)

	results := svc.RunAll(context.Background())
	got := []string{results[0].Source, results[1].Source, results[2].Source}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

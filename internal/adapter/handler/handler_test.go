package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/cache"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/external/sources"
	"github.com/fisherypulse/councilpulse/internal/usecase/catalog"
	"github.com/fisherypulse/councilpulse/internal/usecase/compare"
	syncuse "github.com/fisherypulse/councilpulse/internal/usecase/sync"
	"github.com/fisherypulse/councilpulse/pkg/validator"
)

type fakeActionRepo struct {
	mu    sync.Mutex
	byKey map[string]entities.Action
}

func newFakeActionRepo(actions ...entities.Action) *fakeActionRepo {
	f := &fakeActionRepo{byKey: make(map[string]entities.Action)}
	for _, a := range actions {
		f.byKey[a.ActionID] = a
	}
	return f
}

func (f *fakeActionRepo) Create(ctx context.Context, a *entities.Action) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byKey[a.ActionID] = *a
	return nil
}

func (f *fakeActionRepo) Update(ctx context.Context, a *entities.Action) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byKey[a.ActionID] = *a
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
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entities.Action, 0, len(f.byKey))
	for key := range f.byKey {
		a := f.byKey[key]
		if filters.HasSpecies && len(a.Species) == 0 {
			continue
		}
		out = append(out, &a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeActionRepo) CountByStatus(ctx context.Context) (map[entities.ActionStatus]int64, error) {
	return nil, nil
}
func (f *fakeActionRepo) CountByStage(ctx context.Context) (map[string]int64, error) { return nil, nil }
func (f *fakeActionRepo) CountByFMP(ctx context.Context) (map[string]int64, error)   { return nil, nil }

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

func (f *fakeRunRepo) Update(ctx context.Context, run *entities.SyncRun) error { return nil }

func (f *fakeRunRepo) List(ctx context.Context, limit int) ([]*entities.SyncRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs, nil
}

func (f *fakeRunRepo) FindLatestBySource(ctx context.Context, source string) (*entities.SyncRun, error) {
	return nil, gorm.ErrRecordNotFound
}

type stubAdapter struct {
	name  string
	batch *sources.Batch
}

func (s *stubAdapter) Name() string              { return s.name }
func (s *stubAdapter) Kind() entities.RecordKind { return entities.RecordKindAction }
func (s *stubAdapter) Fetch(ctx context.Context) (*sources.Batch, error) {
	return s.batch, nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	return e
}

type envelope struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Info    string          `json:"info"`
}

func TestListActions_ReturnsEnvelopeWithPagination(t *testing.T) {
	actions := newFakeActionRepo(
		entities.Action{ActionID: "safmc-1", Title: "Amendment 53"},
		entities.Action{ActionID: "safmc-2", Title: "Amendment 54"},
	)
	h := NewCatalog(catalog.NewService(actions, nil, nil, nil, nil), zap.NewNop())

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/actions?page=1&page_size=25", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListActions(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if body.Message != "success" {
		t.Fatalf("unexpected message %q", body.Message)
	}

	var list struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			TotalItems int64 `json:"total_items"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(body.Data, &list); err != nil {
		t.Fatalf("invalid list payload: %v", err)
	}
	if len(list.Data) != 2 || list.Pagination.TotalItems != 2 {
		t.Fatalf("unexpected list: %d items, total %d", len(list.Data), list.Pagination.TotalItems)
	}
}

func newSyncHandler(adapter syncuse.SourceAdapter, locks cache.Store) *Sync {
	actions := newFakeActionRepo()
	rec := syncuse.NewReconciler(actions, nil, nil, nil, nil, zap.NewNop())
	svc := syncuse.NewService([]syncuse.SourceAdapter{adapter}, rec, &fakeRunRepo{}, locks, nil, zap.NewNop(), syncuse.Options{
		InterSourceDelay: time.Millisecond,
		LockTTL:          time.Minute,
	})
	return NewSync(svc, zap.NewNop())
}

func TestScrapeAmendments_ReturnsSyncResult(t *testing.T) {
	adapter := &stubAdapter{
		name: "safmc-amendments",
		batch: &sources.Batch{Actions: []entities.Action{
			{ActionID: "safmc-1", Title: "Amendment 53", SourceURL: "https://safmc.net/a53"},
		}},
	}
	h := newSyncHandler(adapter, cache.NewMemoryStore())

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/scrape/amendments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ScrapeAmendments(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	var result struct {
		Success      bool   `json:"success"`
		Source       string `json:"source"`
		ItemsFound   int    `json:"itemsFound"`
		ItemsNew     int    `json:"itemsNew"`
		ItemsUpdated int    `json:"itemsUpdated"`
	}
	if err := json.Unmarshal(body.Data, &result); err != nil {
		t.Fatalf("invalid sync result: %v", err)
	}
	if !result.Success || result.Source != "safmc-amendments" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.ItemsFound != 1 || result.ItemsNew != 1 || result.ItemsUpdated != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
}

func TestScrapeAmendments_ConflictWhenLocked(t *testing.T) {
	locks := cache.NewMemoryStore()
	if ok, err := locks.SetNX(context.Background(), "synclock:safmc-amendments", "x", time.Minute); err != nil || !ok {
		t.Fatalf("failed to pre-acquire lock: %v", err)
	}
	h := newSyncHandler(&stubAdapter{name: "safmc-amendments", batch: &sources.Batch{}}, locks)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/scrape/amendments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ScrapeAmendments(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Sync already running") {
		t.Fatalf("expected sync-in-progress message in body: %s", rec.Body.String())
	}
}

func TestSideBySide_RequiresIDs(t *testing.T) {
	h := NewCompare(compare.NewService(newFakeActionRepo()), zap.NewNop())

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/compare", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SideBySide(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

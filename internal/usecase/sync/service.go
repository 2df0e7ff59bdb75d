package sync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/cache"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/storage"
	usecaseErrors "github.com/fisherypulse/councilpulse/internal/usecase/errors"
)

const lockKeyPrefix = "synclock:"

// Options tunes the orchestration behavior of the sync service
type Options struct {
	// InterSourceDelay is the pause between sources during a full run, to
	// avoid hammering council sites back to back
	InterSourceDelay time.Duration

	// LockTTL bounds how long a crashed run can keep a source locked
	LockTTL time.Duration
}

// Service orchestrates sync runs across registered source adapters. Per-source
// locking lives in Redis so concurrent triggers are rejected cluster-wide.
type Service struct {
	order    []string
	adapters map[string]SourceAdapter

	reconciler *Reconciler
	runs       repositories.SyncRunRepository
	locks      cache.Store
	archive    storage.Archive
	logger     *zap.Logger
	opts       Options
}

// NewService creates the sync service. Adapters run in registration order
// during a full sync. The archive may be nil when raw payload retention is
// disabled.
func NewService(
	adapters []SourceAdapter,
	reconciler *Reconciler,
	runs repositories.SyncRunRepository,
	locks cache.Store,
	archive storage.Archive,
	logger *zap.Logger,
	opts Options,
) *Service {
	if opts.InterSourceDelay <= 0 {
		opts.InterSourceDelay = 1500 * time.Millisecond
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = 10 * time.Minute
	}

	byName := make(map[string]SourceAdapter, len(adapters))
	order := make([]string, 0, len(adapters))
	for _, a := range adapters {
		byName[a.Name()] = a
		order = append(order, a.Name())
	}

	return &Service{
		order:      order,
		adapters:   byName,
		reconciler: reconciler,
		runs:       runs,
		locks:      locks,
		archive:    archive,
		logger:     logger,
		opts:       opts,
	}
}

// Sources lists registered source names in run order
func (s *Service) Sources() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// RunSource executes one adapter end to end: lock, fetch, archive, reconcile,
// record. The returned run is persisted in every outcome except an unknown
// source or a lost lock race.
func (s *Service) RunSource(ctx context.Context, name string) (*entities.SyncRun, error) {
	adapter, ok := s.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrUnknownSource, name)
	}

	lockKey := lockKeyPrefix + name
	acquired, err := s.locks.SetNX(ctx, lockKey, time.Now().UTC().Format(time.RFC3339), s.opts.LockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrSyncInProgress, name)
	}
	defer func() {
		if err := s.locks.Delete(context.WithoutCancel(ctx), lockKey); err != nil {
			s.logger.Warn("failed to release sync lock",
				zap.String("source", name), zap.Error(err))
		}
	}()

	run := &entities.SyncRun{
		Source:    name,
		Kind:      adapter.Kind(),
		Status:    entities.SyncStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	if err := s.runs.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to record sync run: %w", err)
	}

	s.logger.Info("sync started", zap.String("source", name))

	batch, err := adapter.Fetch(ctx)
	if err != nil {
		run.Fail(err)
		s.finalize(ctx, run)
		s.logger.Error("sync fetch failed", zap.String("source", name), zap.Error(err))
		return run, fmt.Errorf("%w: %s: %v", usecaseErrors.ErrSyncFailed, name, err)
	}

	if s.archive != nil && len(batch.Raw) > 0 {
		object, err := s.archive.PutRaw(ctx, name, batch.Raw)
		if err != nil {
			// Raw retention is best effort; the reconcile still proceeds.
			s.logger.Warn("failed to archive raw payload",
				zap.String("source", name), zap.Error(err))
		} else {
			run.ArchiveObject = &object
		}
	}

	counts := s.reconciler.Apply(ctx, batch)
	run.Finish(counts.Found, counts.Created, counts.Updated, counts.Failed)

	if len(batch.FeedErrors) > 0 {
		run.Status = entities.SyncStatusPartial
		msgs := make([]string, 0, len(batch.FeedErrors))
		for _, fe := range batch.FeedErrors {
			msgs = append(msgs, fe.Error())
		}
		joined := strings.Join(msgs, "; ")
		run.Error = &joined
	}

	s.finalize(ctx, run)

	s.logger.Info("sync finished",
		zap.String("source", name),
		zap.String("status", string(run.Status)),
		zap.Int("items_found", run.ItemsFound),
		zap.Int("items_new", run.ItemsNew),
		zap.Int("items_updated", run.ItemsUpdated),
		zap.Int("items_failed", run.ItemsFailed),
		zap.Duration("duration", run.Duration()))

	return run, nil
}

// RunResult pairs a source with the outcome of its run during a full sync
type RunResult struct {
	Source string
	Run    *entities.SyncRun
	Err    error
}

// RunAll executes every registered adapter sequentially with a delay between
// sources. A failing source is recorded and the run moves on to the next one.
func (s *Service) RunAll(ctx context.Context) []RunResult {
	results := make([]RunResult, 0, len(s.order))
	for i, name := range s.order {
		run, err := s.RunSource(ctx, name)
		results = append(results, RunResult{Source: name, Run: run, Err: err})

		if i == len(s.order)-1 {
			break
		}
		select {
		case <-ctx.Done():
			for _, remaining := range s.order[i+1:] {
				results = append(results, RunResult{Source: remaining, Err: ctx.Err()})
			}
			return results
		case <-time.After(s.opts.InterSourceDelay):
		}
	}
	return results
}

// ListRuns returns recent runs, newest first
func (s *Service) ListRuns(ctx context.Context, limit int) ([]*entities.SyncRun, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.runs.List(ctx, limit)
}

// LatestRun returns the most recent run for one source
func (s *Service) LatestRun(ctx context.Context, source string) (*entities.SyncRun, error) {
	if _, ok := s.adapters[source]; !ok {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrUnknownSource, source)
	}
	return s.runs.FindLatestBySource(ctx, source)
}

// finalize persists a terminal run state. Failures here are logged rather than
// surfaced since the run itself already completed.
func (s *Service) finalize(ctx context.Context, run *entities.SyncRun) {
	if err := s.runs.Update(context.WithoutCancel(ctx), run); err != nil {
		s.logger.Error("failed to persist sync run",
			zap.String("source", run.Source), zap.Error(err))
	}
}

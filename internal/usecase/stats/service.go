package stats

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/cache"
	usecaseErrors "github.com/fisherypulse/councilpulse/internal/usecase/errors"
)

// CacheTTL bounds staleness of aggregate responses. Invalidation is implicit:
// entries simply expire.
const CacheTTL = 60 * time.Second

const (
	cacheKeyDashboard  = "stats:dashboard"
	cacheKeySpecies    = "stats:species"
	cacheKeyAllocation = "stats:resource-allocation"
)

// DashboardStats aggregates the headline dashboard counters
type DashboardStats struct {
	TotalActions       int64            `json:"total_actions"`
	ActionsByStatus    map[string]int64 `json:"actions_by_status"`
	ActionsByStage     map[string]int64 `json:"actions_by_stage"`
	ActionsByFMP       map[string]int64 `json:"actions_by_fmp"`
	TotalMeetings      int64            `json:"total_meetings"`
	MeetingsByCouncil  map[string]int64 `json:"meetings_by_council"`
	UpcomingMeetings   int64            `json:"upcoming_meetings"`
	TotalComments      int64            `json:"total_comments"`
	CommentsByPosition map[string]int64 `json:"comments_by_position"`
	LastSyncAt         *time.Time       `json:"last_sync_at,omitempty"`
}

// SpeciesAggregate rolls up stock status across every action mentioning a species
type SpeciesAggregate struct {
	Name        string   `json:"name"`
	ActionCount int      `json:"action_count"`
	Overfished  bool     `json:"overfished"`
	Overfishing bool     `json:"overfishing"`
	MeanBBmsy   *float64 `json:"mean_b_bmsy,omitempty"`
}

// SpeciesDetail is one species with the actions that reference it
type SpeciesDetail struct {
	SpeciesAggregate
	Actions []*entities.Action `json:"actions"`
}

// CouncilAllocation pairs a council's budget profile with tracked activity
type CouncilAllocation struct {
	Council         string  `json:"council"`
	Region          string  `json:"region"`
	FiscalYear      int     `json:"fiscal_year"`
	BudgetUSD       float64 `json:"budget_usd"`
	StaffCount      int     `json:"staff_count"`
	MeetingsTracked int64   `json:"meetings_tracked"`
}

// Service computes dashboard, species and resource allocation aggregates.
// Results are cached with a short TTL since every widget on the dashboard
// polls them.
type Service struct {
	actions  repositories.ActionRepository
	meetings repositories.MeetingRepository
	comments repositories.CommentRepository
	councils repositories.CouncilRepository
	runs     repositories.SyncRunRepository
	cache    cache.Store
	logger   *zap.Logger
}

// NewService creates the stats service
func NewService(
	actions repositories.ActionRepository,
	meetings repositories.MeetingRepository,
	comments repositories.CommentRepository,
	councils repositories.CouncilRepository,
	runs repositories.SyncRunRepository,
	cacheStore cache.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		actions:  actions,
		meetings: meetings,
		comments: comments,
		councils: councils,
		runs:     runs,
		cache:    cacheStore,
		logger:   logger,
	}
}

// Dashboard returns the headline counters, served from cache when fresh
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if s.fromCache(ctx, cacheKeyDashboard, &cached) {
		return &cached, nil
	}

	byStatus, err := s.actions.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byStage, err := s.actions.CountByStage(ctx)
	if err != nil {
		return nil, err
	}
	byFMP, err := s.actions.CountByFMP(ctx)
	if err != nil {
		return nil, err
	}
	byCouncil, err := s.meetings.CountByCouncil(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.meetings.CountUpcoming(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	byPosition, err := s.comments.CountByPosition(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		ActionsByStatus:    make(map[string]int64, len(byStatus)),
		ActionsByStage:     byStage,
		ActionsByFMP:       byFMP,
		MeetingsByCouncil:  byCouncil,
		UpcomingMeetings:   upcoming,
		CommentsByPosition: make(map[string]int64, len(byPosition)),
	}
	for status, n := range byStatus {
		stats.ActionsByStatus[string(status)] = n
		stats.TotalActions += n
	}
	for _, n := range byCouncil {
		stats.TotalMeetings += n
	}
	for position, n := range byPosition {
		stats.CommentsByPosition[string(position)] = n
		stats.TotalComments += n
	}

	if latest, err := s.runs.List(ctx, 1); err == nil && len(latest) > 0 && latest[0].FinishedAt != nil {
		stats.LastSyncAt = latest[0].FinishedAt
	}

	s.toCache(ctx, cacheKeyDashboard, stats)
	return stats, nil
}

// Species returns stock status rollups across all actions, sorted by name
func (s *Service) Species(ctx context.Context) ([]SpeciesAggregate, error) {
	var cached []SpeciesAggregate
	if s.fromCache(ctx, cacheKeySpecies, &cached) {
		return cached, nil
	}

	aggregates, _, err := s.aggregateSpecies(ctx)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, cacheKeySpecies, aggregates)
	return aggregates, nil
}

// SpeciesByName returns one species rollup plus the actions referencing it
func (s *Service) SpeciesByName(ctx context.Context, name string) (*SpeciesDetail, error) {
	aggregates, byName, err := s.aggregateSpecies(ctx)
	if err != nil {
		return nil, err
	}

	folded := strings.ToLower(strings.TrimSpace(name))
	for _, agg := range aggregates {
		if strings.ToLower(agg.Name) == folded {
			return &SpeciesDetail{SpeciesAggregate: agg, Actions: byName[agg.Name]}, nil
		}
	}
	return nil, usecaseErrors.ErrNotFound
}

// ResourceAllocation compares budget and staffing across councils
func (s *Service) ResourceAllocation(ctx context.Context) ([]CouncilAllocation, error) {
	var cached []CouncilAllocation
	if s.fromCache(ctx, cacheKeyAllocation, &cached) {
		return cached, nil
	}

	profiles, err := s.councils.List(ctx)
	if err != nil {
		return nil, err
	}
	byCouncil, err := s.meetings.CountByCouncil(ctx)
	if err != nil {
		return nil, err
	}

	allocations := make([]CouncilAllocation, 0, len(profiles))
	for _, p := range profiles {
		allocations = append(allocations, CouncilAllocation{
			Council:         p.Council,
			Region:          p.Region,
			FiscalYear:      p.FiscalYear,
			BudgetUSD:       p.BudgetUSD,
			StaffCount:      p.StaffCount,
			MeetingsTracked: byCouncil[p.Council],
		})
	}
	sort.Slice(allocations, func(i, j int) bool {
		return allocations[i].Council < allocations[j].Council
	})

	s.toCache(ctx, cacheKeyAllocation, allocations)
	return allocations, nil
}

func (s *Service) aggregateSpecies(ctx context.Context) ([]SpeciesAggregate, map[string][]*entities.Action, error) {
	actions, _, err := s.actions.List(ctx, repositories.ActionFilters{HasSpecies: true, Limit: 5000})
	if err != nil {
		return nil, nil, err
	}

	type acc struct {
		agg       SpeciesAggregate
		bbmsySum  float64
		bbmsySeen int
	}
	accs := make(map[string]*acc)
	byName := make(map[string][]*entities.Action)

	for _, action := range actions {
		for _, sp := range action.Species {
			a, ok := accs[sp.Name]
			if !ok {
				a = &acc{agg: SpeciesAggregate{Name: sp.Name}}
				accs[sp.Name] = a
			}
			a.agg.ActionCount++
			a.agg.Overfished = a.agg.Overfished || sp.Overfished
			a.agg.Overfishing = a.agg.Overfishing || sp.Overfishing
			if sp.BBmsy != nil {
				a.bbmsySum += *sp.BBmsy
				a.bbmsySeen++
			}
			byName[sp.Name] = append(byName[sp.Name], action)
		}
	}

	aggregates := make([]SpeciesAggregate, 0, len(accs))
	for _, a := range accs {
		if a.bbmsySeen > 0 {
			mean := a.bbmsySum / float64(a.bbmsySeen)
			a.agg.MeanBBmsy = &mean
		}
		aggregates = append(aggregates, a.agg)
	}
	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].Name < aggregates[j].Name
	})
	return aggregates, byName, nil
}

func (s *Service) fromCache(ctx context.Context, key string, out interface{}) bool {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("stats cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Warn("stats cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Service) toCache(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), CacheTTL); err != nil {
		s.logger.Warn("stats cache write failed", zap.String("key", key), zap.Error(err))
	}
}

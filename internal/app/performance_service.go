package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/example/encore/internal/core/effects"
	"github.com/example/encore/internal/core/journal"
	"github.com/example/encore/internal/core/performance"
	"github.com/example/encore/internal/ctxutil"
	"github.com/example/encore/internal/ports/primary"
	"github.com/example/encore/internal/ports/secondary"
	"github.com/example/encore/internal/random"
)

// ErrNoPerformance is returned when an operation needs a performance and none was started.
var ErrNoPerformance = errors.New("no performance started")

// PerformanceServiceImpl implements the PerformanceService interface.
// It owns one performance at a time and journals every transition.
type PerformanceServiceImpl struct {
	journalRepo secondary.JournalRepository
	executor    EffectExecutor
	rules       performance.Rules
	catalog     performance.Catalog
	newSeed     func() (uint64, error)

	mu    sync.Mutex
	state *performance.State
	runID string
	seed  uint64
	seq   int
	seeds map[string]uint64
}

// NewPerformanceService creates a new PerformanceService with injected dependencies.
func NewPerformanceService(
	journalRepo secondary.JournalRepository,
	executor EffectExecutor,
	rules performance.Rules,
	catalog performance.Catalog,
) *PerformanceServiceImpl {
	return &PerformanceServiceImpl{
		journalRepo: journalRepo,
		executor:    executor,
		rules:       rules,
		catalog:     catalog,
		newSeed:     random.NewSeed,
		seeds:       make(map[string]uint64),
	}
}

// Start deals a new performance, replacing any current one.
func (s *PerformanceServiceImpl) Start(ctx context.Context, req primary.StartRequest) (*primary.StartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. Resolve seed
	seed := req.Seed
	if seed == 0 {
		var err error
		if seed, err = s.newSeed(); err != nil {
			return nil, fmt.Errorf("failed to pick seed: %w", err)
		}
	}

	// 2. Deal
	state, err := performance.New(s.rules, s.catalog, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to start performance: %w", err)
	}

	s.state = state
	s.runID = uuid.NewString()
	s.seed = seed
	s.seq = 0
	s.seeds[s.runID] = seed

	// 3. Journal the opening position
	after := state.Snapshot()
	if err := s.record(ctx, journal.ActionStart, "", performance.Snapshot{}, after); err != nil {
		return nil, err
	}

	return &primary.StartResponse{
		RunID:    s.runID,
		Seed:     seed,
		Snapshot: after,
	}, nil
}

// Snapshot returns a read-only copy of the current performance.
func (s *PerformanceServiceImpl) Snapshot(ctx context.Context) (performance.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return performance.Snapshot{}, ErrNoPerformance
	}
	return s.state.Snapshot(), nil
}

// Play plays the technique at index in the effective hand.
func (s *PerformanceServiceImpl) Play(ctx context.Context, index int) (performance.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return performance.Snapshot{}, ErrNoPerformance
	}

	// 1. Guard check
	before := s.state.Snapshot()
	if result := performance.CanPlayTechnique(performance.PlayContextFor(before, index)); !result.Allowed {
		s.reject(ctx, journal.ActionPlay, result)
		return before, result.Error()
	}
	name := before.Hand[index].Name

	// 2. Transition
	if err := s.state.PlayTechniqueFromHand(index); err != nil {
		return before, fmt.Errorf("failed to play %s: %w", name, err)
	}

	// 3. Journal
	after := s.state.Snapshot()
	if err := s.record(ctx, journal.ActionPlay, name, before, after); err != nil {
		return after, err
	}
	return after, nil
}

// Pass ends the current round.
func (s *PerformanceServiceImpl) Pass(ctx context.Context) (performance.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return performance.Snapshot{}, ErrNoPerformance
	}

	// 1. Guard check
	before := s.state.Snapshot()
	if result := performance.CanAdvanceRound(before.Status); !result.Allowed {
		s.reject(ctx, journal.ActionPass, result)
		return before, result.Error()
	}

	// 2. Transition
	if err := s.state.AdvanceRound(); err != nil {
		return before, fmt.Errorf("failed to end round: %w", err)
	}

	// 3. Journal
	after := s.state.Snapshot()
	if err := s.record(ctx, journal.ActionPass, "", before, after); err != nil {
		return after, err
	}
	return after, nil
}

// Summary returns the journal aggregate for the current run.
func (s *PerformanceServiceImpl) Summary(ctx context.Context) (*primary.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoPerformance
	}

	totals, err := s.journalRepo.RoundTotals(ctx, s.runID)
	if err != nil {
		return nil, fmt.Errorf("failed to total rounds: %w", err)
	}

	summary := &primary.Summary{
		RunID:  s.runID,
		Seed:   s.seed,
		Status: string(s.state.Status()),
		Cheers: s.state.Cheers(),
		Rounds: make([]primary.RoundSummary, len(totals)),
	}
	for i, t := range totals {
		summary.Rounds[i] = primary.RoundSummary{
			Round:        t.Round,
			Plays:        t.Plays,
			CheersGained: t.CheersGained,
			EndAudience:  t.EndAudience,
		}
		summary.Plays += t.Plays
	}
	return summary, nil
}

// Runs lists the outcome of every journaled run, most recent first.
func (s *PerformanceServiceImpl) Runs(ctx context.Context, limit int) ([]*primary.RunOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.journalRepo.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]*primary.RunOutcome, len(records))
	for i, r := range records {
		runs[i] = &primary.RunOutcome{
			RunID:  r.RunID,
			Seed:   s.seeds[r.RunID],
			Status: r.Status,
			Round:  r.Round,
			Cheers: r.Cheers,
		}
	}
	return runs, nil
}

// record plans and executes the journal effects for one transition.
func (s *PerformanceServiceImpl) record(ctx context.Context, action journal.Action, technique string, before, after performance.Snapshot) error {
	plan := journal.GenerateTransitionPlan(journal.TransitionInput{
		RunID:     s.runID,
		Seq:       s.seq,
		Action:    action,
		Technique: technique,
		Before:    before,
		After:     after,
	})
	s.seq++

	if err := s.executor.Execute(ctxutil.WithRunID(ctx, s.runID), plan.Effects()); err != nil {
		return fmt.Errorf("failed to journal %s: %w", action, err)
	}
	return nil
}

// reject logs a refused move.
func (s *PerformanceServiceImpl) reject(ctx context.Context, action journal.Action, result performance.GuardResult) {
	log := journal.GenerateRejectionLog(action, result.Reason)
	_ = s.executor.Execute(ctxutil.WithRunID(ctx, s.runID), []effects.Effect{log})
}

// Ensure PerformanceServiceImpl implements the interface
var _ primary.PerformanceService = (*PerformanceServiceImpl)(nil)

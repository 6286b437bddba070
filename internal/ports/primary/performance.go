// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"

	"github.com/example/encore/internal/core/performance"
)

// PerformanceService defines the primary port for playing a performance.
// One service drives one performance at a time.
type PerformanceService interface {
	// Start deals a new performance, replacing any current one.
	Start(ctx context.Context, req StartRequest) (*StartResponse, error)

	// Snapshot returns a read-only copy of the current performance.
	Snapshot(ctx context.Context) (performance.Snapshot, error)

	// Play plays the technique at index (0-based) in the effective hand.
	// Unaffordable or out-of-range selections are rejected by guard before the engine runs.
	Play(ctx context.Context, index int) (performance.Snapshot, error)

	// Pass ends the current round.
	Pass(ctx context.Context) (performance.Snapshot, error)

	// Summary returns the journal aggregate for the current run.
	Summary(ctx context.Context) (*Summary, error)

	// Runs lists the outcome of every run this process has journaled, most recent first.
	Runs(ctx context.Context, limit int) ([]*RunOutcome, error)
}

// StartRequest contains parameters for starting a performance.
type StartRequest struct {
	// Seed fixes the shuffle and setback draws. Zero picks a random seed.
	Seed uint64
}

// StartResponse contains the result of starting a performance.
type StartResponse struct {
	RunID    string
	Seed     uint64
	Snapshot performance.Snapshot
}

// Summary is the end-of-run report.
type Summary struct {
	RunID  string
	Seed   uint64
	Status string
	Cheers int
	Plays  int
	Rounds []RoundSummary
}

// RoundSummary is one row of the report.
type RoundSummary struct {
	Round        int
	Plays        int
	CheersGained int
	EndAudience  int
}

// RunOutcome is the last journaled position of a run.
type RunOutcome struct {
	RunID  string
	Seed   uint64
	Status string
	Round  int
	Cheers int
}

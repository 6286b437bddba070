// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// JournalRepository defines the secondary port for the run journal.
// The journal only lives as long as the process.
type JournalRepository interface {
	// Append persists a journal entry.
	Append(ctx context.Context, record *JournalRecord) error

	// ListByRun retrieves all entries of a run in sequence order.
	ListByRun(ctx context.Context, runID string) ([]*JournalRecord, error)

	// RoundTotals aggregates a run's entries per round.
	RoundTotals(ctx context.Context, runID string) ([]*RoundTotal, error)

	// ListRuns returns the final entry of every run, most recent first.
	ListRuns(ctx context.Context, limit int) ([]*JournalRecord, error)
}

// JournalRecord represents a journal entry as stored in persistence.
type JournalRecord struct {
	RunID       string
	Seq         int
	Round       int
	Action      string // "start", "play", "pass"
	Technique   string // Empty string means null
	Status      string
	Cheers      int
	CheersDelta int
	Audience    int
	Momentum    int
	Stamina     int
	Detail      string
	CreatedAt   string
}

// RoundTotal is the per-round aggregate of a run.
type RoundTotal struct {
	Round        int
	Plays        int
	CheersGained int
	EndAudience  int
}

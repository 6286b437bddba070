// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/encore/internal/ports/secondary"
)

// JournalRepository implements secondary.JournalRepository with SQLite.
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository creates a new SQLite journal repository.
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

const journalColumns = "run_id, seq, round, action, technique, status, cheers, cheers_delta, audience, momentum, stamina, detail, created_at"

// Append persists a journal entry.
func (r *JournalRepository) Append(ctx context.Context, record *secondary.JournalRecord) error {
	var technique, detail sql.NullString
	if record.Technique != "" {
		technique = sql.NullString{String: record.Technique, Valid: true}
	}
	if record.Detail != "" {
		detail = sql.NullString{String: record.Detail, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO journal (run_id, seq, round, action, technique, status, cheers, cheers_delta, audience, momentum, stamina, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.RunID, record.Seq, record.Round, record.Action, technique, record.Status,
		record.Cheers, record.CheersDelta, record.Audience, record.Momentum, record.Stamina, detail,
	)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}

	return nil
}

// ListByRun retrieves all entries of a run in sequence order.
func (r *JournalRepository) ListByRun(ctx context.Context, runID string) ([]*secondary.JournalRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+journalColumns+" FROM journal WHERE run_id = ? ORDER BY seq ASC",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}
	defer rows.Close()

	return scanJournal(rows)
}

// RoundTotals aggregates a run's entries per round.
func (r *JournalRepository) RoundTotals(ctx context.Context, runID string) ([]*secondary.RoundTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT j.round,
			SUM(CASE WHEN j.action = 'play' THEN 1 ELSE 0 END),
			SUM(j.cheers_delta),
			(SELECT last.audience FROM journal last
				WHERE last.run_id = j.run_id AND last.round = j.round
				ORDER BY last.seq DESC LIMIT 1)
		FROM journal j
		WHERE j.run_id = ?
		GROUP BY j.round
		ORDER BY j.round ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to total rounds: %w", err)
	}
	defer rows.Close()

	var totals []*secondary.RoundTotal
	for rows.Next() {
		total := &secondary.RoundTotal{}
		if err := rows.Scan(&total.Round, &total.Plays, &total.CheersGained, &total.EndAudience); err != nil {
			return nil, fmt.Errorf("failed to scan round total: %w", err)
		}
		totals = append(totals, total)
	}

	return totals, rows.Err()
}

// ListRuns returns the final entry of every run, most recent first.
func (r *JournalRepository) ListRuns(ctx context.Context, limit int) ([]*secondary.JournalRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+journalColumns+` FROM journal j
		WHERE seq = (SELECT MAX(seq) FROM journal WHERE run_id = j.run_id)
		ORDER BY rowid DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	return scanJournal(rows)
}

func scanJournal(rows *sql.Rows) ([]*secondary.JournalRecord, error) {
	var records []*secondary.JournalRecord
	for rows.Next() {
		var (
			technique sql.NullString
			detail    sql.NullString
			createdAt time.Time
		)

		record := &secondary.JournalRecord{}
		err := rows.Scan(&record.RunID, &record.Seq, &record.Round, &record.Action, &technique, &record.Status,
			&record.Cheers, &record.CheersDelta, &record.Audience, &record.Momentum, &record.Stamina, &detail, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}

		record.Technique = technique.String
		record.Detail = detail.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		records = append(records, record)
	}

	return records, rows.Err()
}

// Ensure JournalRepository implements the interface
var _ secondary.JournalRepository = (*JournalRepository)(nil)

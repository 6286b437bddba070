package db

import "database/sql"

// SchemaSQL is the complete journal schema.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository tests use
// this schema via GetSchemaSQL() instead of hardcoding their own CREATE TABLE
// statements, so a column referenced by repository code but missing here fails
// immediately with "no such column".
const SchemaSQL = `
-- Journal (one row per performance transition)
CREATE TABLE IF NOT EXISTS journal (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	round INTEGER NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('start', 'play', 'pass')),
	technique TEXT,
	status TEXT NOT NULL CHECK(status IN ('playing', 'complete', 'failed')),
	cheers INTEGER NOT NULL,
	cheers_delta INTEGER NOT NULL DEFAULT 0,
	audience INTEGER NOT NULL,
	momentum INTEGER NOT NULL,
	stamina INTEGER NOT NULL,
	detail TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_journal_run_round ON journal(run_id, round);
`

// InitSchema creates the journal schema on db.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}

// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/encore/internal/adapters/sqlite"
	"github.com/example/encore/internal/db"
	"github.com/example/encore/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedEntry appends a journal entry and fails the test on error.
func seedEntry(t *testing.T, repo *sqlite.JournalRepository, record secondary.JournalRecord) {
	t.Helper()

	if record.Status == "" {
		record.Status = "playing"
	}
	if err := repo.Append(context.Background(), &record); err != nil {
		t.Fatalf("failed to seed journal entry: %v", err)
	}
}

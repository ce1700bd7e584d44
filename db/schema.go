// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Statements run one at a time and stick to SQL both SQLite and PostgreSQL accept.
var schema = []string{
	// Candidates; vote_count is derived state and must agree with the journal
	`CREATE TABLE IF NOT EXISTS candidate (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    party TEXT NOT NULL,
    vote_count INTEGER NOT NULL DEFAULT 0 CHECK (vote_count >= 0)
)`,

	// Voting window, at most one row
	`CREATE TABLE IF NOT EXISTS voting_window (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    starts_at BIGINT NOT NULL,
    ends_at BIGINT NOT NULL,
    CHECK (ends_at > starts_at)
)`,

	// Voters who have cast their single vote
	`CREATE TABLE IF NOT EXISTS voter (
    voter_id TEXT PRIMARY KEY
)`,

	// Append-only hash-chained journal
	`CREATE TABLE IF NOT EXISTS journal (
    seq BIGINT PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    kind TEXT NOT NULL,
    payload TEXT NOT NULL,
    prev_hash TEXT NOT NULL,
    hash TEXT NOT NULL UNIQUE
)`,
}

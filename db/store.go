// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/evote/journal"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/models"
)

// Store persists a ledger in SQL tables. Every mutation writes its state
// change and journal entry in one transaction.
type Store struct {
	db     *sql.DB
	dbType string
}

func NewStore(db *sql.DB, dbType string) *Store {
	return &Store{db: db, dbType: dbType}
}

func (s *Store) Load(ctx context.Context) (ledger.Snapshot, error) {
	var snap ledger.Snapshot

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, party, vote_count FROM candidate ORDER BY id`)
	if err != nil {
		return snap, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Party, &c.VoteCount); err != nil {
			return snap, fmt.Errorf("failed to scan candidate: %w", err)
		}
		snap.Candidates = append(snap.Candidates, c)
	}
	if err := rows.Err(); err != nil {
		return snap, err
	}

	var w models.VotingWindow
	err = s.db.QueryRowContext(ctx, `SELECT starts_at, ends_at FROM voting_window WHERE id = 1`).Scan(&w.Start, &w.End)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return snap, fmt.Errorf("failed to query voting window: %w", err)
	default:
		snap.Window = &w
	}

	voterRows, err := s.db.QueryContext(ctx, `SELECT voter_id FROM voter`)
	if err != nil {
		return snap, fmt.Errorf("failed to query voters: %w", err)
	}
	defer voterRows.Close()
	for voterRows.Next() {
		var id string
		if err := voterRows.Scan(&id); err != nil {
			return snap, fmt.Errorf("failed to scan voter: %w", err)
		}
		snap.Voters = append(snap.Voters, id)
	}
	if err := voterRows.Err(); err != nil {
		return snap, err
	}

	entryRows, err := s.db.QueryContext(ctx, `SELECT seq, id, kind, payload, prev_hash, hash FROM journal ORDER BY seq`)
	if err != nil {
		return snap, fmt.Errorf("failed to query journal: %w", err)
	}
	defer entryRows.Close()
	for entryRows.Next() {
		var e journal.Entry
		var payload string
		if err := entryRows.Scan(&e.Seq, &e.ID, &e.Kind, &payload, &e.PrevHash, &e.Hash); err != nil {
			return snap, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.Payload = []byte(payload)
		snap.Journal = append(snap.Journal, e)
	}
	return snap, entryRows.Err()
}

func (s *Store) AddCandidate(ctx context.Context, c models.Candidate, e journal.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.rebind(`
		INSERT INTO candidate (id, name, party, vote_count)
		VALUES (?, ?, ?, 0)
	`), c.ID, c.Name, c.Party)
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}

	if err := s.appendEntry(ctx, tx, e); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) SetWindow(ctx context.Context, w models.VotingWindow, e journal.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.rebind(`
		INSERT INTO voting_window (id, starts_at, ends_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET starts_at = excluded.starts_at, ends_at = excluded.ends_at
	`), w.Start, w.End)
	if err != nil {
		return fmt.Errorf("failed to save voting window: %w", err)
	}

	if err := s.appendEntry(ctx, tx, e); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) RecordVote(ctx context.Context, candidateID int, voterID string, e journal.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.rebind(`INSERT INTO voter (voter_id) VALUES (?)`), voterID)
	if err != nil {
		if isUniqueViolation(err) {
			return ledger.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to record voter: %w", err)
	}

	result, err := tx.ExecContext(ctx, s.rebind(`
		UPDATE candidate SET vote_count = vote_count + 1 WHERE id = ?
	`), candidateID)
	if err != nil {
		return fmt.Errorf("failed to update vote count: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to update vote count: %w", err)
	} else if n == 0 {
		return ledger.ErrNotFound
	}

	if err := s.appendEntry(ctx, tx, e); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) appendEntry(ctx context.Context, tx *sql.Tx, e journal.Entry) error {
	_, err := tx.ExecContext(ctx, s.rebind(`
		INSERT INTO journal (seq, id, kind, payload, prev_hash, hash)
		VALUES (?, ?, ?, ?, ?, ?)
	`), e.Seq, e.ID, e.Kind, string(e.Payload), e.PrevHash, e.Hash)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

// rebind rewrites ? placeholders as $1, $2, ... for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.dbType != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the SQL-backed
ledger store.

# Connecting

Open connects, pings and creates the schema:

	conn, err := db.Open("sqlite", "evote.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite uses modernc.org/sqlite (pure Go) with a single connection and a busy
timeout. PostgreSQL uses lib/pq.

# Schema Creation

CreateSchema is safe to call multiple times - uses IF NOT EXISTS for all
tables.

# Tables

  - candidate: id, name, party and the derived vote_count
  - voting_window: at most one row (id = 1)
  - voter: one row per identity that has voted
  - journal: append-only hash chain (seq, id, kind, payload, prev_hash, hash)

# Store

Store implements ledger.Store. Each mutation writes its table change and its
journal entry in one transaction, so either both land or neither does:

	store := db.NewStore(conn, cfg.DatabaseType)
	l, err := ledger.Open(ctx, ledger.Options{Store: store})

Queries are written with ? placeholders and rebound to $n for PostgreSQL.
A duplicate voter row is reported as ledger.ErrAlreadyVoted.
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the evote API server.

evote is a single-election voting ledger: an administrator registers
candidates and sets one voting window, each voter identity casts at most one
vote while the window is open, and every accepted mutation is appended to a
hash-chained journal that is replayed and checked on every start.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."
	go run . -t memory --require-admin-key --admin-salt secret --print-admin-key

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or memory (default: sqlite)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: evote.db)
  - ELECTION_ID (-e): Election identifier (default: default)
  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC
  - REQUIRE_ADMIN_KEY (--require-admin-key): Gate admin operations
  - LOCK_WINDOW_ON_VOTES (--lock-window): Freeze dates after the first vote
  - ENV_FILE (--env-file): .env file to read (default: .env)

When admin keys are enforced only a fingerprint of the key is logged. Pass
--print-admin-key to have the key itself written once to stderr.

# Architecture

  - ledger: Candidate registry, voting window, voter records and the orchestrator
  - journal: Hash-chained append-only log
  - db: SQL schema and the persistent ledger store
  - events: Websocket and SSE fan-out of ledger events
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - auth: Admin keys and the key authorizer
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres or memory (default: sqlite)
  - DatabaseURL: sqlite file or PostgreSQL connection string (default: evote.db for sqlite)
  - ElectionID: Identifier the admin key is derived from (default: default)
  - AdminKeySalt: Secret for admin key HMAC (required with RequireAdminKey)
  - RequireAdminKey: Gate candidate and date changes behind the admin key
  - PrintAdminKey: Write the admin key to stderr once at startup (flag only)
  - LockWindowOnVotes: Reject date changes after the first vote

# CLI Flags

	-p                   Server port
	-t                   Database type
	-d                   Database URL
	-e                   Election ID
	--admin-salt         Admin key salt
	--require-admin-key  Enforce admin keys
	--print-admin-key    Print the admin key to stderr
	--lock-window        Lock dates once votes exist
	--env-file           Path to a .env file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_TYPE        → -t
	DATABASE_URL         → -d
	ELECTION_ID          → -e
	ADMIN_KEY_SALT       → --admin-salt
	REQUIRE_ADMIN_KEY    → --require-admin-key
	LOCK_WINDOW_ON_VOTES → --lock-window
	ENV_FILE             → --env-file

CLI flags take precedence over environment variables, which take precedence
over the env file. The env file is parsed with godotenv and never modifies
the process environment. A missing default .env is ignored; a missing file
named explicitly is an error.
*/
package cliparse

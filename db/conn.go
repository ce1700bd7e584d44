// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const busyTimeoutMs = 5000

// Open connects to the database, verifies the connection and creates the
// schema. dbType is "sqlite" or "postgres".
func Open(dbType, url string) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch dbType {
	case "sqlite":
		conn, err = openSQLite(url)
	case "postgres":
		conn, err = sql.Open("postgres", url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if dbType == "sqlite" {
		if _, err := conn.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d", busyTimeoutMs)); err != nil {
			conn.Close()
			return nil, fmt.Errorf("set busy timeout: %w", err)
		}
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func openSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", fmt.Sprintf("file:%s", filepath.Clean(path)))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer; the ledger serializes mutations anyway.
	conn.SetMaxOpenConns(1)
	return conn, nil
}

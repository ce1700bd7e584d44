// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/evote/auth"
	"github.com/danielhkuo/evote/cliparse"
	"github.com/danielhkuo/evote/db"
	"github.com/danielhkuo/evote/ledger"
)

// FixedClock reports the same instant until Set moves it.
type FixedClock struct {
	t time.Time
}

func NewFixedClock(unix int64) *FixedClock {
	return &FixedClock{t: time.Unix(unix, 0)}
}

func (c *FixedClock) Now() time.Time { return c.t }

func (c *FixedClock) Set(unix int64) { c.t = time.Unix(unix, 0) }

// SetupTestDB opens a fresh SQLite database in a temp dir with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", filepath.Join(t.TempDir(), "evote.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: "sqlite",
		ElectionID:   "test-election",
		AdminKeySalt: "test-admin-salt",
	}
}

// AdminKey returns the admin key for cfg
func AdminKey(cfg cliparse.Config) string {
	return auth.GenerateAdminKey(cfg.ElectionID, cfg.AdminKeySalt)
}

// NewTestLedger opens a ledger on a fresh SQLite database. When
// cfg.RequireAdminKey is set, mutations need AdminKey(cfg).
func NewTestLedger(t *testing.T, cfg cliparse.Config, notifier ledger.Notifier) *ledger.Ledger {
	t.Helper()

	opts := ledger.Options{
		Store:             db.NewStore(SetupTestDB(t), "sqlite"),
		Notifier:          notifier,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		LockWindowOnVotes: cfg.LockWindowOnVotes,
	}
	if cfg.RequireAdminKey {
		opts.Authorizer = auth.KeyAuthorizer{ElectionID: cfg.ElectionID, Salt: cfg.AdminKeySalt}
	}

	l, err := ledger.Open(context.Background(), opts)
	if err != nil {
		t.Fatalf("Failed to open test ledger: %v", err)
	}
	return l
}

// SeedElection adds candidates and sets the window [start, end]
func SeedElection(t *testing.T, l *ledger.Ledger, cfg cliparse.Config, start, end int64, names ...string) {
	t.Helper()

	ctx := context.Background()
	caller := ledger.Caller{Identity: "test", Credential: AdminKey(cfg)}
	for _, name := range names {
		if _, err := l.AddCandidate(ctx, caller, name, "Party "+name); err != nil {
			t.Fatalf("Failed to add test candidate %s: %v", name, err)
		}
	}
	if err := l.SetDates(ctx, caller, start, end); err != nil {
		t.Fatalf("Failed to set test dates: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

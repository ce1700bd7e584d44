// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "DATABASE_TYPE", "ELECTION_ID", "ADMIN_KEY_SALT",
		"REQUIRE_ADMIN_KEY", "LOCK_WINDOW_ON_VOTES", "ENV_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" || cfg.DatabaseURL != "evote.db" {
		t.Errorf("expected sqlite evote.db, got %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.ElectionID != "default" {
		t.Errorf("expected election id default, got %s", cfg.ElectionID)
	}
	if cfg.RequireAdminKey || cfg.LockWindowOnVotes || cfg.PrintAdminKey {
		t.Error("expected permissive defaults")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("ELECTION_ID", "council-2025")
	t.Setenv("ADMIN_KEY_SALT", "test-salt")
	t.Setenv("REQUIRE_ADMIN_KEY", "true")
	t.Setenv("LOCK_WINDOW_ON_VOTES", "1")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected postgres://test, got %s", cfg.DatabaseURL)
	}
	if cfg.ElectionID != "council-2025" {
		t.Errorf("expected council-2025, got %s", cfg.ElectionID)
	}
	if !cfg.RequireAdminKey || !cfg.LockWindowOnVotes {
		t.Error("expected boolean env vars to be honored")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ELECTION_ID", "from-env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-e", "from-cli", "-admin-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.ElectionID != "from-cli" {
		t.Errorf("CLI should override env: expected from-cli, got %s", cfg.ElectionID)
	}
	if cfg.AdminKeySalt != "s1" {
		t.Errorf("expected salt s1, got %s", cfg.AdminKeySalt)
	}
}

func TestParseFlags_PrintAdminKey(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := ParseFlags([]string{"-require-admin-key", "-admin-salt", "s1", "-print-admin-key"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.RequireAdminKey || !cfg.PrintAdminKey {
		t.Errorf("expected admin key enforced and printed, got %+v", cfg)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	content := "PORT=7000\nELECTION_ID=from-file\nLOCK_WINDOW_ON_VOTES=true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ELECTION_ID", "from-env")

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 7000 {
		t.Errorf("expected port from env file 7000, got %d", cfg.Port)
	}
	// Process env wins over the file
	if cfg.ElectionID != "from-env" {
		t.Errorf("expected from-env, got %s", cfg.ElectionID)
	}
	if !cfg.LockWindowOnVotes {
		t.Error("expected LOCK_WINDOW_ON_VOTES from env file")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"invalid port env", nil, map[string]string{"PORT": "abc"}},
		{"unknown database type", []string{"-t", "mysql"}, nil},
		{"postgres without url", []string{"-t", "postgres"}, nil},
		{"admin key without salt", []string{"-require-admin-key"}, nil},
		{"missing explicit env file", []string{"-env-file", "/nonexistent/evote.env"}, nil},
		{"unknown flag", []string{"-x"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

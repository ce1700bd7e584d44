// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	ElectionID        string
	AdminKeySalt      string
	RequireAdminKey   bool
	PrintAdminKey     bool
	LockWindowOnVotes bool
}

// ParseFlags reads flags, then the environment, then the env file.
// Earlier sources win.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("evote", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or memory)")
	fs.StringVar(&cfg.ElectionID, "e", "", "Election identifier")
	fs.StringVar(&envFile, "env-file", "", "Path to a .env file")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.BoolVar(&cfg.RequireAdminKey, "require-admin-key", false, "Require the admin key for candidate and date changes")
	fs.BoolVar(&cfg.PrintAdminKey, "print-admin-key", false, "Print the admin key to stderr at startup")
	fs.BoolVar(&cfg.LockWindowOnVotes, "lock-window", false, "Reject date changes once votes exist")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	explicitEnvFile := envFile != "" || os.Getenv("ENV_FILE") != ""
	if envFile == "" {
		envFile = os.Getenv("ENV_FILE")
	}
	if envFile == "" {
		envFile = defaultEnvFile
	}
	fileEnv, err := readEnvFile(envFile, explicitEnvFile)
	if err != nil {
		return Config{}, err
	}
	getenv := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileEnv[key]
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	switch cfg.DatabaseType {
	case "sqlite", "postgres", "memory":
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.DatabaseType {
		case "sqlite":
			cfg.DatabaseURL = "evote.db"
		case "postgres":
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	}

	if cfg.ElectionID == "" {
		cfg.ElectionID = getenv("ELECTION_ID")
	}
	if cfg.ElectionID == "" {
		cfg.ElectionID = "default"
	}

	if !cfg.RequireAdminKey {
		cfg.RequireAdminKey = parseBool(getenv("REQUIRE_ADMIN_KEY"))
	}
	if !cfg.LockWindowOnVotes {
		cfg.LockWindowOnVotes = parseBool(getenv("LOCK_WINDOW_ON_VOTES"))
	}

	// Secrets - required only when admin keys are enforced
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = getenv("ADMIN_KEY_SALT")
	}
	if cfg.RequireAdminKey && cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required when admin keys are enforced")
	}

	return cfg, nil
}

// readEnvFile loads key/value pairs without touching the process
// environment. A missing default file is not an error.
func readEnvFile(path string, required bool) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return values, nil
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

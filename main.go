// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/evote/auth"
	"github.com/danielhkuo/evote/cliparse"
	"github.com/danielhkuo/evote/db"
	"github.com/danielhkuo/evote/events"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/middleware"
	"github.com/danielhkuo/evote/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger := slog.Default().With("election_id", cfg.ElectionID)

	// Choose storage
	var store ledger.Store
	if cfg.DatabaseType == "memory" {
		store = ledger.NewMemoryStore()
		logger.Warn("using in-memory storage; state is lost on exit")
	} else {
		dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			logger.Error("database setup failed", "type", cfg.DatabaseType, "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()
		store = db.NewStore(dbConn, cfg.DatabaseType)
		logger.Info("Database schema ready", "type", cfg.DatabaseType)
	}

	hub := events.NewHub(logger)

	opts := ledger.Options{
		Store:             store,
		Notifier:          hub,
		Logger:            logger,
		LockWindowOnVotes: cfg.LockWindowOnVotes,
	}
	if cfg.RequireAdminKey {
		opts.Authorizer = auth.KeyAuthorizer{ElectionID: cfg.ElectionID, Salt: cfg.AdminKeySalt}
		announceAdminKey(logger, os.Stderr, cfg)
	}

	// Replays and verifies the journal; refuses to start on tampered state
	l, err := ledger.Open(context.Background(), opts)
	if err != nil {
		logger.Error("failed to open ledger", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(l, hub, ledger.SystemClock{}, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
		}
	}()

	// Start server
	logger.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("Server closed", "error", err)
	} else {
		logger.Info("Server closed", "error", err)
	}
}

// announceAdminKey logs the key's fingerprint. The key itself goes to out
// only when the operator asked for it.
func announceAdminKey(logger *slog.Logger, out io.Writer, cfg cliparse.Config) {
	key := auth.GenerateAdminKey(cfg.ElectionID, cfg.AdminKeySalt)
	logger.Info("admin key enforced", "admin_key_fingerprint", auth.KeyFingerprint(key))
	if cfg.PrintAdminKey {
		fmt.Fprintf(out, "admin key for election %s: %s\n", cfg.ElectionID, key)
	}
}

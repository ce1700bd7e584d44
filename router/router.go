// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/evote/cliparse"
	"github.com/danielhkuo/evote/events"
	"github.com/danielhkuo/evote/handlers"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/middleware"
)

func NewRouter(l *ledger.Ledger, hub *events.Hub, clock ledger.Clock, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	candidateHandler := handlers.NewCandidateHandler(l)
	datesHandler := handlers.NewDatesHandler(l, clock)
	votingHandler := handlers.NewVotingHandler(l, clock, cfg)
	journalHandler := handlers.NewJournalHandler(l)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Candidates (mutations are admin operations)
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.AddCandidate))
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.GetCandidates))
	mux.HandleFunc("GET /candidates/count", middleware.WithLogging(candidateHandler.GetCount))
	mux.HandleFunc("GET /candidates/{id}", middleware.WithLogging(candidateHandler.GetCandidate))

	// Voting window
	mux.HandleFunc("POST /dates", middleware.WithLogging(datesHandler.SetDates))
	mux.HandleFunc("GET /dates", middleware.WithLogging(datesHandler.GetDates))

	// Voting operations (public, identified by X-Voter-ID)
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /votes/me", middleware.WithLogging(votingHandler.CheckVote))

	// Audit
	mux.HandleFunc("GET /journal", middleware.WithLogging(journalHandler.GetJournal))
	mux.HandleFunc("GET /journal/verify", middleware.WithLogging(journalHandler.VerifyJournal))

	// Live updates; not wrapped since they need Hijacker and Flusher
	mux.HandleFunc("GET /events", hub.ServeWS)
	mux.HandleFunc("GET /events/stream", hub.ServeSSE)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("evote API v1"))
	})

	return mux
}

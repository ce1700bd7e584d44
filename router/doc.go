// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the evote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(l, hub, ledger.SystemClock{}, cfg)

# Endpoints

Health:

	GET /health

Candidates (POST requires X-Admin-Key when enforced):

	POST /candidates       - Register candidate
	GET  /candidates       - List candidates with tallies
	GET  /candidates/count - Number of candidates
	GET  /candidates/{id}  - One candidate

Voting window (POST requires X-Admin-Key when enforced):

	POST /dates - Replace the window
	GET  /dates - Current window, relative times and open state

Voting (requires X-Voter-ID):

	POST /votes    - Cast the single vote
	GET  /votes/me - Whether this voter has voted

Audit:

	GET /journal        - Full hash-chained journal (admin)
	GET /journal/verify - Chain head, length and validity

Live updates:

	GET /events        - Websocket stream of ledger events
	GET /events/stream - Same stream as server-sent events

# Handler Initialization

The router creates handler instances with dependency injection:

	candidateHandler := handlers.NewCandidateHandler(l)
	datesHandler := handlers.NewDatesHandler(l, clock)
	votingHandler := handlers.NewVotingHandler(l, clock, cfg)
	journalHandler := handlers.NewJournalHandler(l)

The clock is the only source of "now" for voting; tests pass a fixed one.
*/
package router

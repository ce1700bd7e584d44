// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the evote API.

# Handler Types

Each handler is a struct holding the ledger and whatever else it needs:

  - CandidateHandler: Candidate registration and lookup
  - DatesHandler: The voting window
  - VotingHandler: Casting and checking votes
  - JournalHandler: Journal export and chain verification

Handlers are created via constructor functions:

	candidateHandler := handlers.NewCandidateHandler(l)
	votingHandler := handlers.NewVotingHandler(l, ledger.SystemClock{}, cfg)

# Candidates and Dates

	POST /candidates       → AddCandidate (returns candidate_id)
	GET  /candidates       → GetCandidates
	GET  /candidates/count → GetCount
	GET  /candidates/{id}  → GetCandidate
	POST /dates            → SetDates
	GET  /dates            → GetDates (with humanized relative times)

Mutations send the X-Admin-Key header. It is checked only when the server
runs with admin keys enforced.

# Voting

	POST /votes    → CastVote
	GET  /votes/me → CheckVote

The voter identity comes from the X-Voter-ID header; a missing header is 401.
The current time comes from the handler's clock, never from the request.

# Journal

	GET /journal        → GetJournal (admin)
	GET /journal/verify → VerifyJournal

# Errors

Ledger errors map to status codes in writeLedgerError:

	400  invalid input, invalid range, malformed JSON
	401  unauthorized, missing voter id
	404  unknown candidate, dates not set
	409  voting closed, already voted, window locked
	500  anything else
*/
package handlers

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddCandidateRequest: name, party
  - SetDatesRequest: start, end (seconds since epoch)
  - VoteRequest: candidate_id

# Response Types

Types for JSON responses:

  - AddCandidateResponse: candidate_id
  - CandidatesResponse: count, candidates
  - CountResponse: count
  - DatesResponse: start, end, starts, ends, open
  - VoteResponse: candidate_id, message
  - CheckVoteResponse: has_voted
  - JournalResponse / VerifyResponse: journal listing and chain status
  - ErrorResponse: error, message

# Domain Types

  - Candidate: id, name, party, vote_count
  - VotingWindow: inclusive start/end in Unix seconds
  - LedgerEvent: pushed to /events subscribers after each commit

# Event Types

	EventCandidateAdded = "candidate.added"
	EventWindowSet      = "window.set"
	EventVoteCast       = "vote.cast"

The same strings are used as journal entry kinds.
*/
package models

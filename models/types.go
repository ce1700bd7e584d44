// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Ledger event types
const (
	EventCandidateAdded = "candidate.added"
	EventWindowSet      = "window.set"
	EventVoteCast       = "vote.cast"
)

// Domain types

type Candidate struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Party     string `json:"party"`
	VoteCount int    `json:"vote_count"`
}

// VotingWindow is the interval, in seconds since epoch, during which votes
// are accepted. Both bounds are inclusive.
type VotingWindow struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// LedgerEvent is published after a mutation commits.
// Voter identities are never included.
type LedgerEvent struct {
	Type      string        `json:"type"`
	Seq       int64         `json:"seq"`
	Candidate *Candidate    `json:"candidate,omitempty"`
	Window    *VotingWindow `json:"window,omitempty"`
}

// Request types

type AddCandidateRequest struct {
	Name  string `json:"name"`
	Party string `json:"party"`
}

type SetDatesRequest struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

type VoteRequest struct {
	CandidateID int `json:"candidate_id"`
}

// Response types

type AddCandidateResponse struct {
	CandidateID int `json:"candidate_id"`
}

type CandidatesResponse struct {
	Count      int         `json:"count"`
	Candidates []Candidate `json:"candidates"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type DatesResponse struct {
	Start  int64  `json:"start"`
	End    int64  `json:"end"`
	Starts string `json:"starts"` // relative to now, e.g. "3 hours from now"
	Ends   string `json:"ends"`
	Open   bool   `json:"open"`
}

type VoteResponse struct {
	CandidateID int    `json:"candidate_id"`
	Message     string `json:"message"`
}

type CheckVoteResponse struct {
	HasVoted bool `json:"has_voted"`
}

type JournalEntry struct {
	Seq      int64  `json:"seq"`
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Payload  string `json:"payload"`
	PrevHash string `json:"prev_hash"`
	Hash     string `json:"hash"`
}

type JournalResponse struct {
	Length  int            `json:"length"`
	Head    string         `json:"head"`
	Entries []JournalEntry `json:"entries"`
}

type VerifyResponse struct {
	Valid   bool   `json:"valid"`
	Length  int    `json:"length"`
	Head    string `json:"head"`
	Message string `json:"message,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/evote/models"
)

// CandidateRegistry holds candidates in id order. Candidate i lives at
// index i-1. It is not safe for concurrent use; Ledger serializes access.
type CandidateRegistry struct {
	candidates []models.Candidate
}

// Add appends a candidate with the next sequential id and returns that id.
// Duplicate names are allowed; blank or non-UTF-8 fields are not.
func (r *CandidateRegistry) Add(name, party string) (int, error) {
	name = strings.TrimSpace(name)
	party = strings.TrimSpace(party)
	if name == "" || party == "" || !utf8.ValidString(name) || !utf8.ValidString(party) {
		return 0, ErrInvalidInput
	}

	id := len(r.candidates) + 1
	r.candidates = append(r.candidates, models.Candidate{
		ID:    id,
		Name:  name,
		Party: party,
	})
	return id, nil
}

// Get returns a copy of candidate id.
func (r *CandidateRegistry) Get(id int) (models.Candidate, error) {
	if !r.valid(id) {
		return models.Candidate{}, ErrNotFound
	}
	return r.candidates[id-1], nil
}

func (r *CandidateRegistry) Count() int {
	return len(r.candidates)
}

// IncrementVote adds exactly one vote to candidate id.
func (r *CandidateRegistry) IncrementVote(id int) error {
	if !r.valid(id) {
		return ErrNotFound
	}
	r.candidates[id-1].VoteCount++
	return nil
}

// All returns candidates 1..Count in ascending id order.
func (r *CandidateRegistry) All() []models.Candidate {
	out := make([]models.Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

func (r *CandidateRegistry) valid(id int) bool {
	return id >= 1 && id <= len(r.candidates)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"sync"

	"github.com/danielhkuo/evote/journal"
	"github.com/danielhkuo/evote/models"
)

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	mu sync.RWMutex

	candidates []models.Candidate
	window     *models.VotingWindow
	voters     map[string]bool
	entries    []journal.Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		voters: make(map[string]bool),
	}
}

func (s *MemoryStore) Load(_ context.Context) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Candidates: append([]models.Candidate(nil), s.candidates...),
		Journal:    append([]journal.Entry(nil), s.entries...),
	}
	if s.window != nil {
		w := *s.window
		snap.Window = &w
	}
	for id := range s.voters {
		snap.Voters = append(snap.Voters, id)
	}
	return snap, nil
}

func (s *MemoryStore) AddCandidate(_ context.Context, c models.Candidate, e journal.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.candidates = append(s.candidates, c)
	s.entries = append(s.entries, e)
	return nil
}

func (s *MemoryStore) SetWindow(_ context.Context, w models.VotingWindow, e journal.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.window = &w
	s.entries = append(s.entries, e)
	return nil
}

func (s *MemoryStore) RecordVote(_ context.Context, candidateID int, voterID string, e journal.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.voters[voterID] {
		return ErrAlreadyVoted
	}
	if candidateID < 1 || candidateID > len(s.candidates) {
		return ErrNotFound
	}
	s.candidates[candidateID-1].VoteCount++
	s.voters[voterID] = true
	s.entries = append(s.entries, e)
	return nil
}

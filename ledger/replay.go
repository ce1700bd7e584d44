// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"
	"slices"

	"github.com/danielhkuo/evote/journal"
	"github.com/danielhkuo/evote/models"
)

// State is the result of replaying a journal.
type State struct {
	registry CandidateRegistry
	window   VotingWindow
	voters   VoterLedger
}

func (s *State) Candidates() []models.Candidate { return s.registry.All() }
func (s *State) Voters() []string               { return s.voters.IDs() }

func (s *State) Window() (models.VotingWindow, bool) {
	w, err := s.window.GetDates()
	return w, err == nil
}

// Replay rebuilds ledger state by applying entries in order through the
// same components the ledger uses. Any entry that cannot be applied is
// reported as ErrTampered.
func Replay(entries []journal.Entry) (*State, error) {
	s := &State{}
	for _, e := range entries {
		if err := s.apply(e); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s): %w", ErrTampered, e.Seq, e.Kind, err)
		}
	}
	return s, nil
}

func (s *State) apply(e journal.Entry) error {
	switch e.Kind {
	case models.EventCandidateAdded:
		var p candidateAdded
		if err := e.Decode(&p); err != nil {
			return err
		}
		id, err := s.registry.Add(p.Name, p.Party)
		if err != nil {
			return err
		}
		if id != p.ID {
			return fmt.Errorf("candidate id %d recorded as %d", id, p.ID)
		}

	case models.EventWindowSet:
		var p windowSet
		if err := e.Decode(&p); err != nil {
			return err
		}
		return s.window.SetDates(p.Start, p.End)

	case models.EventVoteCast:
		var p voteCast
		if err := e.Decode(&p); err != nil {
			return err
		}
		if !s.window.IsOpen(p.At) {
			return ErrVotingClosed
		}
		if s.voters.HasVoted(p.VoterID) {
			return ErrAlreadyVoted
		}
		if err := s.registry.IncrementVote(p.CandidateID); err != nil {
			return err
		}
		return s.voters.MarkVoted(p.VoterID)

	default:
		return fmt.Errorf("unknown entry kind %q", e.Kind)
	}
	return nil
}

// matches compares replayed state against what the store holds.
func (s *State) matches(snap Snapshot) error {
	if !slices.Equal(s.registry.All(), snap.Candidates) {
		return fmt.Errorf("%w: candidates differ", ErrTampered)
	}

	w, set := s.Window()
	switch {
	case set != (snap.Window != nil):
		return fmt.Errorf("%w: voting window presence differs", ErrTampered)
	case set && w != *snap.Window:
		return fmt.Errorf("%w: voting window differs", ErrTampered)
	}

	stored := slices.Clone(snap.Voters)
	slices.Sort(stored)
	if !slices.Equal(s.voters.IDs(), stored) {
		return fmt.Errorf("%w: voter records differ", ErrTampered)
	}
	return nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"errors"
	"testing"
)

func TestCandidateRegistry_Add(t *testing.T) {
	tests := []struct {
		name    string
		cName   string
		party   string
		wantErr error
	}{
		{"valid", "Alice", "Red", nil},
		{"empty name", "", "Red", ErrInvalidInput},
		{"empty party", "Alice", "", ErrInvalidInput},
		{"whitespace name", "   ", "Red", ErrInvalidInput},
		{"invalid utf-8 party", "Alice", "Red\xff", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r CandidateRegistry
			id, err := r.Add(tt.cName, tt.party)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if r.Count() != 0 {
					t.Errorf("Count() = %d after failed Add, want 0", r.Count())
				}
				return
			}
			if id != 1 {
				t.Errorf("Add() id = %d, want 1", id)
			}
		})
	}
}

func TestCandidateRegistry_SequentialIDs(t *testing.T) {
	var r CandidateRegistry
	names := []string{"Alice", "Bob", "Alice", "Carol"} // duplicates allowed

	for i, name := range names {
		id, err := r.Add(name, "Party")
		if err != nil {
			t.Fatalf("Add(%s) error = %v", name, err)
		}
		if id != i+1 {
			t.Errorf("Add(%s) id = %d, want %d", name, id, i+1)
		}
	}

	if r.Count() != len(names) {
		t.Errorf("Count() = %d, want %d", r.Count(), len(names))
	}

	for i := 1; i <= r.Count(); i++ {
		c, err := r.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) error = %v", i, err)
		}
		if c.ID != i {
			t.Errorf("Get(%d).ID = %d", i, c.ID)
		}
		if c.Name != names[i-1] {
			t.Errorf("Get(%d).Name = %s, want %s", i, c.Name, names[i-1])
		}
		if c.VoteCount != 0 {
			t.Errorf("Get(%d).VoteCount = %d, want 0", i, c.VoteCount)
		}
	}
}

func TestCandidateRegistry_GetOutOfRange(t *testing.T) {
	var r CandidateRegistry
	r.Add("Alice", "Red")

	for _, id := range []int{-1, 0, 2, 100} {
		if _, err := r.Get(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%d) error = %v, want ErrNotFound", id, err)
		}
		if err := r.IncrementVote(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("IncrementVote(%d) error = %v, want ErrNotFound", id, err)
		}
	}
}

func TestCandidateRegistry_IncrementVote(t *testing.T) {
	var r CandidateRegistry
	r.Add("Alice", "Red")
	r.Add("Bob", "Blue")

	for i := 0; i < 3; i++ {
		if err := r.IncrementVote(2); err != nil {
			t.Fatalf("IncrementVote() error = %v", err)
		}
	}

	a, _ := r.Get(1)
	b, _ := r.Get(2)
	if a.VoteCount != 0 || b.VoteCount != 3 {
		t.Errorf("vote counts = (%d, %d), want (0, 3)", a.VoteCount, b.VoteCount)
	}
}

func TestCandidateRegistry_AllIsCopy(t *testing.T) {
	var r CandidateRegistry
	r.Add("Alice", "Red")

	all := r.All()
	all[0].VoteCount = 99

	c, _ := r.Get(1)
	if c.VoteCount != 0 {
		t.Error("All() exposed internal storage")
	}
}

func TestVotingWindow(t *testing.T) {
	var w VotingWindow

	if _, err := w.GetDates(); !errors.Is(err, ErrUnset) {
		t.Errorf("GetDates() on unset window error = %v, want ErrUnset", err)
	}
	if w.IsOpen(0) {
		t.Error("unset window reported open")
	}

	if err := w.SetDates(200, 100); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("SetDates(200, 100) error = %v, want ErrInvalidRange", err)
	}
	if err := w.SetDates(100, 100); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("SetDates(100, 100) error = %v, want ErrInvalidRange", err)
	}
	if _, err := w.GetDates(); !errors.Is(err, ErrUnset) {
		t.Error("failed SetDates changed unset state")
	}

	if err := w.SetDates(100, 200); err != nil {
		t.Fatalf("SetDates(100, 200) error = %v", err)
	}

	tests := []struct {
		now  int64
		open bool
	}{
		{99, false},
		{100, true},
		{150, true},
		{200, true},
		{201, false},
	}
	for _, tt := range tests {
		if got := w.IsOpen(tt.now); got != tt.open {
			t.Errorf("IsOpen(%d) = %v, want %v", tt.now, got, tt.open)
		}
	}

	// Invalid replacement keeps the previous window
	if err := w.SetDates(500, 400); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("SetDates(500, 400) error = %v", err)
	}
	got, err := w.GetDates()
	if err != nil || got.Start != 100 || got.End != 200 {
		t.Errorf("GetDates() = %+v, %v; want {100 200}", got, err)
	}

	// Valid replacement is wholesale
	w.SetDates(300, 400)
	got, _ = w.GetDates()
	if got.Start != 300 || got.End != 400 {
		t.Errorf("GetDates() = %+v, want {300 400}", got)
	}
	if w.IsOpen(150) {
		t.Error("old window still open after replacement")
	}
}

func TestVoterLedger(t *testing.T) {
	var v VoterLedger

	if v.HasVoted("v1") {
		t.Error("unseen voter reported as voted")
	}
	if err := v.MarkVoted("v1"); err != nil {
		t.Fatalf("MarkVoted() error = %v", err)
	}
	if !v.HasVoted("v1") {
		t.Error("HasVoted() = false after MarkVoted")
	}
	if err := v.MarkVoted("v1"); !errors.Is(err, ErrAlreadyVoted) {
		t.Errorf("second MarkVoted() error = %v, want ErrAlreadyVoted", err)
	}
	if v.HasVoted("v2") {
		t.Error("v2 reported as voted")
	}

	v.MarkVoted("a")
	ids := v.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "v1" {
		t.Errorf("IDs() = %v, want [a v1]", ids)
	}
}

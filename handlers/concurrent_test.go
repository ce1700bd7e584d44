// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/evote/models"
	"github.com/danielhkuo/evote/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes from different voters
// are all counted exactly once
func TestConcurrentVotes(t *testing.T) {
	cfg := testutil.GetTestConfig()
	l := testutil.NewTestLedger(t, cfg, nil)
	testutil.SeedElection(t, l, cfg, 100, 200, "Alice", "Bob", "Carol")
	votingHandler := NewVotingHandler(l, testutil.NewFixedClock(150), cfg)

	numVoters := 30
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/votes",
				models.VoteRequest{CandidateID: voterIdx%3 + 1},
				map[string]string{"X-Voter-ID": fmt.Sprintf("voter-%d", voterIdx)},
			)
			w := httptest.NewRecorder()

			votingHandler.CastVote(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			} else {
				t.Errorf("Voter %d failed: %d - %s", voterIdx, w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if successCount.Load() != int32(numVoters) {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	total := 0
	for _, c := range l.GetCandidates() {
		if c.VoteCount != numVoters/3 {
			t.Errorf("Candidate %d: expected %d votes, got %d", c.ID, numVoters/3, c.VoteCount)
		}
		total += c.VoteCount
	}
	if total != numVoters {
		t.Errorf("Expected %d total votes, got %d", numVoters, total)
	}
}

// TestConcurrentSameVoter verifies that when one voter submits many votes at
// once, exactly one is counted
func TestConcurrentSameVoter(t *testing.T) {
	cfg := testutil.GetTestConfig()
	l := testutil.NewTestLedger(t, cfg, nil)
	testutil.SeedElection(t, l, cfg, 100, 200, "Alice", "Bob")
	votingHandler := NewVotingHandler(l, testutil.NewFixedClock(150), cfg)

	numAttempts := 10
	var successCount, conflictCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(attempt int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/votes",
				models.VoteRequest{CandidateID: attempt%2 + 1},
				map[string]string{"X-Voter-ID": "RaceConditionVoter"},
			)
			w := httptest.NewRecorder()

			votingHandler.CastVote(w, req)

			switch w.Code {
			case http.StatusCreated:
				successCount.Add(1)
			case http.StatusConflict:
				conflictCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	// Exactly one should succeed
	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful vote, got %d", successCount.Load())
	}
	if conflictCount.Load() != int32(numAttempts-1) {
		t.Errorf("Expected %d conflicts, got %d", numAttempts-1, conflictCount.Load())
	}

	a, _ := l.GetCandidate(1)
	b, _ := l.GetCandidate(2)
	if a.VoteCount+b.VoteCount != 1 {
		t.Errorf("Expected 1 total vote, got %d", a.VoteCount+b.VoteCount)
	}
}

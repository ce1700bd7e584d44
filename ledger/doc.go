// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the election state machine.

# Components

  - CandidateRegistry: candidates with sequential ids starting at 1
  - VotingWindow: the single inclusive [start, end] interval for votes
  - VoterLedger: which identities have voted
  - Ledger: owns the three, serializes mutations and persists them

# Usage

	l, err := ledger.Open(ctx, ledger.Options{Store: store})

	id, err := l.AddCandidate(ctx, caller, "Alice", "Red")
	err = l.SetDates(ctx, caller, 100, 200)
	err = l.Vote(ctx, id, "voter-1", 150)
	voted := l.CheckVote("voter-1")

The caller supplies the voter identity and the current time; the ledger never
reads the clock.

# Errors

Failures are sentinel errors compared with errors.Is:

	ErrInvalidInput  empty candidate name or party, or text that is not valid UTF-8
	ErrInvalidRange  end <= start
	ErrUnset         dates never set
	ErrNotFound      unknown candidate id
	ErrVotingClosed  vote outside the window
	ErrAlreadyVoted  second vote from the same identity
	ErrUnauthorized  Authorizer denied a mutation
	ErrWindowLocked  SetDates after votes with LockWindowOnVotes
	ErrTampered      stored state disagrees with the journal

A failed call leaves no partial state behind.

# Persistence

Each mutation appends a journal.Entry and hands it to the Store together with
the state change. Open replays the journal and refuses to start if the
replayed state and the stored tables differ.
*/
package ledger

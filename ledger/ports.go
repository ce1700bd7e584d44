// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"time"

	"github.com/danielhkuo/evote/journal"
	"github.com/danielhkuo/evote/models"
)

// Snapshot is the full persisted state of one election.
type Snapshot struct {
	Candidates []models.Candidate
	Window     *models.VotingWindow
	Voters     []string
	Journal    []journal.Entry
}

// Store is the durable substrate. Each mutating method must persist the
// state change and its journal entry atomically: both or neither.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	AddCandidate(ctx context.Context, c models.Candidate, e journal.Entry) error
	SetWindow(ctx context.Context, w models.VotingWindow, e journal.Entry) error
	// RecordVote increments the candidate's count and marks the voter.
	// It returns ErrAlreadyVoted or ErrNotFound without writing anything.
	RecordVote(ctx context.Context, candidateID int, voterID string, e journal.Entry) error
}

// Action names an operation that requires authorization.
type Action string

const (
	ActionAddCandidate Action = "add_candidate"
	ActionSetDates     Action = "set_dates"
	ActionReadJournal  Action = "read_journal"
)

// Caller is who is invoking an authorized operation, as established by the
// transport. Credential is opaque to the ledger.
type Caller struct {
	Identity   string
	Credential string
}

// Authorizer decides whether caller may perform action. It returns
// ErrUnauthorized (possibly wrapped) to deny.
type Authorizer interface {
	Authorize(ctx context.Context, action Action, caller Caller) error
}

// AllowAll permits every caller.
type AllowAll struct{}

func (AllowAll) Authorize(context.Context, Action, Caller) error { return nil }

// Clock supplies the current time to callers of Vote. The ledger itself
// never reads it.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Notifier receives events after mutations commit.
type Notifier interface {
	Publish(event models.LedgerEvent)
}

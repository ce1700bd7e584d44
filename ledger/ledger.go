// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/danielhkuo/evote/journal"
	"github.com/danielhkuo/evote/models"
)

// Options configures a Ledger. Every field is optional.
type Options struct {
	Store      Store      // default: NewMemoryStore()
	Authorizer Authorizer // default: AllowAll
	Notifier   Notifier
	Logger     *slog.Logger

	// LockWindowOnVotes rejects SetDates with ErrWindowLocked once any
	// vote has been cast.
	LockWindowOnVotes bool
}

// Ledger is one election: candidates, the voting window and voter records.
// All mutations go through a single lock and are persisted to the Store
// before they become visible.
type Ledger struct {
	mu sync.RWMutex

	registry CandidateRegistry
	window   VotingWindow
	voters   VoterLedger
	entries  []journal.Entry

	store      Store
	authz      Authorizer
	notifier   Notifier
	logger     *slog.Logger
	lockWindow bool
}

// journal payloads
type candidateAdded struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party"`
}

type windowSet struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

type voteCast struct {
	CandidateID int    `json:"candidate_id"`
	VoterID     string `json:"voter_id"`
	At          int64  `json:"at"`
}

// New returns an empty ledger. Use Open to resume from a Store that may
// already hold state.
func New(opts Options) *Ledger {
	l := &Ledger{
		store:      opts.Store,
		authz:      opts.Authorizer,
		notifier:   opts.Notifier,
		logger:     opts.Logger,
		lockWindow: opts.LockWindowOnVotes,
	}
	if l.store == nil {
		l.store = NewMemoryStore()
	}
	if l.authz == nil {
		l.authz = AllowAll{}
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Open loads persisted state, verifies the journal chain and checks that
// replaying the journal reproduces the stored state exactly.
func Open(ctx context.Context, opts Options) (*Ledger, error) {
	l := New(opts)

	snap, err := l.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	if err := journal.Verify(snap.Journal); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTampered, err)
	}

	replayed, err := Replay(snap.Journal)
	if err != nil {
		return nil, err
	}
	if err := replayed.matches(snap); err != nil {
		return nil, err
	}

	l.registry = replayed.registry
	l.window = replayed.window
	l.voters = replayed.voters
	l.entries = snap.Journal

	l.logger.Info("ledger opened",
		"candidates", l.registry.Count(),
		"voters", l.voters.Count(),
		"journal_length", len(l.entries),
	)
	return l, nil
}

// AddCandidate registers a candidate and returns its id.
func (l *Ledger) AddCandidate(ctx context.Context, caller Caller, name, party string) (int, error) {
	if err := l.authz.Authorize(ctx, ActionAddCandidate, caller); err != nil {
		l.logger.Warn("add candidate denied", "caller", caller.Identity, "error", err)
		return 0, err
	}

	name = strings.TrimSpace(name)
	party = strings.TrimSpace(party)
	if name == "" || party == "" {
		return 0, fmt.Errorf("%w: name and party are required", ErrInvalidInput)
	}
	// Journal payloads are JSON; invalid UTF-8 would not survive replay.
	if !utf8.ValidString(name) || !utf8.ValidString(party) {
		return 0, fmt.Errorf("%w: name and party must be valid UTF-8", ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	c := models.Candidate{ID: l.registry.Count() + 1, Name: name, Party: party}
	entry, err := l.next(models.EventCandidateAdded, candidateAdded{ID: c.ID, Name: name, Party: party})
	if err != nil {
		return 0, err
	}
	if err := l.store.AddCandidate(ctx, c, entry); err != nil {
		l.logger.Error("failed to persist candidate", "error", err)
		return 0, fmt.Errorf("failed to persist candidate: %w", err)
	}

	id, err := l.registry.Add(name, party)
	if err != nil {
		return 0, err
	}
	l.entries = append(l.entries, entry)

	l.logger.Info("candidate added", "candidate_id", id, "party", party)
	l.publish(models.LedgerEvent{Type: models.EventCandidateAdded, Seq: entry.Seq, Candidate: &c})
	return id, nil
}

// SetDates replaces the voting window.
func (l *Ledger) SetDates(ctx context.Context, caller Caller, start, end int64) error {
	if err := l.authz.Authorize(ctx, ActionSetDates, caller); err != nil {
		l.logger.Warn("set dates denied", "caller", caller.Identity, "error", err)
		return err
	}
	if end <= start {
		return ErrInvalidRange
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.lockWindow && l.voters.Count() > 0 {
		return ErrWindowLocked
	}

	w := models.VotingWindow{Start: start, End: end}
	entry, err := l.next(models.EventWindowSet, windowSet{Start: start, End: end})
	if err != nil {
		return err
	}
	if err := l.store.SetWindow(ctx, w, entry); err != nil {
		l.logger.Error("failed to persist voting window", "error", err)
		return fmt.Errorf("failed to persist voting window: %w", err)
	}

	if err := l.window.SetDates(start, end); err != nil {
		return err
	}
	l.entries = append(l.entries, entry)

	l.logger.Info("voting window set", "start", start, "end", end)
	l.publish(models.LedgerEvent{Type: models.EventWindowSet, Seq: entry.Seq, Window: &w})
	return nil
}

// Vote casts voterID's single vote for candidateID at time now (Unix
// seconds). A voter id that is not valid UTF-8 is ErrInvalidInput; after
// that the checks run in order: window, voter, candidate.
func (l *Ledger) Vote(ctx context.Context, candidateID int, voterID string, now int64) error {
	if !utf8.ValidString(voterID) {
		return fmt.Errorf("%w: voter id must be valid UTF-8", ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.window.IsOpen(now) {
		return ErrVotingClosed
	}
	if l.voters.HasVoted(voterID) {
		return ErrAlreadyVoted
	}
	if _, err := l.registry.Get(candidateID); err != nil {
		return err
	}

	entry, err := l.next(models.EventVoteCast, voteCast{CandidateID: candidateID, VoterID: voterID, At: now})
	if err != nil {
		return err
	}
	if err := l.store.RecordVote(ctx, candidateID, voterID, entry); err != nil {
		l.logger.Error("failed to persist vote", "candidate_id", candidateID, "error", err)
		return fmt.Errorf("failed to persist vote: %w", err)
	}

	// Both preconditions were checked under the lock; a failure here means
	// memory and store have diverged.
	if err := l.registry.IncrementVote(candidateID); err != nil {
		l.logger.Error("vote persisted but not applied", "candidate_id", candidateID, "error", err)
		return fmt.Errorf("apply vote: %w", err)
	}
	if err := l.voters.MarkVoted(voterID); err != nil {
		l.logger.Error("vote persisted but not applied", "candidate_id", candidateID, "error", err)
		return fmt.Errorf("apply vote: %w", err)
	}
	l.entries = append(l.entries, entry)

	c, _ := l.registry.Get(candidateID)
	l.logger.Info("vote cast", "candidate_id", candidateID, "vote_count", c.VoteCount)
	l.publish(models.LedgerEvent{Type: models.EventVoteCast, Seq: entry.Seq, Candidate: &c})
	return nil
}

func (l *Ledger) GetCandidate(id int) (models.Candidate, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.registry.Get(id)
}

func (l *Ledger) GetCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.registry.Count()
}

// GetCandidates returns candidates 1..count in ascending id order.
func (l *Ledger) GetCandidates() []models.Candidate {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.registry.All()
}

func (l *Ledger) GetDates() (models.VotingWindow, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.window.GetDates()
}

func (l *Ledger) IsOpen(now int64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.window.IsOpen(now)
}

func (l *Ledger) CheckVote(voterID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.voters.HasVoted(voterID)
}

// ReadJournal returns the journal to an authorized caller. Vote entries
// name the voter, so the journal is not public.
func (l *Ledger) ReadJournal(ctx context.Context, caller Caller) ([]journal.Entry, error) {
	if err := l.authz.Authorize(ctx, ActionReadJournal, caller); err != nil {
		l.logger.Warn("journal read denied", "caller", caller.Identity, "error", err)
		return nil, err
	}
	return l.Journal(), nil
}

// Journal returns a copy of every committed entry.
func (l *Ledger) Journal() []journal.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]journal.Entry(nil), l.entries...)
}

// Verify re-checks the in-memory journal chain and returns its head hash
// and length.
func (l *Ledger) Verify() (string, int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	head, _ := journal.Head(l.entries)
	if err := journal.Verify(l.entries); err != nil {
		return head, len(l.entries), err
	}
	return head, len(l.entries), nil
}

// next must be called with l.mu held.
func (l *Ledger) next(kind string, payload any) (journal.Entry, error) {
	prev, seq := journal.Head(l.entries)
	return journal.Next(prev, seq, kind, payload)
}

func (l *Ledger) publish(event models.LedgerEvent) {
	if l.notifier != nil {
		l.notifier.Publish(event)
	}
}

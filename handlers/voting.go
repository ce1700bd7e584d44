// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/evote/auth"
	"github.com/danielhkuo/evote/cliparse"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/middleware"
	"github.com/danielhkuo/evote/models"
)

type VotingHandler struct {
	ledger *ledger.Ledger
	clock  ledger.Clock
	cfg    cliparse.Config
}

func NewVotingHandler(l *ledger.Ledger, clock ledger.Clock, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{ledger: l, clock: clock, cfg: cfg}
}

// CastVote handles POST /votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	voterID := strings.TrimSpace(r.Header.Get(headerVoterID))
	if voterID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, headerVoterID+" header required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	now := h.clock.Now().Unix()
	if err := h.ledger.Vote(r.Context(), req.CandidateID, voterID, now); err != nil {
		attrs := []any{"candidate_id", req.CandidateID, "error", err}
		// An unsalted hash of an IPv4 address is trivially reversible
		if h.cfg.AdminKeySalt != "" {
			attrs = append(attrs, "ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt))
		}
		slog.Info("vote rejected", attrs...)
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		CandidateID: req.CandidateID,
		Message:     "Vote recorded",
	})
}

// CheckVote handles GET /votes/me
func (h *VotingHandler) CheckVote(w http.ResponseWriter, r *http.Request) {
	voterID := strings.TrimSpace(r.Header.Get(headerVoterID))
	if voterID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, headerVoterID+" header required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CheckVoteResponse{
		HasVoted: h.ledger.CheckVote(voterID),
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/middleware"
)

const (
	headerAdminKey = "X-Admin-Key"
	headerVoterID  = "X-Voter-ID"
)

// writeLedgerError maps ledger sentinel errors to HTTP status codes.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrInvalidRange):
		middleware.ErrorResponse(w, http.StatusBadRequest, "end must be after start")
	case errors.Is(err, ledger.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid or missing admin key")
	case errors.Is(err, ledger.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
	case errors.Is(err, ledger.ErrUnset):
		middleware.ErrorResponse(w, http.StatusNotFound, "Voting dates have not been set")
	case errors.Is(err, ledger.ErrVotingClosed):
		middleware.ErrorResponse(w, http.StatusConflict, "Voting is not open")
	case errors.Is(err, ledger.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, "Voter has already voted")
	case errors.Is(err, ledger.ErrWindowLocked):
		middleware.ErrorResponse(w, http.StatusConflict, "Voting dates are locked once votes exist")
	default:
		slog.Error("ledger operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// adminCaller builds the ledger caller for admin operations from the request.
func adminCaller(r *http.Request) ledger.Caller {
	return ledger.Caller{
		Identity:   middleware.GetClientIP(r),
		Credential: r.Header.Get(headerAdminKey),
	}
}

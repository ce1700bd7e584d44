// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/middleware"
	"github.com/danielhkuo/evote/models"
)

type CandidateHandler struct {
	ledger *ledger.Ledger
}

func NewCandidateHandler(l *ledger.Ledger) *CandidateHandler {
	return &CandidateHandler{ledger: l}
}

// AddCandidate handles POST /candidates
func (h *CandidateHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.ledger.AddCandidate(r.Context(), adminCaller(r), req.Name, req.Party)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{
		CandidateID: id,
	})
}

// GetCandidates handles GET /candidates
func (h *CandidateHandler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	candidates := h.ledger.GetCandidates()
	if candidates == nil {
		candidates = []models.Candidate{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidatesResponse{
		Count:      len(candidates),
		Candidates: candidates,
	})
}

// GetCount handles GET /candidates/count
func (h *CandidateHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CountResponse{
		Count: h.ledger.GetCount(),
	})
}

// GetCandidate handles GET /candidates/{id}
func (h *CandidateHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id must be an integer")
		return
	}

	c, err := h.ledger.GetCandidate(id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/evote/journal"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/middleware"
	"github.com/danielhkuo/evote/models"
)

type JournalHandler struct {
	ledger *ledger.Ledger
}

func NewJournalHandler(l *ledger.Ledger) *JournalHandler {
	return &JournalHandler{ledger: l}
}

// GetJournal handles GET /journal
func (h *JournalHandler) GetJournal(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.ReadJournal(r.Context(), adminCaller(r))
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	resp := models.JournalResponse{
		Length:  len(entries),
		Entries: make([]models.JournalEntry, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, models.JournalEntry{
			Seq:      e.Seq,
			ID:       e.ID,
			Kind:     e.Kind,
			Payload:  string(e.Payload),
			PrevHash: e.PrevHash,
			Hash:     e.Hash,
		})
	}
	resp.Head, _ = journal.Head(entries)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// VerifyJournal handles GET /journal/verify
func (h *JournalHandler) VerifyJournal(w http.ResponseWriter, r *http.Request) {
	head, length, err := h.ledger.Verify()
	if err != nil {
		slog.Error("journal verification failed", "error", err, "length", length)
		middleware.JSONResponse(w, http.StatusOK, models.VerifyResponse{
			Valid:   false,
			Length:  length,
			Head:    head,
			Message: err.Error(),
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VerifyResponse{
		Valid:  true,
		Length: length,
		Head:   head,
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/middleware"
	"github.com/danielhkuo/evote/models"
)

type DatesHandler struct {
	ledger *ledger.Ledger
	clock  ledger.Clock
}

func NewDatesHandler(l *ledger.Ledger, clock ledger.Clock) *DatesHandler {
	return &DatesHandler{ledger: l, clock: clock}
}

// SetDates handles POST /dates
func (h *DatesHandler) SetDates(w http.ResponseWriter, r *http.Request) {
	var req models.SetDatesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.ledger.SetDates(r.Context(), adminCaller(r), req.Start, req.End); err != nil {
		writeLedgerError(w, err)
		return
	}

	h.writeDates(w, models.VotingWindow{Start: req.Start, End: req.End})
}

// GetDates handles GET /dates
func (h *DatesHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	window, err := h.ledger.GetDates()
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	h.writeDates(w, window)
}

func (h *DatesHandler) writeDates(w http.ResponseWriter, window models.VotingWindow) {
	now := h.clock.Now()
	start := time.Unix(window.Start, 0)
	end := time.Unix(window.End, 0)

	middleware.JSONResponse(w, http.StatusOK, models.DatesResponse{
		Start:  window.Start,
		End:    window.End,
		Starts: humanize.RelTime(start, now, "ago", "from now"),
		Ends:   humanize.RelTime(end, now, "ago", "from now"),
		Open:   h.ledger.IsOpen(now.Unix()),
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/terminfinder/auth"
	"github.com/danielhkuo/terminfinder/cliparse"
	"github.com/danielhkuo/terminfinder/middleware"
	"github.com/danielhkuo/terminfinder/models"
	"github.com/danielhkuo/terminfinder/store"
	"github.com/dustin/go-humanize"
)

// ResultsHandler serves the public read endpoints: the active poll
// list, the per-poll booking view, and the aggregated results.
type ResultsHandler struct {
	polls  *store.PollStore
	agg    *store.Aggregator
	config cliparse.Config
}

func NewResultsHandler(polls *store.PollStore, agg *store.Aggregator, config cliparse.Config) *ResultsHandler {
	return &ResultsHandler{polls: polls, agg: agg, config: config}
}

// ListActive handles GET /polls and returns open, unexpired polls.
func (h *ResultsHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.ListActivePolls(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]any{"polls": polls})
}

// GetPoll handles GET /polls/{publicID}: the poll plus per-option
// occupancy, which is what a participant needs to pick a slot.
func (h *ResultsHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	publicID := r.PathValue("publicID")

	poll, occupancy, err := h.agg.Occupancy(r.Context(), publicID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	view := models.PollViewResponse{
		Poll:    poll,
		Options: occupancy,
	}
	if poll.ExpiresAt != nil {
		if poll.ExpiresAt.Before(time.Now()) {
			view.Expired = true
		} else {
			view.ExpiresIn = humanize.Time(*poll.ExpiresAt)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// GetResults handles GET /polls/{publicID}/results. Participant names
// are redacted for hidden polls unless the caller presents a valid
// operator token.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	publicID := r.PathValue("publicID")

	viewer := store.Guest
	if token := r.Header.Get("X-Admin-Token"); token != "" {
		if auth.ValidateAdminToken(token, h.config.AdminToken) == nil {
			viewer = store.AsOperator()
		}
	}

	results, err := h.agg.Results(r.Context(), publicID, viewer)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

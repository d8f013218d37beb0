// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/terminfinder/cliparse"
	"github.com/danielhkuo/terminfinder/middleware"
	"github.com/danielhkuo/terminfinder/models"
	"github.com/danielhkuo/terminfinder/slots"
	"github.com/danielhkuo/terminfinder/store"
)

// PollHandler serves the operator-facing poll lifecycle endpoints.
type PollHandler struct {
	polls  *store.PollStore
	agg    *store.Aggregator
	config cliparse.Config
}

func NewPollHandler(polls *store.PollStore, agg *store.Aggregator, config cliparse.Config) *PollHandler {
	return &PollHandler{polls: polls, agg: agg, config: config}
}

// Create handles POST /admin/polls. The request carries the poll
// settings plus a slot spec, which is expanded into concrete options
// before anything touches the database.
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	spec, err := parseSlotSpec(req.Slots)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	times, err := slots.Expand(spec)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	cfg := store.PollConfig{
		Title:            req.Title,
		Description:      req.Description,
		OnlyYesNo:        req.OnlyYesNo,
		HideParticipants: req.HideParticipants,
		AllowChanges:     req.AllowChanges,
		ExpiresAt:        req.ExpiresAt,
		MaxParticipants:  req.MaxParticipants,
	}

	publicID, err := h.polls.CreatePoll(r.Context(), store.AsOperator(), cfg, times)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("poll created", "public_id", publicID, "options", len(times))

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PublicID:    publicID,
		ShareURL:    fmt.Sprintf("%s/polls/%s", h.config.BaseURL, publicID),
		OptionCount: len(times),
	})
}

// List handles GET /admin/polls and returns every poll, active or not.
func (h *PollHandler) List(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.ListAllPolls(r.Context(), store.AsOperator())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]any{"polls": polls})
}

// Get handles GET /admin/polls/{publicID}: the poll with its raw
// options plus unredacted tallies and the participant grid.
func (h *PollHandler) Get(w http.ResponseWriter, r *http.Request) {
	publicID := r.PathValue("publicID")

	poll, err := h.polls.GetPollByPublicID(r.Context(), publicID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	results, err := h.agg.Results(r.Context(), publicID, store.AsOperator())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"poll":         poll.Poll,
		"options":      poll.Options,
		"tallies":      results.Options,
		"participants": results.Participants,
	})
}

// Update handles PATCH /admin/polls/{publicID}. Only the fields present
// in the body change; per-option capacity overrides ride along in
// option_limits.
func (h *PollHandler) Update(w http.ResponseWriter, r *http.Request) {
	publicID := r.PathValue("publicID")

	var req models.UpdatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	update := store.PollUpdate{
		Title:            req.Title,
		Description:      req.Description,
		OnlyYesNo:        req.OnlyYesNo,
		HideParticipants: req.HideParticipants,
		AllowChanges:     req.AllowChanges,
		ExpiresAt:        req.ExpiresAt,
		MaxParticipants:  req.MaxParticipants,
		IsActive:         req.IsActive,
		OptionLimits:     req.OptionLimits,
	}

	if err := h.polls.UpdatePoll(r.Context(), store.AsOperator(), publicID, update); err != nil {
		writeStoreError(w, err)
		return
	}

	poll, err := h.polls.GetPollByPublicID(r.Context(), publicID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// Delete handles DELETE /admin/polls/{publicID} and removes the poll
// together with its options and responses.
func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	publicID := r.PathValue("publicID")

	if err := h.polls.DeletePoll(r.Context(), store.AsOperator(), publicID); err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("poll deleted", "public_id", publicID)
	w.WriteHeader(http.StatusNoContent)
}

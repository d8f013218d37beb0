// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/terminfinder/middleware"
	"github.com/danielhkuo/terminfinder/models"
	"github.com/danielhkuo/terminfinder/store"
)

// ResponseHandler serves the participant-facing response endpoint.
type ResponseHandler struct {
	responses *store.ResponseStore
}

func NewResponseHandler(responses *store.ResponseStore) *ResponseHandler {
	return &ResponseHandler{responses: responses}
}

// Submit handles POST /polls/{publicID}/responses. One call records or
// revises a single participant's answer for a single option.
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	publicID := r.PathValue("publicID")

	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	err := h.responses.SubmitResponse(r.Context(), publicID, req.OptionID, req.ParticipantName, req.Response)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("response recorded", "public_id", publicID, "option_id", req.OptionID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponseResponse{
		Message: "Response recorded",
	})
}

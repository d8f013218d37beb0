// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/terminfinder/models"
	"github.com/danielhkuo/terminfinder/store"
	"github.com/danielhkuo/terminfinder/testutil"
)

func int64Ptr(v int64) *int64 { return &v }

func newResponseHandler(t *testing.T) (*sql.DB, *ResponseHandler) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return conn, NewResponseHandler(store.NewResponseStore(conn))
}

func submit(handler *ResponseHandler, publicID string, body any) *httptest.ResponseRecorder {
	req := testutil.MakeRequest("POST", "/polls/"+publicID+"/responses", body, nil)
	req.SetPathValue("publicID", publicID)
	w := httptest.NewRecorder()
	handler.Submit(w, req)
	return w
}

func TestSubmitResponse(t *testing.T) {
	conn, handler := newResponseHandler(t)

	pollID, publicID := testutil.CreateTestPoll(t, conn, testutil.PollParams{})
	optionID := testutil.AddTestOption(t, conn, pollID,
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), nil)

	w := submit(handler, publicID, models.SubmitResponseRequest{
		ParticipantName: "alice",
		OptionID:        optionID,
		Response:        "yes",
	})

	testutil.AssertStatus(t, w, http.StatusCreated)

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM responses WHERE option_id = ?`, optionID).Scan(&count); err != nil {
		t.Fatalf("Failed to count responses: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 response, got %d", count)
	}
}

func TestSubmitResponseErrors(t *testing.T) {
	conn, handler := newResponseHandler(t)

	pollID, publicID := testutil.CreateTestPoll(t, conn, testutil.PollParams{})
	optionID := testutil.AddTestOption(t, conn, pollID,
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), int64Ptr(1))

	inactivePollID, inactivePublicID := testutil.CreateTestPoll(t, conn,
		testutil.PollParams{Title: "Closed", Inactive: true})
	inactiveOptionID := testutil.AddTestOption(t, conn, inactivePollID,
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), nil)

	tests := []struct {
		name           string
		publicID       string
		body           models.SubmitResponseRequest
		expectedStatus int
	}{
		{
			name:           "blank name",
			publicID:       publicID,
			body:           models.SubmitResponseRequest{ParticipantName: "  ", OptionID: optionID, Response: "yes"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid response type",
			publicID:       publicID,
			body:           models.SubmitResponseRequest{ParticipantName: "alice", OptionID: optionID, Response: "perhaps"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown poll",
			publicID:       "missing1",
			body:           models.SubmitResponseRequest{ParticipantName: "alice", OptionID: optionID, Response: "yes"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unknown option",
			publicID:       publicID,
			body:           models.SubmitResponseRequest{ParticipantName: "alice", OptionID: 9999, Response: "yes"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "closed poll",
			publicID:       inactivePublicID,
			body:           models.SubmitResponseRequest{ParticipantName: "alice", OptionID: inactiveOptionID, Response: "yes"},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := submit(handler, tt.publicID, tt.body)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestSubmitResponseDuplicate(t *testing.T) {
	conn, handler := newResponseHandler(t)

	pollID, publicID := testutil.CreateTestPoll(t, conn, testutil.PollParams{})
	optionID := testutil.AddTestOption(t, conn, pollID,
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), nil)

	first := submit(handler, publicID, models.SubmitResponseRequest{
		ParticipantName: "alice", OptionID: optionID, Response: "yes",
	})
	testutil.AssertStatus(t, first, http.StatusCreated)

	second := submit(handler, publicID, models.SubmitResponseRequest{
		ParticipantName: "alice", OptionID: optionID, Response: "no",
	})
	testutil.AssertStatus(t, second, http.StatusConflict)
}

func TestSubmitResponseCapacity(t *testing.T) {
	conn, handler := newResponseHandler(t)

	pollID, publicID := testutil.CreateTestPoll(t, conn, testutil.PollParams{})
	optionID := testutil.AddTestOption(t, conn, pollID,
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), int64Ptr(1))

	first := submit(handler, publicID, models.SubmitResponseRequest{
		ParticipantName: "alice", OptionID: optionID, Response: "yes",
	})
	testutil.AssertStatus(t, first, http.StatusCreated)

	second := submit(handler, publicID, models.SubmitResponseRequest{
		ParticipantName: "bob", OptionID: optionID, Response: "yes",
	})
	testutil.AssertStatus(t, second, http.StatusConflict)
}

func TestSubmitResponseInvalidJSON(t *testing.T) {
	conn, handler := newResponseHandler(t)

	_, publicID := testutil.CreateTestPoll(t, conn, testutil.PollParams{})

	req := httptest.NewRequest("POST", "/polls/"+publicID+"/responses", nil)
	req.SetPathValue("publicID", publicID)
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

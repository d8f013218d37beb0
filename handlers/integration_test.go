// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/terminfinder/models"
	"github.com/danielhkuo/terminfinder/store"
	"github.com/danielhkuo/terminfinder/testutil"
)

// TestFullPollLifecycle walks the whole flow: the operator creates a poll
// from a weekly slot spec, participants view and answer it, results
// aggregate the answers, and the operator finally deletes the poll.
func TestFullPollLifecycle(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	pollStore := store.NewPollStore(conn)
	responseStore := store.NewResponseStore(conn)
	aggregator := store.NewAggregator(conn)

	pollHandler := NewPollHandler(pollStore, aggregator, cfg)
	responseHandler := NewResponseHandler(responseStore)
	resultsHandler := NewResultsHandler(pollStore, aggregator, cfg)

	// Operator creates the poll
	createReq := testutil.MakeRequest("POST", "/admin/polls", models.CreatePollRequest{
		Title:       "Sprint Planning",
		Description: "Find a slot for the next planning round",
		Slots: models.SlotSpecRequest{
			Mode:      models.SlotModeWeekly,
			StartDate: "2026-09-01",
			EndDate:   "2026-09-14",
			Weekly: []models.WeekdayTimeRequest{
				{Weekday: "tuesday", Time: "10:00"},
				{Weekday: "thursday", Time: "15:30"},
			},
		},
	}, nil)
	w := httptest.NewRecorder()
	pollHandler.Create(w, createReq)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreatePollResponse
	testutil.AssertJSON(t, w, &created)
	if created.OptionCount != 4 {
		t.Fatalf("Expected 4 options, got %d", created.OptionCount)
	}
	publicID := created.PublicID

	// A participant opens the share link
	viewReq := testutil.MakeRequest("GET", "/polls/"+publicID, nil, nil)
	viewReq.SetPathValue("publicID", publicID)
	w = httptest.NewRecorder()
	resultsHandler.GetPoll(w, viewReq)
	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.PollViewResponse
	testutil.AssertJSON(t, w, &view)
	if len(view.Options) != 4 {
		t.Fatalf("Expected 4 options in view, got %d", len(view.Options))
	}
	firstOption := view.Options[0].OptionID

	// Two participants answer
	for _, answer := range []models.SubmitResponseRequest{
		{ParticipantName: "alice", OptionID: firstOption, Response: "yes"},
		{ParticipantName: "bob", OptionID: firstOption, Response: "maybe"},
	} {
		req := testutil.MakeRequest("POST", "/polls/"+publicID+"/responses", answer, nil)
		req.SetPathValue("publicID", publicID)
		w = httptest.NewRecorder()
		responseHandler.Submit(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	// Results reflect both answers
	resultsReq := testutil.MakeRequest("GET", "/polls/"+publicID+"/results", nil, nil)
	resultsReq.SetPathValue("publicID", publicID)
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, resultsReq)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.PollResults
	testutil.AssertJSON(t, w, &results)
	if results.Options[0].Yes != 1 {
		t.Errorf("Expected 1 yes on first option, got %d", results.Options[0].Yes)
	}
	if results.Options[0].Maybe == nil || *results.Options[0].Maybe != 1 {
		t.Errorf("Expected 1 maybe on first option, got %+v", results.Options[0].Maybe)
	}
	if len(results.Participants) != 2 {
		t.Errorf("Expected 2 participant rows, got %d", len(results.Participants))
	}

	// Operator deactivates the poll; further answers bounce
	inactive := false
	patchReq := testutil.MakeRequest("PATCH", "/admin/polls/"+publicID,
		models.UpdatePollRequest{IsActive: &inactive}, nil)
	patchReq.SetPathValue("publicID", publicID)
	w = httptest.NewRecorder()
	pollHandler.Update(w, patchReq)
	testutil.AssertStatus(t, w, http.StatusOK)

	lateReq := testutil.MakeRequest("POST", "/polls/"+publicID+"/responses",
		models.SubmitResponseRequest{ParticipantName: "carol", OptionID: firstOption, Response: "yes"}, nil)
	lateReq.SetPathValue("publicID", publicID)
	w = httptest.NewRecorder()
	responseHandler.Submit(w, lateReq)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Operator deletes the poll
	deleteReq := testutil.MakeRequest("DELETE", "/admin/polls/"+publicID, nil, nil)
	deleteReq.SetPathValue("publicID", publicID)
	w = httptest.NewRecorder()
	pollHandler.Delete(w, deleteReq)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	// The share link is dead
	goneReq := testutil.MakeRequest("GET", "/polls/"+publicID, nil, nil)
	goneReq.SetPathValue("publicID", publicID)
	w = httptest.NewRecorder()
	resultsHandler.GetPoll(w, goneReq)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

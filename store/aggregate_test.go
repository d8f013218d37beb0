// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"testing"
	"time"

	"github.com/danielhkuo/terminfinder/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancy(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	a := NewAggregator(conn)
	ctx := context.Background()

	pollID, publicID := testutil.CreateTestPoll(t, conn, testutil.PollParams{})
	slot := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	capped := testutil.AddTestOption(t, conn, pollID, slot, int64Ptr(2))
	uncapped := testutil.AddTestOption(t, conn, pollID, slot.Add(time.Hour), nil)

	testutil.AddTestResponse(t, conn, pollID, capped, "alice", "yes")
	testutil.AddTestResponse(t, conn, pollID, capped, "bob", "yes")
	testutil.AddTestResponse(t, conn, pollID, capped, "carol", "no")
	testutil.AddTestResponse(t, conn, pollID, uncapped, "alice", "yes")

	poll, occupancy, err := a.Occupancy(ctx, publicID)
	require.NoError(t, err)
	assert.Equal(t, publicID, poll.PublicID)
	require.Len(t, occupancy, 2)

	// Only yes answers occupy seats
	first := occupancy[0]
	assert.Equal(t, capped, first.OptionID)
	assert.Equal(t, 2, first.Booked)
	require.NotNil(t, first.Max)
	assert.Equal(t, int64(2), *first.Max)
	require.NotNil(t, first.Available)
	assert.Equal(t, int64(0), *first.Available)
	assert.True(t, first.Full)

	second := occupancy[1]
	assert.Equal(t, uncapped, second.OptionID)
	assert.Equal(t, 1, second.Booked)
	assert.Nil(t, second.Max)
	assert.Nil(t, second.Available)
	assert.False(t, second.Full)
}

func TestOccupancyNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	a := NewAggregator(conn)

	_, _, err := a.Occupancy(context.Background(), "missing1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	a := NewAggregator(conn)
	ctx := context.Background()

	pollID, publicID := testutil.CreateTestPoll(t, conn, testutil.PollParams{})
	slot := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	opt1 := testutil.AddTestOption(t, conn, pollID, slot, nil)
	opt2 := testutil.AddTestOption(t, conn, pollID, slot.Add(time.Hour), nil)

	testutil.AddTestResponse(t, conn, pollID, opt1, "alice", "yes")
	testutil.AddTestResponse(t, conn, pollID, opt1, "bob", "maybe")
	testutil.AddTestResponse(t, conn, pollID, opt2, "alice", "no")

	results, err := a.Results(ctx, publicID, Guest)
	require.NoError(t, err)
	assert.False(t, results.Redacted)
	require.Len(t, results.Options, 2)

	first := results.Options[0]
	assert.Equal(t, opt1, first.OptionID)
	assert.Equal(t, 1, first.Yes)
	assert.Equal(t, 0, first.No)
	require.NotNil(t, first.Maybe)
	assert.Equal(t, 1, *first.Maybe)
	assert.Equal(t, []string{"alice"}, first.YesNames)
	assert.Equal(t, []string{"bob"}, first.MaybeNames)

	second := results.Options[1]
	assert.Equal(t, 1, second.No)
	assert.Equal(t, []string{"alice"}, second.NoNames)

	// Participant grid, alphabetical by name
	require.Len(t, results.Participants, 2)
	assert.Equal(t, "alice", results.Participants[0].Name)
	assert.Equal(t, map[int64]string{opt1: "yes", opt2: "no"}, results.Participants[0].Responses)
	assert.Equal(t, "bob", results.Participants[1].Name)
	assert.Equal(t, map[int64]string{opt1: "maybe"}, results.Participants[1].Responses)
}

func TestResultsOnlyYesNoOmitsMaybe(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	a := NewAggregator(conn)
	ctx := context.Background()

	pollID, publicID := testutil.CreateTestPoll(t, conn, testutil.PollParams{OnlyYesNo: true})
	optionID := testutil.AddTestOption(t, conn, pollID,
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), nil)
	testutil.AddTestResponse(t, conn, pollID, optionID, "alice", "yes")

	results, err := a.Results(ctx, publicID, Guest)
	require.NoError(t, err)
	require.Len(t, results.Options, 1)
	assert.Nil(t, results.Options[0].Maybe)
	assert.Nil(t, results.Options[0].MaybeNames)
}

func TestResultsRedaction(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	a := NewAggregator(conn)
	ctx := context.Background()

	pollID, publicID := testutil.CreateTestPoll(t, conn,
		testutil.PollParams{HideParticipants: true})
	optionID := testutil.AddTestOption(t, conn, pollID,
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), nil)
	testutil.AddTestResponse(t, conn, pollID, optionID, "alice", "yes")
	testutil.AddTestResponse(t, conn, pollID, optionID, "bob", "no")

	hidden, err := a.Results(ctx, publicID, Guest)
	require.NoError(t, err)
	assert.True(t, hidden.Redacted)
	assert.Empty(t, hidden.Participants)
	require.Len(t, hidden.Options, 1)
	assert.Equal(t, 1, hidden.Options[0].Yes)
	assert.Equal(t, 1, hidden.Options[0].No)
	assert.Nil(t, hidden.Options[0].YesNames)
	assert.Nil(t, hidden.Options[0].NoNames)

	visible, err := a.Results(ctx, publicID, AsOperator())
	require.NoError(t, err)
	assert.False(t, visible.Redacted)
	assert.Equal(t, []string{"alice"}, visible.Options[0].YesNames)
	require.Len(t, visible.Participants, 2)
}

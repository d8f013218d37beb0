// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/danielhkuo/terminfinder/models"
)

// Aggregator computes read-side views over polls and responses. No
// mutation, no side effects.
type Aggregator struct {
	db  *sql.DB
	now func() time.Time
}

func NewAggregator(db *sql.DB) *Aggregator {
	return &Aggregator{db: db, now: time.Now}
}

// Occupancy returns the poll plus per-option booking state for the public
// poll view: accepted count, effective limit, remaining seats.
func (a *Aggregator) Occupancy(ctx context.Context, publicID string) (models.Poll, []models.OptionOccupancy, error) {
	poll, err := pollByPublicID(ctx, a.db, publicID)
	if err != nil {
		return models.Poll{}, nil, err
	}

	options, err := optionsForPoll(ctx, a.db, poll.ID)
	if err != nil {
		return models.Poll{}, nil, err
	}

	responses, err := responsesForPoll(ctx, a.db, poll.ID)
	if err != nil {
		return models.Poll{}, nil, err
	}

	booked := map[int64]int{}
	for _, r := range responses {
		if r.Type == models.ResponseYes {
			booked[r.OptionID]++
		}
	}

	occupancy := make([]models.OptionOccupancy, 0, len(options))
	for _, opt := range options {
		occupancy = append(occupancy, buildOccupancy(opt, poll, booked[opt.ID]))
	}
	return poll, occupancy, nil
}

// Results produces per-option tallies and, unless redacted, participant
// names per response type plus a participant-major grid.
func (a *Aggregator) Results(ctx context.Context, publicID string, viewer Operator) (*models.PollResults, error) {
	poll, err := pollByPublicID(ctx, a.db, publicID)
	if err != nil {
		return nil, err
	}

	options, err := optionsForPoll(ctx, a.db, poll.ID)
	if err != nil {
		return nil, err
	}

	responses, err := responsesForPoll(ctx, a.db, poll.ID)
	if err != nil {
		return nil, err
	}

	redacted := poll.HideParticipants && !viewer.authorized()

	type counts struct {
		yes, no, maybe                int
		yesNames, noNames, maybeNames []string
	}
	perOption := map[int64]*counts{}
	for _, opt := range options {
		perOption[opt.ID] = &counts{}
	}

	grid := map[string]map[int64]string{}
	for _, r := range responses {
		c, ok := perOption[r.OptionID]
		if !ok {
			continue
		}
		switch r.Type {
		case models.ResponseYes:
			c.yes++
			c.yesNames = append(c.yesNames, r.ParticipantName)
		case models.ResponseNo:
			c.no++
			c.noNames = append(c.noNames, r.ParticipantName)
		case models.ResponseMaybe:
			c.maybe++
			c.maybeNames = append(c.maybeNames, r.ParticipantName)
		}
		if !redacted {
			if grid[r.ParticipantName] == nil {
				grid[r.ParticipantName] = map[int64]string{}
			}
			grid[r.ParticipantName][r.OptionID] = r.Type
		}
	}

	tallies := make([]models.OptionTally, 0, len(options))
	for _, opt := range options {
		c := perOption[opt.ID]
		occ := buildOccupancy(opt, poll, c.yes)
		tally := models.OptionTally{
			OptionID:  opt.ID,
			SlotAt:    opt.SlotAt,
			Yes:       c.yes,
			No:        c.no,
			Max:       occ.Max,
			Available: occ.Available,
			Full:      occ.Full,
		}
		if !poll.OnlyYesNo {
			maybe := c.maybe
			tally.Maybe = &maybe
		}
		if !redacted {
			tally.YesNames = c.yesNames
			tally.NoNames = c.noNames
			if !poll.OnlyYesNo {
				tally.MaybeNames = c.maybeNames
			}
		}
		tallies = append(tallies, tally)
	}

	results := &models.PollResults{
		Poll:     poll,
		Options:  tallies,
		Redacted: redacted,
	}

	if !redacted {
		names := make([]string, 0, len(grid))
		for name := range grid {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			results.Participants = append(results.Participants, models.ParticipantRow{
				Name:      name,
				Responses: grid[name],
			})
		}
	}

	return results, nil
}

func buildOccupancy(opt models.PollOption, poll models.Poll, booked int) models.OptionOccupancy {
	occ := models.OptionOccupancy{
		OptionID: opt.ID,
		SlotAt:   opt.SlotAt,
		Booked:   booked,
	}
	capacity := effectiveCapacity(opt.MaxParticipants, poll.MaxParticipants)
	if capacity != nil {
		max := *capacity
		occ.Max = &max
		available := max - int64(booked)
		if available < 0 {
			available = 0
		}
		occ.Available = &available
		occ.Full = int64(booked) >= max
	}
	return occ
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/terminfinder/models"
)

type ResponseStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewResponseStore(db *sql.DB) *ResponseStore {
	return &ResponseStore{db: db, now: time.Now}
}

// SubmitResponse records or updates one participant's answer for one
// option. The whole validation chain (poll open, response type, change
// policy, capacity) and the write run in a single transaction, so two
// simultaneous submissions cannot both pass the capacity check.
func (s *ResponseStore) SubmitResponse(ctx context.Context, publicID string, optionID int64, participantName, responseType string) error {
	participantName = strings.TrimSpace(participantName)
	if participantName == "" {
		return fmt.Errorf("%w: participant name is required", ErrValidation)
	}
	switch responseType {
	case models.ResponseYes, models.ResponseNo, models.ResponseMaybe:
	default:
		return fmt.Errorf("%w: response must be yes, no or maybe", ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	poll, err := pollByPublicID(ctx, tx, publicID)
	if err != nil {
		return err
	}

	if !poll.IsActive || expired(poll, s.now()) {
		return ErrPollClosed
	}
	if poll.OnlyYesNo && responseType == models.ResponseMaybe {
		return fmt.Errorf("%w: this poll only accepts yes or no", ErrValidation)
	}

	var optionMax sql.NullInt64
	err = tx.QueryRowContext(ctx, `
		SELECT max_participants FROM poll_options WHERE id = ? AND poll_id = ?
	`, optionID, poll.ID).Scan(&optionMax)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: option %d", ErrNotFound, optionID)
	}
	if err != nil {
		return fmt.Errorf("querying option: %w", err)
	}

	var existingID int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM responses WHERE option_id = ? AND participant_name = ?
	`, optionID, participantName).Scan(&existingID)
	hasExisting := err == nil
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("querying existing response: %w", err)
	}

	if hasExisting && !poll.AllowChanges {
		return ErrDuplicateResponse
	}

	if responseType == models.ResponseYes {
		var optMaxPtr *int64
		if optionMax.Valid {
			optMaxPtr = &optionMax.Int64
		}
		capacity := effectiveCapacity(optMaxPtr, poll.MaxParticipants)
		if capacity != nil {
			// The participant's own previous yes does not count against
			// them when changing an answer
			var booked int64
			err = tx.QueryRowContext(ctx, `
				SELECT COUNT(*) FROM responses
				WHERE option_id = ? AND response_type = 'yes' AND participant_name <> ?
			`, optionID, participantName).Scan(&booked)
			if err != nil {
				return fmt.Errorf("counting bookings: %w", err)
			}
			if booked >= *capacity {
				return ErrCapacityExceeded
			}
		}
	}

	if hasExisting {
		_, err = tx.ExecContext(ctx, `
			UPDATE responses SET response_type = ?, created_at = ? WHERE id = ?
		`, responseType, fmtTime(s.now()), existingID)
		if err != nil {
			return fmt.Errorf("updating response: %w", err)
		}
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO responses (poll_id, option_id, participant_name, response_type, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, poll.ID, optionID, participantName, responseType, fmtTime(s.now()))
		if err != nil {
			return fmt.Errorf("inserting response: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing response: %w", err)
	}
	return nil
}

// GetResponsesForPoll returns all responses for a poll. When the poll
// hides participants and the viewer is not an operator, names are
// redacted; counts stay visible to callers tallying the result.
func (s *ResponseStore) GetResponsesForPoll(ctx context.Context, publicID string, viewer Operator) ([]models.Response, error) {
	poll, err := pollByPublicID(ctx, s.db, publicID)
	if err != nil {
		return nil, err
	}

	responses, err := responsesForPoll(ctx, s.db, poll.ID)
	if err != nil {
		return nil, err
	}

	if poll.HideParticipants && !viewer.authorized() {
		for i := range responses {
			responses[i].ParticipantName = ""
		}
	}
	return responses, nil
}

func responsesForPoll(ctx context.Context, q querier, pollID int64) ([]models.Response, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, option_id, participant_name, response_type, created_at
		FROM responses
		WHERE poll_id = ?
		ORDER BY option_id, participant_name
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("querying responses: %w", err)
	}
	defer rows.Close()

	responses := []models.Response{}
	for rows.Next() {
		var r models.Response
		var createdAt string
		if err := rows.Scan(&r.ID, &r.OptionID, &r.ParticipantName, &r.Type, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning response: %w", err)
		}
		if r.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

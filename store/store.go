// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/terminfinder/models"
)

// All datetimes are stored as RFC3339 UTC text so SQL ordering matches
// chronological ordering.
func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed stored datetime %q: %w", s, err)
	}
	return t, nil
}

// expired reports whether the poll's expiration has passed. Expiration is
// evaluated at read time; there is no background sweep.
func expired(p models.Poll, now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}

// effectiveCapacity resolves an option's participant limit: option
// override, else poll default, else unbounded (nil).
func effectiveCapacity(optionMax, pollMax *int64) *int64 {
	if optionMax != nil {
		return optionMax
	}
	return pollMax
}

const pollColumns = `id, public_id, title, description, created_at, expires_at,
	allow_changes, only_yes_no, hide_participants, max_participants, is_active`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoll(row rowScanner) (models.Poll, error) {
	var p models.Poll
	var createdAt string
	var expiresAt sql.NullString
	var maxParticipants sql.NullInt64

	err := row.Scan(&p.ID, &p.PublicID, &p.Title, &p.Description, &createdAt, &expiresAt,
		&p.AllowChanges, &p.OnlyYesNo, &p.HideParticipants, &maxParticipants, &p.IsActive)
	if err != nil {
		return models.Poll{}, err
	}

	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Poll{}, err
	}
	if expiresAt.Valid {
		t, err := parseTime(expiresAt.String)
		if err != nil {
			return models.Poll{}, err
		}
		p.ExpiresAt = &t
	}
	if maxParticipants.Valid {
		p.MaxParticipants = &maxParticipants.Int64
	}

	return p, nil
}

func scanOption(row rowScanner) (models.PollOption, error) {
	var o models.PollOption
	var slotAt string
	var maxParticipants sql.NullInt64

	if err := row.Scan(&o.ID, &o.PollID, &slotAt, &maxParticipants); err != nil {
		return models.PollOption{}, err
	}

	var err error
	if o.SlotAt, err = parseTime(slotAt); err != nil {
		return models.PollOption{}, err
	}
	if maxParticipants.Valid {
		o.MaxParticipants = &maxParticipants.Int64
	}

	return o, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx, so the poll lookup
// helpers work inside and outside transactions.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// pollByPublicID loads one poll or returns ErrNotFound.
func pollByPublicID(ctx context.Context, q querier, publicID string) (models.Poll, error) {
	row := q.QueryRowContext(ctx, `SELECT `+pollColumns+` FROM polls WHERE public_id = ?`, publicID)
	p, err := scanPoll(row)
	if err == sql.ErrNoRows {
		return models.Poll{}, fmt.Errorf("%w: poll %q", ErrNotFound, publicID)
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("querying poll: %w", err)
	}
	return p, nil
}

// optionsForPoll loads a poll's options in ascending slot order.
func optionsForPoll(ctx context.Context, q querier, pollID int64) ([]models.PollOption, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, poll_id, slot_at, max_participants
		FROM poll_options
		WHERE poll_id = ?
		ORDER BY slot_at, id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("querying options: %w", err)
	}
	defer rows.Close()

	options := []models.PollOption{}
	for rows.Next() {
		opt, err := scanOption(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning option: %w", err)
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/terminfinder/auth"
	"github.com/danielhkuo/terminfinder/models"
)

// maxIDAttempts bounds public ID regeneration on collision. With 62^8
// identifiers this never triggers in practice.
const maxIDAttempts = 10

// PollConfig is the immutable configuration validated once at creation.
type PollConfig struct {
	Title            string
	Description      string
	ExpiresAt        *time.Time
	AllowChanges     bool
	OnlyYesNo        bool
	HideParticipants bool
	MaxParticipants  *int64
}

// PollUpdate mutates only non-nil fields. Options are untouched except for
// their capacity overrides.
type PollUpdate struct {
	Title            *string
	Description      *string
	ExpiresAt        *time.Time
	AllowChanges     *bool
	OnlyYesNo        *bool
	HideParticipants *bool
	MaxParticipants  *int64
	IsActive         *bool
	OptionLimits     map[int64]*int64
}

type PollStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewPollStore(db *sql.DB) *PollStore {
	return &PollStore{db: db, now: time.Now}
}

// CreatePoll persists a poll plus one option per datetime, atomically, and
// returns the new public identifier.
func (s *PollStore) CreatePoll(ctx context.Context, op Operator, cfg PollConfig, slotTimes []time.Time) (string, error) {
	if !op.authorized() {
		return "", ErrUnauthorized
	}
	if strings.TrimSpace(cfg.Title) == "" {
		return "", fmt.Errorf("%w: title is required", ErrValidation)
	}
	if cfg.MaxParticipants != nil && *cfg.MaxParticipants < 1 {
		return "", fmt.Errorf("%w: max_participants must be at least 1", ErrValidation)
	}
	if len(slotTimes) == 0 {
		return "", fmt.Errorf("%w: at least one slot is required", ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	publicID, err := freshPublicID(ctx, tx)
	if err != nil {
		return "", err
	}

	var expiresAt any
	if cfg.ExpiresAt != nil {
		expiresAt = fmtTime(*cfg.ExpiresAt)
	}
	var maxParticipants any
	if cfg.MaxParticipants != nil {
		maxParticipants = *cfg.MaxParticipants
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO polls (public_id, title, description, created_at, expires_at,
			allow_changes, only_yes_no, hide_participants, max_participants, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)
	`, publicID, strings.TrimSpace(cfg.Title), cfg.Description, fmtTime(s.now()), expiresAt,
		cfg.AllowChanges, cfg.OnlyYesNo, cfg.HideParticipants, maxParticipants)
	if err != nil {
		return "", fmt.Errorf("inserting poll: %w", err)
	}

	pollID, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("reading poll id: %w", err)
	}

	for _, slot := range slotTimes {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO poll_options (poll_id, slot_at, max_participants)
			VALUES (?, ?, NULL)
		`, pollID, fmtTime(slot))
		if err != nil {
			return "", fmt.Errorf("inserting option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing poll: %w", err)
	}

	return publicID, nil
}

// freshPublicID generates an identifier not yet taken by any poll,
// regenerating on collision up to maxIDAttempts.
func freshPublicID(ctx context.Context, tx *sql.Tx) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id, err := auth.GeneratePublicID()
		if err != nil {
			return "", fmt.Errorf("generating public id: %w", err)
		}

		var exists bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM polls WHERE public_id = ?)`, id).Scan(&exists)
		if err != nil {
			return "", fmt.Errorf("checking public id: %w", err)
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrGenerationExhausted
}

// GetPollByPublicID returns the poll and its options in ascending slot order.
func (s *PollStore) GetPollByPublicID(ctx context.Context, publicID string) (*models.PollWithOptions, error) {
	poll, err := pollByPublicID(ctx, s.db, publicID)
	if err != nil {
		return nil, err
	}

	options, err := optionsForPoll(ctx, s.db, poll.ID)
	if err != nil {
		return nil, err
	}

	return &models.PollWithOptions{Poll: poll, Options: options}, nil
}

// UpdatePoll mutates only the fields declared in upd.
func (s *PollStore) UpdatePoll(ctx context.Context, op Operator, publicID string, upd PollUpdate) error {
	if !op.authorized() {
		return ErrUnauthorized
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if upd.MaxParticipants != nil && *upd.MaxParticipants < 1 {
		return fmt.Errorf("%w: max_participants must be at least 1", ErrValidation)
	}
	for optionID, limit := range upd.OptionLimits {
		if limit != nil && *limit < 1 {
			return fmt.Errorf("%w: limit for option %d must be at least 1", ErrValidation, optionID)
		}
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

	sets := []string{}
	args := []any{}
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if upd.Title != nil {
		add("title", strings.TrimSpace(*upd.Title))
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.ExpiresAt != nil {
		add("expires_at", fmtTime(*upd.ExpiresAt))
	}
	if upd.AllowChanges != nil {
		add("allow_changes", *upd.AllowChanges)
	}
	if upd.OnlyYesNo != nil {
		add("only_yes_no", *upd.OnlyYesNo)
	}
	if upd.HideParticipants != nil {
		add("hide_participants", *upd.HideParticipants)
	}
	if upd.MaxParticipants != nil {
		add("max_participants", *upd.MaxParticipants)
	}
	if upd.IsActive != nil {
		add("is_active", *upd.IsActive)
	}

	if len(sets) > 0 {
		args = append(args, poll.ID)
		_, err = tx.ExecContext(ctx,
			`UPDATE polls SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
		if err != nil {
			return fmt.Errorf("updating poll: %w", err)
		}
	}

	for optionID, limit := range upd.OptionLimits {
		var value any
		if limit != nil {
			value = *limit
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE poll_options SET max_participants = ?
			WHERE id = ? AND poll_id = ?
		`, value, optionID, poll.ID)
		if err != nil {
			return fmt.Errorf("updating option limit: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("checking option update: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: option %d", ErrNotFound, optionID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing update: %w", err)
	}
	return nil
}

// DeletePoll removes the poll and cascades to its options and responses.
func (s *PollStore) DeletePoll(ctx context.Context, op Operator, publicID string) error {
	if !op.authorized() {
		return ErrUnauthorized
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

	// Explicit child deletes: cascade must not depend on the connection's
	// foreign_keys pragma
	for _, stmt := range []string{
		`DELETE FROM responses WHERE poll_id = ?`,
		`DELETE FROM poll_options WHERE poll_id = ?`,
		`DELETE FROM polls WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, poll.ID); err != nil {
			return fmt.Errorf("deleting poll: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}

// ListActivePolls returns active, unexpired polls, newest first.
func (s *PollStore) ListActivePolls(ctx context.Context) ([]models.Poll, error) {
	polls, err := s.listPolls(ctx, `WHERE is_active = 1`)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := []models.Poll{}
	for _, p := range polls {
		if expired(p, now) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// ListAllPolls returns every poll, newest first. Operator only.
func (s *PollStore) ListAllPolls(ctx context.Context, op Operator) ([]models.Poll, error) {
	if !op.authorized() {
		return nil, ErrUnauthorized
	}
	return s.listPolls(ctx, ``)
}

func (s *PollStore) listPolls(ctx context.Context, where string) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+pollColumns+` FROM polls `+where+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		p, err := scanPoll(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning poll: %w", err)
		}
		polls = append(polls, p)
	}
	return polls, rows.Err()
}

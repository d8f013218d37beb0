// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Datetimes (created_at, expires_at, slot_at) are stored as RFC3339 UTC
// text, so lexicographic ORDER BY matches chronological order.
const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS polls (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    public_id TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    expires_at TEXT,
    allow_changes INTEGER NOT NULL DEFAULT 0,
    only_yes_no INTEGER NOT NULL DEFAULT 0,
    hide_participants INTEGER NOT NULL DEFAULT 0,
    max_participants INTEGER,
    is_active INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_polls_public_id ON polls(public_id);
CREATE INDEX IF NOT EXISTS idx_polls_is_active ON polls(is_active);

-- Candidate time slots
CREATE TABLE IF NOT EXISTS poll_options (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    poll_id INTEGER NOT NULL REFERENCES polls(id) ON DELETE CASCADE,
    slot_at TEXT NOT NULL,
    max_participants INTEGER
);

CREATE INDEX IF NOT EXISTS idx_poll_options_poll_id ON poll_options(poll_id);

-- Participant responses
CREATE TABLE IF NOT EXISTS responses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    poll_id INTEGER NOT NULL REFERENCES polls(id) ON DELETE CASCADE,
    option_id INTEGER NOT NULL REFERENCES poll_options(id) ON DELETE CASCADE,
    participant_name TEXT NOT NULL,
    response_type TEXT NOT NULL DEFAULT 'yes' CHECK (response_type IN ('yes', 'no', 'maybe')),
    created_at TEXT NOT NULL,
    UNIQUE (option_id, participant_name)
);

CREATE INDEX IF NOT EXISTS idx_responses_poll_id ON responses(poll_id);
CREATE INDEX IF NOT EXISTS idx_responses_option_id ON responses(option_id);
`

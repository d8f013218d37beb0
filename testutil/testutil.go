// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/terminfinder/auth"
	"github.com/danielhkuo/terminfinder/cliparse"
	"github.com/danielhkuo/terminfinder/db"
	_ "modernc.org/sqlite"
)

// TestAdminToken is the operator secret used by the test configuration.
const TestAdminToken = "test-admin-token"

// SetupTestDB opens an in-memory SQLite database with the full schema.
// The pool is pinned to a single connection so the memory database
// survives for the whole test and writes are serialized.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4280,
		DatabasePath: ":memory:",
		AdminToken:   TestAdminToken,
		BaseURL:      "http://localhost:4280",
	}
}

// PollParams controls the settings of a poll created by CreateTestPoll.
// The zero value is an open poll with no limits and all flags off.
type PollParams struct {
	Title            string
	OnlyYesNo        bool
	HideParticipants bool
	AllowChanges     bool
	ExpiresAt        *time.Time
	MaxParticipants  *int64
	Inactive         bool
}

// CreateTestPoll inserts a poll and returns its row ID and public ID.
func CreateTestPoll(t *testing.T, conn *sql.DB, p PollParams) (pollID int64, publicID string) {
	t.Helper()

	publicID, err := auth.GeneratePublicID()
	if err != nil {
		t.Fatalf("Failed to generate public ID: %v", err)
	}

	title := p.Title
	if title == "" {
		title = "Test Poll"
	}

	var expiresAt *string
	if p.ExpiresAt != nil {
		s := p.ExpiresAt.UTC().Format(time.RFC3339)
		expiresAt = &s
	}

	res, err := conn.Exec(`
		INSERT INTO polls (public_id, title, only_yes_no, hide_participants, allow_changes,
			expires_at, max_participants, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, publicID, title, p.OnlyYesNo, p.HideParticipants, p.AllowChanges,
		expiresAt, p.MaxParticipants, !p.Inactive, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	pollID, err = res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read poll ID: %v", err)
	}
	return pollID, publicID
}

// AddTestOption inserts a slot option and returns its ID. max is nil
// for an uncapped option.
func AddTestOption(t *testing.T, conn *sql.DB, pollID int64, slotAt time.Time, max *int64) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO poll_options (poll_id, slot_at, max_participants)
		VALUES (?, ?, ?)
	`, pollID, slotAt.UTC().Format(time.RFC3339), max)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	optionID, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read option ID: %v", err)
	}
	return optionID
}

// AddTestResponse inserts a response row directly.
func AddTestResponse(t *testing.T, conn *sql.DB, pollID, optionID int64, name, responseType string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO responses (poll_id, option_id, participant_name, response_type, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, pollID, optionID, name, responseType, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test response: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
